package experiments

import (
	"context"
	"fmt"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Tally counts game outcomes of one agent
type Tally struct {
	Wins   int
	Losses int
	Draws  int
}

type Result struct {
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Tallies map[int]*Tally // By AgentConfig.ID
	Dir     string         // CSV output directory, empty when not written
}

// Run plays every match up of the experiment, alternating which agent moves
// first, and stores the records as configured.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var db *store.Store
	if cfg.Database != "" {
		var err error
		db, err = store.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		defer db.Close()
	}

	result := &Result{Tallies: make(map[int]*Tally, len(cfg.Agents))}
	for _, agent := range cfg.Agents {
		result.Tallies[agent.ID] = &Tally{}
	}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchUp := range cfg.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent%d and agent%d...", mi+1, len(cfg.MatchUps), matchUp[0], matchUp[1])

		for i := 0; i < cfg.Games; i++ {
			if err := ctx.Err(); err != nil {
				return result, err
			}

			first, second := cfg.agent(matchUp[0]), cfg.agent(matchUp[1])
			if i%2 == 1 {
				first, second = second, first
			}

			record, moves, err := runGame(cfg.BoardSize, first, second, i)
			if err != nil {
				return result, err
			}
			result.Games = append(result.Games, record)
			result.Moves = append(result.Moves, moves...)
			tallyGame(result.Tallies, record)

			if db != nil {
				if err := db.SaveGame(ctx, record, moves); err != nil {
					return result, err
				}
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: player %d (%d-%d)",
				mi+1, len(cfg.MatchUps), i+1, cfg.Games, record.Winner, record.TokensOne, record.TokensTwo)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(cfg.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	if cfg.OutputDir != "" {
		dir, err := writeRecords(cfg, result)
		if err != nil {
			return result, err
		}
		result.Dir = dir
	}
	return result, nil
}

func writeRecords(cfg Config, result *Result) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

func tallyGame(tallies map[int]*Tally, record metrics.GameRecord) {
	switch record.Winner {
	case game.PlayerOne:
		tallies[record.Agent1].Wins++
		tallies[record.Agent2].Losses++
	case game.PlayerTwo:
		tallies[record.Agent2].Wins++
		tallies[record.Agent1].Losses++
	default:
		tallies[record.Agent1].Draws++
		tallies[record.Agent2].Draws++
	}
}

// runGame plays a single game, config1 moving first
func runGame(size int, config1, config2 metrics.AgentConfig, index int) (metrics.GameRecord, []metrics.MoveRecord, error) {
	agent1, err := createSearcher(config1, index)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	agent2, err := createSearcher(config2, index)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	e, err := engine.LocalEngine([]searcher.Searcher{agent1, agent2}, size)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	_, gameMetric, moveMetrics := e.Run()

	record := metrics.GameRecord{
		ID:         uuid.New().String(),
		Agent1:     config1.ID,
		Agent2:     config2.ID,
		GameMetric: gameMetric,
	}
	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for i, mm := range moveMetrics {
		moves[i] = metrics.MoveRecord{Game: record.ID, MoveMetric: mm}
	}
	return record, moves, nil
}

// createSearcher builds the agent for one game. Random agents are reseeded per
// game so repeated games differ.
func createSearcher(config metrics.AgentConfig, index int) (searcher.Searcher, error) {
	switch config.Kind {
	case metrics.RandomAgent:
		return searcher.NewRandom(config.Seed + uint64(index)), nil
	case metrics.AlphaBetaAgent:
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}

	evaluate, err := game.EvaluationFn(config.Evaluation)
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{searcher.WithEvaluationFn(evaluate), searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Maximizer != 0 {
		options = append(options, searcher.WithMaximizer(config.Maximizer))
	}
	if config.Unbounded {
		options = append(options, searcher.WithUnboundedFloor())
	}

	return searcher.NewAlphaBeta(options...), nil
}
