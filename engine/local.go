package engine

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Local plays a game between in-process searchers. Agents[0] plays PlayerOne.
type Local struct {
	State  *game.GameState
	Agents []searcher.Searcher
}

var _ Engine = (*Local)(nil)

func LocalEngine(agents []searcher.Searcher, size int) (*Local, error) {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	state, err := game.NewGameState(size)
	if err != nil {
		return nil, err
	}

	return &Local{
		State:  state,
		Agents: agents,
	}, nil
}

// Run executes the entire game loop until neither side can move.
func (e *Local) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.PlayerInTurn(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %d (%s) is starting", e.State.PlayerInTurn(), e.agent(e.State.PlayerInTurn()).Name())

	step := 1
	for !e.State.IsFinished() && step <= MaxMoves {
		player := e.State.PlayerInTurn()
		legal := e.State.LegalMoves()
		if len(legal) == 0 {
			log.Debug().Msgf("player %d has no legal moves, passing", player)
			e.State.ChangePlayer()
			gameMetric.Passes++
			continue
		}

		agent := e.agent(player)
		move, searchMetric := agent.FindMove(e.State.Copy())
		if slices.Index(legal, move) < 0 {
			log.Warn().Msgf("%s chose %s which is not legal for player %d, playing %s instead", agent.Name(), move, player, legal[0])
			move = legal[0]
		}

		e.State.InsertToken(move)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: player %d plays %s\n%s", step, player, move, e.State)
		step++
	}

	if !e.State.IsFinished() {
		log.Warn().Msgf("stopped after %d moves without finishing", MaxMoves)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.TokensOne, gameMetric.TokensTwo = e.State.TokenCounts()
	gameMetric.Winner = e.State.Winner()

	return gameMetric.Winner, gameMetric, moveMetrics
}

func (e *Local) agent(player int) searcher.Searcher {
	return e.Agents[player-1]
}
