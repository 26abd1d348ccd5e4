package experiments

import (
	"fmt"
	"os"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher"

	"gopkg.in/yaml.v3"
)

// Config describes an experiment: who plays whom, how often and on which board
type Config struct {
	Name      string                `yaml:"name"`
	BoardSize int                   `yaml:"board_size"`
	Games     int                   `yaml:"games"`      // Per match up
	OutputDir string                `yaml:"output_dir"` // CSV root, skipped when empty
	Database  string                `yaml:"database"`   // SQLite path, skipped when empty
	Agents    []metrics.AgentConfig `yaml:"agents"`
	MatchUps  [][]int               `yaml:"match_ups"` // Pairs of agent IDs
}

// DefaultConfig pits the alpha-beta agent against the random agent
func DefaultConfig() Config {
	return Config{
		Name:      "alphabeta_vs_random",
		BoardSize: meta.BOARD_SIZE,
		Games:     meta.NUM_GAMES,
		OutputDir: meta.OUTPUT_DIR,
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: metrics.AlphaBetaAgent, Depth: searcher.MaxDepth},
			{ID: 2, Kind: metrics.RandomAgent, Seed: 1},
		},
		MatchUps: [][]int{{1, 2}},
	}
}

// LoadConfig reads a YAML experiment config on top of DefaultConfig
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("missing experiment name")
	}
	if c.BoardSize < 4 || c.BoardSize%2 != 0 {
		return fmt.Errorf("board size %d must be even and at least 4", c.BoardSize)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games per match up must be positive, got %d", c.Games)
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("duplicate agent id %d", agent.ID)
		}
		ids[agent.ID] = true

		switch agent.Kind {
		case metrics.AlphaBetaAgent, metrics.RandomAgent:
		default:
			return fmt.Errorf("agent %d has unknown kind %q", agent.ID, agent.Kind)
		}
		if _, err := game.EvaluationFn(agent.Evaluation); err != nil {
			return fmt.Errorf("agent %d: %w", agent.ID, err)
		}
		if agent.Maximizer != 0 && agent.Maximizer != game.PlayerOne && agent.Maximizer != game.PlayerTwo {
			return fmt.Errorf("agent %d has unknown maximizer %d", agent.ID, agent.Maximizer)
		}
	}

	if len(c.MatchUps) == 0 {
		return fmt.Errorf("no match ups")
	}
	for i, matchUp := range c.MatchUps {
		if len(matchUp) != 2 {
			return fmt.Errorf("match up %d must name two agents, got %d", i+1, len(matchUp))
		}
		for _, id := range matchUp {
			if !ids[id] {
				return fmt.Errorf("match up %d refers to unknown agent %d", i+1, id)
			}
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}
