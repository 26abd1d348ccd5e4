package metrics

// Agent kinds
const (
	AlphaBetaAgent = "alphabeta"
	RandomAgent    = "random"
)

// AgentConfig describes one competitor of an experiment
type AgentConfig struct {
	ID         int    `yaml:"id"`
	Kind       string `yaml:"kind"`       // AlphaBetaAgent or RandomAgent
	Depth      int    `yaml:"depth"`      // Search depth, default when <= 0
	Evaluation string `yaml:"evaluation"` // "positional" (default) or "tokens"
	Maximizer  int    `yaml:"maximizer"`  // Pinned maximizing player, 0 follows the side to move
	Unbounded  bool   `yaml:"unbounded"`  // Start running maxima at math.MinInt instead of 0
	Seed       uint64 `yaml:"seed"`       // Random agent seed
}
