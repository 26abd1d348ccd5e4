package engine

import "othello/experiments/metrics"

// MaxMoves bounds a game in case an agent keeps returning unusable moves
const MaxMoves = 10000

type Engine interface {
	// Run plays a game till neither side can move or MaxMoves is reached
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
