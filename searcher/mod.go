package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

// Searcher picks a move for the side to move in state, or game.Pass when it has none.
type Searcher interface {
	FindMove(state game.State) (game.Position, metrics.SearchMetric)
	Name() string
}
