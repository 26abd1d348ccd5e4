package searcher

import (
	"othello/experiments/metrics"
	"othello/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string {
	return "random"
}

func (r *Random) DecideMove(state game.State) game.Position {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Pass
	}
	return moves[r.rng.Intn(len(moves))]
}

func (r *Random) FindMove(state game.State) (game.Position, metrics.SearchMetric) {
	return r.DecideMove(state), metrics.SearchMetric{}
}
