package searcher

import (
	"fmt"
	"math"
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

type Option func(ab *AlphaBeta)

// AlphaBeta selects moves with depth-limited minimax and alpha-beta pruning.
type AlphaBeta struct {
	depth     int
	evaluate  game.Evaluate
	maximizer int // 0 maximizes for the side to move at the root
	floor     int
	metrics   metrics.Collector
}

func WithDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth >= 0 {
			ab.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

// WithMaximizer pins the maximizing side regardless of who moves at the root.
// Pinning game.PlayerTwo plays for player two even when deciding player one's moves.
func WithMaximizer(player int) Option {
	return func(ab *AlphaBeta) {
		if player == game.PlayerOne || player == game.PlayerTwo {
			ab.maximizer = player
		}
	}
}

// WithUnboundedFloor starts running maxima at math.MinInt instead of ZeroFloor
func WithUnboundedFloor() Option {
	return func(ab *AlphaBeta) {
		ab.floor = math.MinInt
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		depth:    MaxDepth,
		evaluate: game.EvaluatePositional,
		floor:    ZeroFloor,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

func (ab *AlphaBeta) Name() string {
	return fmt.Sprintf("alphabeta(depth=%d)", ab.depth)
}

// DecideMove returns the best scoring legal move, or game.Pass if there is none.
func (ab *AlphaBeta) DecideMove(state game.State) game.Position {
	move, _ := ab.FindMove(state)
	return move
}

func (ab *AlphaBeta) FindMove(state game.State) (game.Position, metrics.SearchMetric) {
	ab.metrics.Start(ab.depth)

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Pass, ab.metrics.Complete()
	}

	s := ab.newSearch(state)
	best := ab.floor
	bestMove := game.Pass // None until a score reaches the floor
	for _, move := range moves {
		child := state.Copy()
		child.InsertToken(move)
		score := s.value(child, math.MinInt, math.MaxInt, 0)
		if score >= best {
			best = score
			bestMove = move
		}
	}

	if bestMove.IsPass() {
		log.Warn().Msgf("no move for player %d scored at least %d among %d legal moves", state.PlayerInTurn(), ab.floor, len(moves))
	}

	metric := ab.metrics.Complete()
	metric.Score = best
	return bestMove, metric
}

func (ab *AlphaBeta) newSearch(root game.State) *search {
	maximizer := ab.maximizer
	if maximizer == 0 {
		maximizer = root.PlayerInTurn()
	}
	return &search{
		maxDepth:  ab.depth,
		maximizer: maximizer,
		floor:     ab.floor,
		evaluate:  ab.evaluate,
		metrics:   ab.metrics,
	}
}

// search holds the parameters of a single decision
type search struct {
	maxDepth  int
	maximizer int
	floor     int
	evaluate  game.Evaluate
	metrics   metrics.Collector
}

// value dispatches on the side to move recorded in the state
func (s *search) value(state game.State, alpha, beta, depth int) int {
	if state.PlayerInTurn() == s.maximizer {
		return s.maxValue(state, alpha, beta, depth)
	}
	return s.minValue(state, alpha, beta, depth)
}

func (s *search) maxValue(state game.State, alpha, beta, depth int) int {
	s.metrics.AddNode()
	if depth >= s.maxDepth || state.IsFinished() {
		s.metrics.AddLeaf()
		return s.evaluate(state, s.maximizer)
	}
	depth++

	best := s.floor
	for _, move := range state.LegalMoves() {
		child := state.Copy()
		child.InsertToken(move)
		v := s.value(child, alpha, beta, depth)
		if v > best {
			best = v
		}
		if best >= beta { // Min ancestor will never let play reach here
			s.metrics.AddCutoff()
			return best
		}
		alpha = max(alpha, best)
	}
	return best
}

func (s *search) minValue(state game.State, alpha, beta, depth int) int {
	s.metrics.AddNode()
	if depth >= s.maxDepth || state.IsFinished() {
		s.metrics.AddLeaf()
		return s.evaluate(state, s.maximizer)
	}
	depth++

	best := math.MaxInt
	for _, move := range state.LegalMoves() {
		child := state.Copy()
		child.InsertToken(move)
		v := s.value(child, alpha, beta, depth)
		if v < best {
			best = v
		}
		if best <= alpha {
			s.metrics.AddCutoff()
			return best
		}
		beta = min(beta, best)
	}
	return best
}
