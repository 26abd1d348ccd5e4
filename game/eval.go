package game

import (
	"fmt"
	"sync"
)

// Positional weights
const (
	CornerWeight     = 5 // Corners can never be flipped back
	EdgeWeight       = 4
	XSquareWeight    = 1 // X and C squares next to a corner give the corner away
	SmallBoardWeight = 2 // Every non-corner cell of a 4×4 board
)

var weightTables sync.Map // board size -> [][]int

// EvaluatePositional sums the positional weights of the cells owned by player.
// Opponent tokens contribute nothing.
func EvaluatePositional(s State, player int) int {
	board := s.Board()
	weights := PositionalWeights(len(board))

	score := 0
	for row := range board {
		for col, cell := range board[row] {
			if cell == player {
				score += weights[row][col]
			}
		}
	}
	return score
}

// EvaluateTokens counts the tokens owned by player
func EvaluateTokens(s State, player int) int {
	count := 0
	for _, row := range s.Board() {
		for _, cell := range row {
			if cell == player {
				count++
			}
		}
	}
	return count
}

// EvaluationFn resolves an evaluation function by its config name
func EvaluationFn(name string) (Evaluate, error) {
	switch name {
	case "", "positional":
		return EvaluatePositional, nil
	case "tokens":
		return EvaluateTokens, nil
	default:
		return nil, fmt.Errorf("unknown evaluation %q", name)
	}
}

// PositionalWeights returns the cached weight table for a size×size board.
// The table is shared and must not be modified.
func PositionalWeights(size int) [][]int {
	if table, ok := weightTables.Load(size); ok {
		return table.([][]int)
	}

	table := newGrid(size)
	for row := range table {
		for col := range table[row] {
			table[row][col] = positionalWeight(row, col, size)
		}
	}

	actual, _ := weightTables.LoadOrStore(size, table)
	return actual.([][]int)
}

func positionalWeight(row, col, size int) int {
	last := size - 1
	onRowEdge := row == 0 || row == last
	onColEdge := col == 0 || col == last

	switch {
	case onRowEdge && onColEdge:
		return CornerWeight
	case size == 4:
		return SmallBoardWeight
	case nearCorner(row, last) && nearCorner(col, last):
		return XSquareWeight
	case onRowEdge && col > 1 && col < last-1:
		return EdgeWeight
	case onColEdge && row > 1 && row < last-1:
		return EdgeWeight
	default:
		return 0
	}
}

// nearCorner reports whether index i lies in the two lines next to either border
func nearCorner(i, last int) bool {
	return i <= 1 || i >= last-1
}
