package game

import "fmt"

// Cell values
const (
	Empty     = 0
	PlayerOne = 1
	PlayerTwo = 2
)

// Position identifies a cell by row and column
type Position struct {
	Row int
	Col int
}

// Pass is the sentinel position returned when there is no move to play
var Pass = Position{Row: -1, Col: -1}

func (p Position) IsPass() bool {
	return p == Pass
}

func (p Position) String() string {
	if p.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// State is the game position consumed by the searchers. Searchers never mutate
// a State they did not create with Copy.
type State interface {
	// Board returns the grid indexed [row][col]. Callers must treat it as read-only.
	Board() [][]int
	PlayerInTurn() int
	// LegalMoves enumerates moves for the side to move in row-major order
	LegalMoves() []Position
	// IsFinished reports whether neither side has a legal move
	IsFinished() bool
	Copy() State
	// InsertToken places a token for the side to move, flips the bracketed
	// opponent tokens and passes the turn. Illegal moves leave the state as is.
	InsertToken(p Position) bool
}

// Evaluates the state to a score for player. Higher is better for player, scores
// are only comparable within a single search.
type Evaluate func(s State, player int) int

// Opponent returns the other player
func Opponent(player int) int {
	return PlayerOne + PlayerTwo - player
}
