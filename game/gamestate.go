package game

import (
	"fmt"
	"strings"
)

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// GameState is an N×N Othello position together with the side to move.
type GameState struct {
	Cells         [][]int // Cell values indexed [row][col]
	CurrentPlayer int     // The player to move
}

// NewGameState returns the standard starting position on a size×size board.
func NewGameState(size int) (*GameState, error) {
	if size < 4 || size%2 != 0 {
		return nil, fmt.Errorf("invalid board size %d: must be even and at least 4", size)
	}
	gs := &GameState{
		Cells:         newGrid(size),
		CurrentPlayer: PlayerOne,
	}
	mid := size / 2
	gs.Cells[mid-1][mid-1], gs.Cells[mid][mid] = PlayerTwo, PlayerTwo
	gs.Cells[mid-1][mid], gs.Cells[mid][mid-1] = PlayerOne, PlayerOne
	return gs, nil
}

// FromBoard builds a state from a copy of board with player to move.
func FromBoard(board [][]int, player int) *GameState {
	return &GameState{
		Cells:         copyGrid(board),
		CurrentPlayer: player,
	}
}

func newGrid(size int) [][]int {
	grid := make([][]int, size)
	for i := range grid {
		grid[i] = make([]int, size)
	}
	return grid
}

func copyGrid(grid [][]int) [][]int {
	cp := make([][]int, len(grid))
	for i, row := range grid {
		cp[i] = make([]int, len(row))
		copy(cp[i], row)
	}
	return cp
}

// Size returns the board dimension
func (gs *GameState) Size() int {
	return len(gs.Cells)
}

func (gs *GameState) Board() [][]int {
	return gs.Cells
}

func (gs *GameState) PlayerInTurn() int {
	return gs.CurrentPlayer
}

// Copy returns a deep copy of the GameState
func (gs *GameState) Copy() State {
	return &GameState{
		Cells:         copyGrid(gs.Cells),
		CurrentPlayer: gs.CurrentPlayer,
	}
}

func (gs *GameState) LegalMoves() []Position {
	return gs.legalMovesFor(gs.CurrentPlayer)
}

func (gs *GameState) legalMovesFor(player int) []Position {
	var moves []Position
	for row := range gs.Cells {
		for col := range gs.Cells[row] {
			p := Position{Row: row, Col: col}
			if gs.Cells[row][col] == Empty && gs.captures(p, player) > 0 {
				moves = append(moves, p)
			}
		}
	}
	return moves
}

func (gs *GameState) IsFinished() bool {
	return len(gs.legalMovesFor(gs.CurrentPlayer)) == 0 &&
		len(gs.legalMovesFor(Opponent(gs.CurrentPlayer))) == 0
}

func (gs *GameState) InsertToken(p Position) bool {
	if !gs.inBounds(p.Row, p.Col) || gs.Cells[p.Row][p.Col] != Empty {
		return false
	}
	player := gs.CurrentPlayer
	if gs.captures(p, player) == 0 {
		return false
	}

	for _, d := range directions {
		n := gs.flanked(p, d, player)
		for step := 1; step <= n; step++ {
			gs.Cells[p.Row+d[0]*step][p.Col+d[1]*step] = player
		}
	}
	gs.Cells[p.Row][p.Col] = player
	gs.ChangePlayer()
	return true
}

// ChangePlayer passes the turn to the opponent
func (gs *GameState) ChangePlayer() {
	gs.CurrentPlayer = Opponent(gs.CurrentPlayer)
}

// captures counts the opponent tokens player would flip by playing at p
func (gs *GameState) captures(p Position, player int) int {
	total := 0
	for _, d := range directions {
		total += gs.flanked(p, d, player)
	}
	return total
}

// flanked returns the length of the run of opponent tokens starting next to p in
// direction d that is closed by a token of player, or 0 if the run is open.
func (gs *GameState) flanked(p Position, d [2]int, player int) int {
	opponent := Opponent(player)
	row, col := p.Row+d[0], p.Col+d[1]
	run := 0
	for gs.inBounds(row, col) && gs.Cells[row][col] == opponent {
		row += d[0]
		col += d[1]
		run++
	}
	if run == 0 || !gs.inBounds(row, col) || gs.Cells[row][col] != player {
		return 0
	}
	return run
}

func (gs *GameState) inBounds(row, col int) bool {
	return row >= 0 && row < len(gs.Cells) && col >= 0 && col < len(gs.Cells)
}

// TokenCounts tallies the tokens of each player
func (gs *GameState) TokenCounts() (one, two int) {
	for _, row := range gs.Cells {
		for _, cell := range row {
			switch cell {
			case PlayerOne:
				one++
			case PlayerTwo:
				two++
			}
		}
	}
	return one, two
}

// Winner returns the player with more tokens, or Empty on a draw.
func (gs *GameState) Winner() int {
	one, two := gs.TokenCounts()
	switch {
	case one > two:
		return PlayerOne
	case two > one:
		return PlayerTwo
	default:
		return Empty
	}
}

func (gs *GameState) String() string {
	var sb strings.Builder
	for _, row := range gs.Cells {
		for col, cell := range row {
			if col > 0 {
				sb.WriteByte(' ')
			}
			switch cell {
			case PlayerOne:
				sb.WriteByte('X')
			case PlayerTwo:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
