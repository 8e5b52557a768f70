// Package game implements the rules of Go: board state, move legality,
// capture resolution, the simple ko restriction, and area scoring. It has
// no dependency on search or any UI; agents and drivers consume it through
// Board, Move, and GameResult.
package game

import "errors"

// Color identifies the contents of a board point and the two players.
type Color int8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the other player's color. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Point is a board coordinate. Row 0 is the top row, Col 0 the left column.
type Point struct {
	Row, Col int
}

var (
	// ErrInvalidSize reports a board size outside {9, 13, 19}.
	ErrInvalidSize = errors.New("invalid board size")
	// ErrIllegalMove reports a move that is not legal in the given position.
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvariant reports a supposedly unreachable state.
	ErrInvariant = errors.New("internal invariant violated")
)
