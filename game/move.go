package game

import "fmt"

// Move is either a stone placement or a pass. A move is only meaningful
// relative to a specific board: the same placement can be legal in one
// position and illegal in the next.
type Move struct {
	Point Point
	Pass  bool
}

// PlaceMove returns a stone placement at (row, col).
func PlaceMove(row, col int) Move {
	return Move{Point: Point{Row: row, Col: col}}
}

// PassMove returns the pass move.
func PassMove() Move {
	return Move{Pass: true}
}

func (m Move) String() string {
	if m.Pass {
		return "pass"
	}
	return fmt.Sprintf("(%d,%d)", m.Point.Row, m.Point.Col)
}

// columnLabels skips I, following the usual Go diagram convention.
const columnLabels = "ABCDEFGHJKLMNOPQRST"
