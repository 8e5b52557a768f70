package experiments

import (
	"fmt"
	"strconv"

	"github.com/rooklift/sgf"

	"goban/game"
)

// WriteSGF saves a finished game as an SGF file. Passes are recorded as
// empty B/W properties, the convention most viewers accept.
func WriteSGF(path string, size int, komi float64, moves []game.Move, result game.GameResult) error {
	root := sgf.NewTree(size)
	root.SetValue("KM", strconv.FormatFloat(komi, 'f', -1, 64))
	root.SetValue("RE", resultLabel(result))

	node := root
	colour := sgf.BLACK
	for _, m := range moves {
		if m.Pass {
			next := sgf.NewNode(node)
			if colour == sgf.BLACK {
				next.SetValue("B", "")
			} else {
				next.SetValue("W", "")
			}
			node = next
		} else {
			next, err := node.PlayColour(sgf.Point(m.Point.Col, m.Point.Row), colour)
			if err != nil {
				return fmt.Errorf("record move %v: %w", m, err)
			}
			node = next
		}
		if colour == sgf.BLACK {
			colour = sgf.WHITE
		} else {
			colour = sgf.BLACK
		}
	}

	return root.Save(path)
}

// resultLabel formats the RE property, e.g. "B+4.5" or "Draw".
func resultLabel(result game.GameResult) string {
	margin := result.Black.Total() - result.White.Total()
	switch {
	case result.Winner == game.Black:
		return fmt.Sprintf("B+%.1f", margin)
	case result.Winner == game.White:
		return fmt.Sprintf("W+%.1f", -margin)
	default:
		return "Draw"
	}
}
