package experiments

import (
	"path/filepath"
	"testing"

	"github.com/rooklift/sgf"
	"github.com/stretchr/testify/require"

	"goban/game"
)

func TestWriteSGF(t *testing.T) {
	moves := []game.Move{
		game.PlaceMove(2, 2),
		game.PlaceMove(6, 6),
		game.PlaceMove(2, 6),
		game.PassMove(),
		game.PassMove(),
	}
	result := game.GameResult{
		Winner: game.Black,
		Black:  game.Tally{Stones: 3, Territory: 40},
		White:  game.Tally{Stones: 1},
	}

	path := filepath.Join(t.TempDir(), "game.sgf")
	require.NoError(t, WriteSGF(path, 9, 0, moves, result))

	root, err := sgf.Load(path)
	require.NoError(t, err)

	size, ok := root.GetValue("SZ")
	require.True(t, ok)
	require.Equal(t, "9", size)
	re, ok := root.GetValue("RE")
	require.True(t, ok)
	require.Equal(t, "B+42.0", re)
	km, ok := root.GetValue("KM")
	require.True(t, ok)
	require.Equal(t, "0", km)

	// Walk the main line and check the move properties alternate colors,
	// with passes stored as empty values.
	node := root
	count := 0
	for len(node.Children()) > 0 {
		node = node.Children()[0]
		key := "B"
		if count%2 == 1 {
			key = "W"
		}
		value, ok := node.GetValue(key)
		require.True(t, ok, "node %d should hold a %s move", count, key)
		if moves[count].Pass {
			require.Empty(t, value)
		} else {
			require.NotEmpty(t, value)
		}
		count++
	}
	require.Equal(t, len(moves), count)
}

func TestResultLabel(t *testing.T) {
	t.Run("white win", func(t *testing.T) {
		result := game.GameResult{
			Winner: game.White,
			Black:  game.Tally{Stones: 10},
			White:  game.Tally{Stones: 12, Komi: 0.5},
		}
		require.Equal(t, "W+2.5", resultLabel(result))
	})

	t.Run("draw", func(t *testing.T) {
		require.Equal(t, "Draw", resultLabel(game.GameResult{}))
	})
}
