package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("empty board is a draw", func(t *testing.T) {
		b, err := NewBoard(9)
		require.NoError(t, err)

		result := b.Score(0)
		require.Equal(t, Empty, result.Winner)
		require.Equal(t, 0.0, result.Black.Total())
		require.Equal(t, 0.0, result.White.Total())
	})

	t.Run("corner territory counts once per region", func(t *testing.T) {
		b, err := NewBoard(9)
		require.NoError(t, err)
		// Black seals the (0,0) corner, White seals the (8,8) corner. The
		// large remaining region touches both colors and counts for neither.
		b = playAll(t, b,
			PlaceMove(0, 1), PlaceMove(8, 7),
			PlaceMove(1, 0), PlaceMove(7, 8),
			PassMove(), PassMove(),
		)
		require.True(t, b.IsGameOver())

		result := b.Score(0)
		require.Equal(t, 2, result.Black.Stones)
		require.Equal(t, 1, result.Black.Territory)
		require.Equal(t, 2, result.White.Stones)
		require.Equal(t, 1, result.White.Territory)
		require.Equal(t, Empty, result.Winner, "equal area at komi 0 is a draw")
	})

	t.Run("komi breaks the tie for white", func(t *testing.T) {
		b, err := NewBoard(9)
		require.NoError(t, err)
		b = playAll(t, b,
			PlaceMove(0, 1), PlaceMove(8, 7),
			PlaceMove(1, 0), PlaceMove(7, 8),
			PassMove(), PassMove(),
		)

		result := b.Score(0.5)
		require.Equal(t, White, result.Winner)
		require.Equal(t, 3.5, result.White.Total())
		require.Equal(t, 3.0, result.Black.Total())
	})

	t.Run("single stone owns the whole board", func(t *testing.T) {
		b, err := NewBoard(9)
		require.NoError(t, err)
		b = playAll(t, b, PlaceMove(4, 4))

		result := b.Score(0)
		require.Equal(t, Black, result.Winner)
		require.Equal(t, 81.0, result.Black.Total(), "one stone plus all empty points")
		require.Equal(t, 0.0, result.White.Total())
	})
}
