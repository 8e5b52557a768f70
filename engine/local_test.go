package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goban/game"
	"goban/searcher"
)

func TestNew(t *testing.T) {
	t.Run("requires both agents", func(t *testing.T) {
		_, err := New(9, nil, searcher.NewRandom(1))
		require.Error(t, err)
		_, err = New(9, searcher.NewRandom(1), nil)
		require.Error(t, err)
	})

	t.Run("rejects invalid sizes", func(t *testing.T) {
		_, err := New(7, searcher.NewRandom(1), searcher.NewRandom(2))
		require.ErrorIs(t, err, game.ErrInvalidSize)
	})
}

func TestRunRandomGame(t *testing.T) {
	e, err := New(9, searcher.NewRandom(1), searcher.NewRandom(2))
	require.NoError(t, err)

	result, gm, moveMetrics, err := e.Run()
	require.NoError(t, err)

	require.LessOrEqual(t, gm.Moves, DefaultMaxMoves(9), "game stops at the move cap")
	require.Greater(t, gm.Moves, 0)
	require.Len(t, e.Moves(), gm.Moves, "history matches the recorded move count")
	require.Len(t, moveMetrics, gm.Moves)
	require.Equal(t, 9, gm.Size)

	switch result.Winner {
	case game.Black:
		require.Equal(t, "black", gm.Winner)
		require.Greater(t, result.Black.Total(), result.White.Total())
	case game.White:
		require.Equal(t, "white", gm.Winner)
		require.Greater(t, result.White.Total(), result.Black.Total())
	default:
		require.Equal(t, "draw", gm.Winner)
	}
}

func TestRunMinimaxMetrics(t *testing.T) {
	black, err := searcher.New(searcher.KindStones, 1)
	require.NoError(t, err)
	white := searcher.NewRandom(3)

	e, err := New(9, black, white, WithMaxMoves(10))
	require.NoError(t, err)

	_, gm, moveMetrics, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, 10, gm.Moves, "two agents that never double pass run to the cap")

	for _, mm := range moveMetrics {
		if mm.Player == "black" {
			require.Greater(t, mm.Nodes, 0, "minimax moves carry search metrics")
			require.Equal(t, searcher.KindStones, mm.Evaluator)
		} else {
			require.Equal(t, 0, mm.Nodes, "the random agent searches nothing")
		}
	}
}

func TestWithKomi(t *testing.T) {
	pass := passAgent{}
	e, err := New(9, pass, pass, WithKomi(5.5))
	require.NoError(t, err)

	result, gm, _, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, 2, gm.Moves, "two passes end the game immediately")
	require.Equal(t, game.White, result.Winner, "komi decides an empty board")
	require.Equal(t, 5.5, result.White.Total())
}

type passAgent struct{}

func (passAgent) ChooseMove(*game.Board) (game.Move, error) {
	return game.PassMove(), nil
}
