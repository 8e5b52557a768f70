// Package searcher provides the move-choosing agents: depth-bounded
// minimax with alpha-beta pruning, and a uniform random baseline.
package searcher

import (
	"fmt"

	"goban/game"
)

// Agent chooses a move for the player to move on the given board. The
// board is never mutated; implementations explore positions through
// copies produced by game.Board.Play.
type Agent interface {
	ChooseMove(b *game.Board) (game.Move, error)
}

// Agent kinds accepted by New.
const (
	KindRandom    = "random"
	KindStones    = "stones"
	KindLiberties = "liberties"
	KindTerritory = "territory"
)

// New builds an agent by kind. depth applies to the minimax kinds and is
// ignored for the random baseline.
func New(kind string, depth int) (Agent, error) {
	switch kind {
	case KindRandom:
		return NewRandom(0), nil
	case KindStones:
		return NewMinimax(depth, WithEvaluator(KindStones, game.EvaluateStones), WithMetrics()), nil
	case KindLiberties:
		return NewMinimax(depth, WithEvaluator(KindLiberties, game.EvaluateLiberties), WithMetrics()), nil
	case KindTerritory:
		return NewMinimax(depth, WithEvaluator(KindTerritory, game.EvaluateTerritory), WithMetrics()), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", kind)
	}
}
