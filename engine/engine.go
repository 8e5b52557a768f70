// Package engine runs games between agents on top of the game core.
package engine

import (
	"goban/experiments/metrics"
	"goban/game"
)

// Engine runs a game to completion.
type Engine interface {
	Run() (game.GameResult, metrics.GameMetric, []metrics.MoveMetric, error)
}

// DefaultMaxMoves caps runaway games between weak agents. Two passes end
// a game well before the cap in normal play.
func DefaultMaxMoves(size int) int { return 2 * size * size }
