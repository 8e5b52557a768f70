package searcher

import (
	"fmt"
	"math"

	"goban/experiments/metrics"
	"goban/game"
)

// Minimax is a fixed-depth minimax agent with alpha-beta pruning. It
// maximizes the injected evaluator for whoever is to move on the board it
// is handed and treats the opponent as minimizing that same score, with
// maximizing and minimizing layers following whose turn it is in each
// position rather than depth parity. Ties break toward the first move in
// enumeration order, so repeated calls on the same position return the
// same move.
type Minimax struct {
	depth    int
	evalName string
	evaluate game.Evaluator
	metrics  metrics.Collector
	last     metrics.SearchMetric
}

type Option func(*Minimax)

// WithEvaluator injects the leaf evaluation function. name labels the
// evaluator in metric records.
func WithEvaluator(name string, evaluate game.Evaluator) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evalName = name
			m.evaluate = evaluate
		}
	}
}

// WithMetrics enables per-search metric collection.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

// NewMinimax returns an agent searching to the given depth. The default
// evaluator is the stone counter.
func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 1 {
		panic("search depth must be at least 1")
	}
	m := &Minimax{
		depth:    depth,
		evalName: KindStones,
		evaluate: game.EvaluateStones,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// ChooseMove runs an alpha-beta search over the legal moves and returns
// the best one found.
func (m *Minimax) ChooseMove(b *game.Board) (game.Move, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, fmt.Errorf("%w: no legal moves, not even pass", game.ErrInvariant)
	}

	m.metrics.Start(m.depth, m.evalName)
	me := b.Player()
	alpha, beta := math.Inf(-1), math.Inf(1)
	best := moves[0]
	bestValue := math.Inf(-1)
	for _, mv := range moves {
		child, err := b.Play(mv)
		if err != nil {
			return game.Move{}, fmt.Errorf("%w: legal move %v rejected: %v", game.ErrInvariant, mv, err)
		}
		value := m.search(child, m.depth-1, alpha, beta, me)
		if value > bestValue {
			bestValue = value
			best = mv
		}
		if bestValue > alpha {
			alpha = bestValue
		}
	}
	m.last = m.metrics.Complete()
	return best, nil
}

// LastMetric returns the metrics of the most recent search.
func (m *Minimax) LastMetric() metrics.SearchMetric { return m.last }

// search returns the value of b for the root player me with remaining
// plies left. The alpha/beta window travels down the recursion; a branch
// is abandoned as soon as alpha >= beta.
func (m *Minimax) search(b *game.Board, remaining int, alpha, beta float64, me game.Color) float64 {
	m.metrics.AddNode()
	if remaining == 0 || b.IsGameOver() {
		m.metrics.AddLeaf()
		return m.evaluate(b, me)
	}

	moves := b.LegalMoves()
	if b.Player() == me {
		value := math.Inf(-1)
		for _, mv := range moves {
			child, err := b.Play(mv)
			if err != nil {
				panic(fmt.Sprintf("legal move rejected during search: %v", err))
			}
			if v := m.search(child, remaining-1, alpha, beta, me); v > value {
				value = v
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				m.metrics.AddPrune()
				break
			}
		}
		return value
	}

	value := math.Inf(1)
	for _, mv := range moves {
		child, err := b.Play(mv)
		if err != nil {
			panic(fmt.Sprintf("legal move rejected during search: %v", err))
		}
		if v := m.search(child, remaining-1, alpha, beta, me); v < value {
			value = v
		}
		if value < beta {
			beta = value
		}
		if alpha >= beta {
			m.metrics.AddPrune()
			break
		}
	}
	return value
}
