package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"goban/experiments/metrics"
	"goban/game"
	"goban/searcher"
)

// Local plays one game between two agents in process. Moves are applied
// through game.Board.Play only, so an agent returning an illegal move
// aborts the game with an error instead of being silently corrected.
type Local struct {
	board    *game.Board
	agents   map[game.Color]searcher.Agent
	komi     float64
	maxMoves int
	history  []game.Move
}

type Option func(*Local)

// WithKomi adds komi to White's score.
func WithKomi(komi float64) Option {
	return func(e *Local) { e.komi = komi }
}

// WithMaxMoves overrides the move cap.
func WithMaxMoves(n int) Option {
	return func(e *Local) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// New returns an engine for one game of the given size.
func New(size int, black, white searcher.Agent, options ...Option) (*Local, error) {
	if black == nil || white == nil {
		return nil, fmt.Errorf("both agents are required")
	}
	board, err := game.NewBoard(size)
	if err != nil {
		return nil, err
	}
	e := &Local{
		board:    board,
		agents:   map[game.Color]searcher.Agent{game.Black: black, game.White: white},
		maxMoves: DefaultMaxMoves(size),
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run loops the agents' moves until two passes or the move cap, then
// scores the final position.
func (e *Local) Run() (game.GameResult, metrics.GameMetric, []metrics.MoveMetric, error) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	for !e.board.IsGameOver() && e.board.MoveCount() < e.maxMoves {
		player := e.board.Player()
		agent := e.agents[player]

		t0 := time.Now()
		move, err := agent.ChooseMove(e.board)
		if err != nil {
			return game.GameResult{}, metrics.GameMetric{}, moveMetrics,
				fmt.Errorf("%v agent: %w", player, err)
		}
		next, err := e.board.Play(move)
		if err != nil {
			return game.GameResult{}, metrics.GameMetric{}, moveMetrics,
				fmt.Errorf("%v agent played %v: %w", player, move, err)
		}

		mm := metrics.MoveMetric{Step: e.board.MoveCount() + 1, Player: player.String()}
		if r, ok := agent.(metrics.Reporter); ok {
			mm.SearchMetric = r.LastMetric()
		} else {
			mm.Duration = time.Since(t0)
		}
		moveMetrics = append(moveMetrics, mm)

		e.history = append(e.history, move)
		e.board = next

		log.Debug().
			Int("step", e.board.MoveCount()).
			Str("player", player.String()).
			Stringer("move", move).
			Dur("took", time.Since(t0)).
			Msg("move played")
	}

	result := e.board.Score(e.komi)
	end := time.Now()
	gm := metrics.GameMetric{
		Size:       e.board.Size(),
		Winner:     winnerLabel(result.Winner),
		BlackScore: result.Black.Total(),
		WhiteScore: result.White.Total(),
		Moves:      e.board.MoveCount(),
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
	}
	log.Info().
		Str("winner", gm.Winner).
		Float64("black", gm.BlackScore).
		Float64("white", gm.WhiteScore).
		Int("moves", gm.Moves).
		Msg("game over")
	return result, gm, moveMetrics, nil
}

// Board returns the current position.
func (e *Local) Board() *game.Board { return e.board }

// Moves returns the move history played so far.
func (e *Local) Moves() []game.Move { return e.history }

func winnerLabel(c game.Color) string {
	if c == game.Empty {
		return "draw"
	}
	return c.String()
}
