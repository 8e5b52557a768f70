// Package experiments runs agent tournaments and records the results as
// CSV files and SGF game records.
package experiments

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"goban/bootstrap"
	"goban/engine"
	"goban/experiments/metrics"
	"goban/game"
	"goban/searcher"
)

// Matchup pairs two agent configs for a series of games.
type Matchup struct {
	Black metrics.AgentConfig
	White metrics.AgentConfig
}

// RunTournament plays the configured number of games for every matchup
// and board size, then writes agents.csv, games.csv, moves.csv and one
// SGF file per game into a timestamped results directory.
func RunTournament(cfg *bootstrap.Config) error {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: searcher.KindStones, Depth: cfg.Depth},
		{ID: 2, Kind: searcher.KindLiberties, Depth: cfg.Depth},
		{ID: 3, Kind: searcher.KindRandom, Depth: 0},
	}
	matchups := []Matchup{
		{Black: configs[0], White: configs[1]},
		{Black: configs[1], White: configs[0]},
		{Black: configs[0], White: configs[2]},
		{Black: configs[2], White: configs[0]},
		{Black: configs[1], White: configs[2]},
		{Black: configs[2], White: configs[1]},
	}

	writer, err := metrics.NewWriter(cfg.OutputDir, "tournament")
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("tournament started")

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	for _, size := range cfg.BoardSizes {
		for _, matchup := range matchups {
			log.Info().
				Int("size", size).
				Str("black", matchup.Black.Kind).
				Str("white", matchup.White.Kind).
				Int("games", cfg.Games).
				Msg("matchup started")
			for i := 0; i < cfg.Games; i++ {
				record, mms, err := runGame(cfg, writer.Dir(), size, matchup)
				if err != nil {
					return fmt.Errorf("size %d game %d: %w", size, i+1, err)
				}
				record.ID = len(gameRecords) + 1
				gameRecords = append(gameRecords, record)
				for _, mm := range mms {
					moveRecords = append(moveRecords, metrics.MoveRecord{Game: record.ID, MoveMetric: mm})
				}
			}
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	logWinRates(gameRecords)
	log.Info().Str("dir", writer.Dir()).Int("games", len(gameRecords)).Msg("tournament finished")
	return nil
}

func runGame(cfg *bootstrap.Config, dir string, size int, matchup Matchup) (metrics.GameRecord, []metrics.MoveMetric, error) {
	black, err := searcher.New(matchup.Black.Kind, matchup.Black.Depth)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	white, err := searcher.New(matchup.White.Kind, matchup.White.Depth)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	options := []engine.Option{engine.WithKomi(cfg.Komi)}
	if cfg.MaxMoves > 0 {
		options = append(options, engine.WithMaxMoves(cfg.MaxMoves))
	}
	e, err := engine.New(size, black, white, options...)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	result, gm, mms, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	name := uuid.NewString() + ".sgf"
	if err := WriteSGF(filepath.Join(dir, name), size, cfg.Komi, e.Moves(), result); err != nil {
		return metrics.GameRecord{}, nil, err
	}

	record := metrics.GameRecord{
		Black:      matchup.Black.ID,
		White:      matchup.White.ID,
		SGF:        name,
		GameMetric: gm,
	}
	return record, mms, nil
}

// logWinRates summarizes wins per agent id across both colors.
func logWinRates(records []metrics.GameRecord) {
	wins := make(map[int]int)
	played := make(map[int]int)
	for _, r := range records {
		played[r.Black]++
		played[r.White]++
		switch r.Winner {
		case game.Black.String():
			wins[r.Black]++
		case game.White.String():
			wins[r.White]++
		}
	}
	for id, n := range played {
		log.Info().
			Int("agent", id).
			Int("played", n).
			Int("won", wins[id]).
			Float64("win_rate", float64(wins[id])/float64(n)).
			Msg("agent summary")
	}
}
