package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"goban/bootstrap"
	"goban/engine"
	"goban/experiments"
	"goban/searcher"
)

func main() {
	mode := flag.String("mode", "play", "run mode: play or tournament")
	cfgPath := flag.String("config", "", "path to a config file")
	size := flag.Int("size", 9, "board size (9, 13 or 19)")
	depth := flag.Int("depth", 2, "search depth for minimax agents")
	games := flag.Int("games", 0, "games per matchup in tournament mode")
	blackKind := flag.String("black", searcher.KindStones, "black agent: random, stones, liberties or territory")
	whiteKind := flag.String("white", searcher.KindLiberties, "white agent: random, stones, liberties or territory")
	komi := flag.Float64("komi", 0, "points added to white's score")
	seed := flag.Uint64("seed", 0, "seed for random agents, 0 seeds from the clock")
	out := flag.String("out", "", "directory for tournament records")
	verbose := flag.Bool("v", false, "log every move")
	flag.Parse()

	cfg, err := bootstrap.Setup(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "depth":
			cfg.Depth = *depth
		case "games":
			cfg.Games = *games
		case "komi":
			cfg.Komi = *komi
		case "seed":
			cfg.Seed = *seed
		case "out":
			cfg.OutputDir = *out
		case "size":
			cfg.BoardSizes = []int{*size}
		}
	})

	setupLogging(*verbose, cfg.LogLevel)

	switch *mode {
	case "play":
		err = playGame(*size, *blackKind, *whiteKind, cfg)
	case "tournament":
		err = experiments.RunTournament(cfg)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func setupLogging(verbose bool, level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	if verbose {
		parsed = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

func playGame(size int, blackKind, whiteKind string, cfg *bootstrap.Config) error {
	black, err := buildAgent(blackKind, cfg)
	if err != nil {
		return err
	}
	white, err := buildAgent(whiteKind, cfg)
	if err != nil {
		return err
	}

	options := []engine.Option{engine.WithKomi(cfg.Komi)}
	if cfg.MaxMoves > 0 {
		options = append(options, engine.WithMaxMoves(cfg.MaxMoves))
	}
	e, err := engine.New(size, black, white, options...)
	if err != nil {
		return err
	}
	result, gm, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Println(e.Board())
	fmt.Printf("black (%s): %.1f\n", blackKind, result.Black.Total())
	fmt.Printf("white (%s): %.1f\n", whiteKind, result.White.Total())
	fmt.Printf("result: %s in %d moves\n", gm.Winner, gm.Moves)
	return nil
}

func buildAgent(kind string, cfg *bootstrap.Config) (searcher.Agent, error) {
	if kind == searcher.KindRandom && cfg.Seed != 0 {
		return searcher.NewRandom(cfg.Seed), nil
	}
	return searcher.New(kind, cfg.Depth)
}
