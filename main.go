package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"shogi/engine"
	"shogi/searcher"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML match config")
	debug := flag.Bool("debug", false, "log every move")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	cfg := defaultMatch()
	if *configPath != "" {
		loaded, err := engine.LoadMatchConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("loading match config")
		}
		cfg = loaded
	}

	local, err := cfg.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("building match")
	}
	if _, err := local.Run(); err != nil {
		log.Fatal().Err(err).Msg("running match")
	}
}

// defaultMatch pits a shallow minimax against MCTS on the compact board.
func defaultMatch() engine.MatchConfig {
	return engine.MatchConfig{
		Variant: "animal",
		Sente: engine.AgentConfig{
			Kind:   "minimax",
			Search: searcher.Config{Depth: 4},
		},
		Gote: engine.AgentConfig{
			Kind: "mcts",
			Seed: 1,
			Search: searcher.Config{
				Simulations: 400,
				Goroutines:  4,
			},
		},
	}
}
