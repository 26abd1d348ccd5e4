package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"othello/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment config, defaults to alpha-beta vs random")
	size := flag.Int("size", 0, "Board size, overrides the config")
	depth := flag.Int("depth", 0, "Search depth of every alpha-beta agent, overrides the config")
	games := flag.Int("games", 0, "Games per match up, overrides the config")
	out := flag.String("out", "", "CSV output root, overrides the config")
	db := flag.String("db", "", "SQLite database path, overrides the config")
	debug := flag.Bool("debug", false, "Log every board")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := experiments.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *size > 0 {
		cfg.BoardSize = *size
	}
	if *depth > 0 {
		for i := range cfg.Agents {
			cfg.Agents[i].Depth = *depth
		}
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *out != "" {
		cfg.OutputDir = *out
	}
	if *db != "" {
		cfg.Database = *db
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := experiments.Run(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	for _, agent := range cfg.Agents {
		tally := result.Tallies[agent.ID]
		log.Info().
			Int("agent", agent.ID).
			Str("kind", agent.Kind).
			Int("wins", tally.Wins).
			Int("losses", tally.Losses).
			Int("draws", tally.Draws).
			Msg("result")
	}
	if result.Dir != "" {
		log.Info().Msgf("records written to %s", result.Dir)
	}
}
