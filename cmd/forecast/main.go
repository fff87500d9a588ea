package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/philipbinhu/Stock/infra/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {

	key := flag.String("config", "", "config key under infra/config, empty for the defaults")
	dir := flag.String("dir", "", "dataset directory, overrides the config")
	workers := flag.Int("workers", 0, "series processed in parallel, overrides the config")
	ordering := flag.String("ordering", "", "training value ordering (reverse|as-loaded), overrides the config")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.LoadForecast(*key)
	if err != nil {
		log.Fatal().Err(err).Str("config", *key).Msg("could not load config")
	}
	if *dir != "" {
		cfg.Dataset.Dir = *dir
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *ordering != "" {
		cfg.Ordering = *ordering
	}

	ctx, cnl := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cnl()

	outcome, err := run(ctx, cfg, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("could not complete forecast")
	}
	log.Info().
		Int("series", len(outcome.Results)).
		Int("failed", len(outcome.Failures)).
		Msg("done")
}
