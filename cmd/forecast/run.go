package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/philipbinhu/Stock/infra/config"
	"github.com/philipbinhu/Stock/internal/bayes"
	"github.com/philipbinhu/Stock/internal/forecast"
	"github.com/philipbinhu/Stock/internal/metrics"
	"github.com/philipbinhu/Stock/internal/report"
	"github.com/philipbinhu/Stock/internal/storage"
	"github.com/philipbinhu/Stock/internal/storage/file"
	"github.com/philipbinhu/Stock/internal/storage/file/json"
	cointime "github.com/philipbinhu/Stock/internal/time"
	"github.com/rs/zerolog/log"
)

func inverter(name string) (bayes.Inverter, error) {
	switch strings.ToLower(name) {
	case "", "cholesky":
		return bayes.Cholesky, nil
	case "lu":
		return bayes.LU, nil
	}
	return nil, fmt.Errorf("unknown inverter '%s'", name)
}

func newPipeline(cfg config.Forecast) (*forecast.Pipeline, error) {
	model := bayes.NewConfig(cfg.Model.Alpha, cfg.Model.Beta, cfg.Model.Degree)
	if cfg.Model.MaxCondition > 0 {
		model.MaxCondition = cfg.Model.MaxCondition
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}

	ordering, err := forecast.ParseOrdering(cfg.Ordering)
	if err != nil {
		return nil, err
	}

	inv, err := inverter(cfg.Model.Inverter)
	if err != nil {
		return nil, err
	}

	return forecast.NewPipeline(model,
		forecast.WithOrdering(ordering),
		forecast.WithInverter(inv),
		forecast.WithBaseline(cfg.Baseline),
	), nil
}

func run(ctx context.Context, cfg config.Forecast, w io.Writer) (forecast.Outcome, error) {
	loc, err := cointime.Location(cfg.Dataset.Location)
	if err != nil {
		return forecast.Outcome{}, err
	}

	csv := file.DefaultCSV()
	csv.Location = loc
	source := file.NewSource(file.Pattern{
		Dir:    cfg.Dataset.Dir,
		Prefix: cfg.Dataset.Prefix,
		Ext:    cfg.Dataset.Ext,
		Count:  cfg.Dataset.Count,
	}, csv)

	pipeline, err := newPipeline(cfg)
	if err != nil {
		return forecast.Outcome{}, err
	}

	text := report.NewText(w)
	if cfg.Output.Plot {
		text = text.WithPlot()
	}
	prom := metrics.NewPrometheusMetrics()
	sinks := []forecast.Sink{text, prom}

	var persistence storage.Persistence = storage.NewVoidStorage()
	if cfg.Output.Reports != "" {
		persistence = json.NewStorage(cfg.Output.Reports)
	}
	store := report.NewStore(persistence)
	sinks = append(sinks, store)

	log.Info().
		Str("dir", cfg.Dataset.Dir).
		Int("count", cfg.Dataset.Count).
		Str("ordering", cfg.Ordering).
		Int("workers", cfg.Workers).
		Float64("alpha", cfg.Model.Alpha).
		Float64("beta", cfg.Model.Beta).
		Int("degree", cfg.Model.Degree).
		Msg("starting forecast")

	outcome, err := forecast.NewBatch(source, pipeline,
		forecast.WithWorkers(cfg.Workers),
		forecast.WithSink(sinks...),
	).Run(ctx)
	if err != nil {
		return outcome, err
	}

	log.Info().
		Str("run", store.ID()).
		Str("reports", cfg.Output.Reports).
		Int("errors", len(store.Errs())).
		Msg("report stored")

	if cfg.Output.Metrics != "" {
		if err := prom.WriteTo(cfg.Output.Metrics); err != nil {
			return outcome, err
		}
	}

	return outcome, nil
}
