package forecast

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/philipbinhu/Stock/internal/storage"
	"github.com/rs/zerolog/log"
)

// Sink receives the outcome of a batch as it progresses.
// Calls are never concurrent.
type Sink interface {
	Series(r Result)
	Failure(id string, err error)
	Summary(s Summary)
}

// Failure is a series that could not be forecasted.
type Failure struct {
	Series string `json:"series"`
	Err    error  `json:"-"`
	Reason string `json:"reason"`
}

// Outcome collects the results of a batch.
type Outcome struct {
	Results   []Result  `json:"results"`
	Failures  []Failure `json:"failures"`
	Summary   Summary   `json:"summary"`
	Aggregate Aggregate `json:"-"`
}

// Batch runs the pipeline over all series of a source.
type Batch struct {
	source   storage.Source
	pipeline *Pipeline
	sinks    []Sink
	workers  int
}

// BatchOption configures the batch.
type BatchOption func(b *Batch)

// WithSink adds sinks for the batch progress.
func WithSink(sinks ...Sink) BatchOption {
	return func(b *Batch) {
		b.sinks = append(b.sinks, sinks...)
	}
}

// WithWorkers sets the number of series processed in parallel.
func WithWorkers(n int) BatchOption {
	return func(b *Batch) {
		if n > 0 {
			b.workers = n
		}
	}
}

// NewBatch creates a new batch.
func NewBatch(source storage.Source, pipeline *Pipeline, opts ...BatchOption) *Batch {
	b := &Batch{
		source:   source,
		pipeline: pipeline,
		sinks:    make([]Sink, 0),
		workers:  1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type step struct {
	result Result
	err    error
	done   bool
}

// Run forecasts all series the source lists.
func (b *Batch) Run(ctx context.Context) (Outcome, error) {
	ids, err := b.source.Series(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("could not list series: %w", err)
	}
	return b.RunFor(ctx, ids)
}

// RunFor forecasts the given series.
// Failing series are reported and left out of the summary, the batch carries on.
func (b *Batch) RunFor(ctx context.Context, ids []string) (Outcome, error) {
	outcome := Outcome{
		Results:  make([]Result, 0, len(ids)),
		Failures: make([]Failure, 0),
	}

	if b.workers <= 1 {
		for _, id := range ids {
			outcome = b.emit(outcome, id, b.process(ctx, id))
		}
	} else {
		steps := b.fanOut(ctx, ids)
		for i, id := range ids {
			outcome = b.emit(outcome, id, steps[i])
		}
	}

	summary, err := outcome.Aggregate.Finalize()
	if err != nil {
		return outcome, fmt.Errorf("could not summarise %d series: %w", len(ids), err)
	}
	outcome.Summary = summary
	for _, sink := range b.sinks {
		sink.Summary(summary)
	}

	log.Info().
		Int("series", len(ids)).
		Int("failed", len(outcome.Failures)).
		Float64("mean_absolute", summary.MeanAbsolute).
		Float64("mean_relative", summary.MeanRelative).
		Msg("batch completed")

	return outcome, ctx.Err()
}

func (b *Batch) fanOut(ctx context.Context, ids []string) []step {
	steps := make([]step, len(ids))
	jobs := make(chan int)

	wg := new(sync.WaitGroup)
	for w := 0; w < b.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				steps[i] = b.process(ctx, ids[i])
			}
		}()
	}

schedule:
	for i := range ids {
		select {
		case <-ctx.Done():
			break schedule
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	for i := range steps {
		if !steps[i].done {
			steps[i].err = ctx.Err()
		}
	}
	return steps
}

func (b *Batch) process(ctx context.Context, id string) step {
	if err := ctx.Err(); err != nil {
		return step{err: err, done: true}
	}
	series, err := b.source.Load(ctx, id)
	if err != nil {
		return step{err: err, done: true}
	}
	result, err := b.pipeline.Run(series)
	return step{result: result, err: err, done: true}
}

func (b *Batch) emit(outcome Outcome, id string, s step) Outcome {
	if s.err != nil && !errors.Is(s.err, DivisionByZeroErr) {
		log.Error().
			Str("series", id).
			Err(s.err).
			Msg("could not forecast series")
		outcome.Failures = append(outcome.Failures, Failure{
			Series: id,
			Err:    s.err,
			Reason: s.err.Error(),
		})
		for _, sink := range b.sinks {
			sink.Failure(id, s.err)
		}
		return outcome
	}

	if s.err != nil {
		log.Warn().
			Str("series", id).
			Err(s.err).
			Msg("relative error undefined")
	}

	r := s.result
	log.Info().
		Str("series", id).
		Int("n", r.N).
		Float64("mean", r.Prediction.Mean).
		Float64("variance", r.Prediction.Variance).
		Float64("truth", r.Record.Truth).
		Float64("absolute", r.Record.Absolute).
		Msg("forecast")

	outcome.Results = append(outcome.Results, r)
	outcome.Aggregate = outcome.Aggregate.Add(r.Record)
	for _, sink := range b.sinks {
		sink.Series(r)
	}
	return outcome
}
