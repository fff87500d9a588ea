package forecast

import (
	"fmt"
	"math"

	"github.com/philipbinhu/Stock/internal/bayes"
	coinmath "github.com/philipbinhu/Stock/internal/math"
	"github.com/philipbinhu/Stock/internal/model"
	"github.com/philipbinhu/Stock/internal/storage"
	"github.com/rs/zerolog/log"
)

// Result is the outcome of forecasting a single series.
type Result struct {
	Series     string            `json:"series"`
	N          int               `json:"n"`
	Ordering   Ordering          `json:"ordering"`
	Prediction model.Prediction  `json:"prediction"`
	Record     model.ErrorRecord `json:"record"`
	Cond       float64           `json:"cond"`
	// Baseline is the least squares polynomial forecast at the same point.
	Baseline   float64 `json:"baseline"`
	BaselineOK bool    `json:"baseline_ok"`
	// Targets are the training values in grid order.
	Targets []float64 `json:"targets"`
}

// Pipeline forecasts the held out value of a series.
type Pipeline struct {
	cfg      bayes.Config
	ordering Ordering
	inverter bayes.Inverter
	baseline bool
}

// Option configures the pipeline.
type Option func(p *Pipeline)

// WithOrdering sets the assignment of values to the training grid.
func WithOrdering(o Ordering) Option {
	return func(p *Pipeline) {
		p.ordering = o
	}
}

// WithInverter sets the matrix inversion used for the posterior.
func WithInverter(inv bayes.Inverter) Option {
	return func(p *Pipeline) {
		p.inverter = inv
	}
}

// WithBaseline enables or disables the least squares comparison.
func WithBaseline(enabled bool) Option {
	return func(p *Pipeline) {
		p.baseline = enabled
	}
}

// NewPipeline creates a new pipeline for the given hyperparameters.
func NewPipeline(cfg bayes.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:      cfg,
		ordering: Reverse,
		inverter: bayes.Cholesky,
		baseline: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Config returns the hyperparameters of the pipeline.
func (p *Pipeline) Config() bayes.Config {
	return p.cfg
}

// Run forecasts the held out value of the series.
// A DivisionByZeroErr comes with a valid result, only the relative error is undefined.
func (p *Pipeline) Run(s model.Series) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", err.Error(), storage.CouldNotLoadErr)
	}
	n := s.Len()
	if n == 0 {
		return Result{}, fmt.Errorf("series '%s': %w", s.Name, EmptySeriesErr)
	}

	xTrain := Grid(n)
	yTrain := p.ordering.Targets(s.Y)
	xTest := QueryGrid(n)
	x := xTest[len(xTest)-2]

	posterior, err := bayes.NewPosterior(p.cfg, xTrain, bayes.WithInverter(p.inverter))
	if err != nil {
		return Result{}, fmt.Errorf("series '%s': %w", s.Name, err)
	}

	prediction, err := posterior.Predict(x, xTrain, yTrain)
	if err != nil {
		return Result{}, fmt.Errorf("series '%s': %w", s.Name, err)
	}

	result := Result{
		Series:     s.Name,
		N:          n,
		Ordering:   p.ordering,
		Prediction: prediction,
		Cond:       posterior.Cond(),
		Targets:    yTrain,
	}

	if p.baseline {
		result.Baseline, result.BaselineOK = p.leastSquares(x, xTrain, yTrain)
	}

	record, err := Evaluate(s.Truth, prediction.Mean)
	result.Record = record
	if err != nil {
		return result, fmt.Errorf("series '%s': %w", s.Name, err)
	}
	return result, nil
}

func (p *Pipeline) leastSquares(x float64, xTrain, yTrain []float64) (float64, bool) {
	c, err := coinmath.Fit(xTrain, yTrain, p.cfg.Degree)
	if err != nil {
		log.Debug().Err(err).Int("n", len(xTrain)).Msg("could not fit least squares baseline")
		return 0, false
	}
	y := coinmath.Eval(c, x)
	if !coinmath.Finite(y) {
		return 0, false
	}
	return y, true
}

// Evaluate compares the predicted mean against the true value.
func Evaluate(truth, mean float64) (model.ErrorRecord, error) {
	record := model.ErrorRecord{
		Truth:     truth,
		Predicted: mean,
		Absolute:  math.Abs(truth - mean),
	}
	if truth == 0 {
		return record, fmt.Errorf("relative error for zero value: %w", DivisionByZeroErr)
	}
	record.Relative = record.Absolute / truth
	record.RelativeOK = true
	return record, nil
}
