package metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/philipbinhu/Stock/internal/bayes"
	"github.com/philipbinhu/Stock/internal/forecast"
	"github.com/philipbinhu/Stock/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

const (
	namespace = "stock"
	subsystem = "forecast"

	StatusOK        = "ok"
	StatusUndefined = "undefined_relative"
	StatusFailed    = "failed"

	ReasonDataLoad  = "data_load"
	ReasonNumerical = "numerical"
	ReasonCancelled = "cancelled"
	ReasonOther     = "other"
)

// Prometheus records the progress of a batch.
type Prometheus struct {
	registry  *prometheus.Registry
	maxCond   float64
	Processed *prometheus.CounterVec
	Failed    *prometheus.CounterVec
	Absolute  prometheus.Histogram
	Relative  prometheus.Histogram
	Variance  prometheus.Histogram
	Condition prometheus.Gauge
	Overall   *prometheus.GaugeVec
}

// NewPrometheusMetrics creates the batch metrics on a dedicated registry.
func NewPrometheusMetrics() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		Processed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "series_total",
				Help:      "Series processed by status.",
			}, []string{"status"}),
		Failed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "failures_total",
				Help:      "Failed series by reason.",
			}, []string{"reason"}),
		Absolute: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "absolute_error",
				Help:      "Absolute error of the predicted mean.",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 16),
			}),
		Relative: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "relative_error",
				Help:      "Relative error of the predicted mean.",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
			}),
		Variance: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "predictive_variance",
				Help:      "Variance of the predictive distribution.",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
			}),
		Condition: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "condition_max",
				Help:      "Largest condition number of the posterior precision.",
			}),
		Overall: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "summary",
				Help:      "Overall accuracy of the batch.",
			}, []string{"stat"}),
	}
	p.registry.MustRegister(p.Processed, p.Failed, p.Absolute, p.Relative, p.Variance, p.Condition, p.Overall)
	return p
}

// Registry returns the registry holding the metrics.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

func (p *Prometheus) Series(r forecast.Result) {
	status := StatusOK
	if !r.Record.RelativeOK {
		status = StatusUndefined
	} else {
		p.Relative.Observe(r.Record.Relative)
	}
	p.Processed.WithLabelValues(status).Inc()
	p.Absolute.Observe(r.Record.Absolute)
	p.Variance.Observe(r.Prediction.Variance)
	if r.Cond > p.maxCond {
		p.maxCond = r.Cond
		p.Condition.Set(r.Cond)
	}
}

func (p *Prometheus) Failure(id string, err error) {
	p.Processed.WithLabelValues(StatusFailed).Inc()
	p.Failed.WithLabelValues(Reason(err)).Inc()
}

func (p *Prometheus) Summary(s forecast.Summary) {
	p.Overall.WithLabelValues("mean_absolute").Set(s.MeanAbsolute)
	p.Overall.WithLabelValues("mean_relative").Set(s.MeanRelative)
	p.Overall.WithLabelValues("rmse").Set(s.RMSE)
	p.Overall.WithLabelValues("count").Set(float64(s.Count))
}

// WriteTo writes the metrics to the given file in the text exposition format.
func (p *Prometheus) WriteTo(path string) error {
	if err := prometheus.WriteToTextfile(path, p.registry); err != nil {
		return fmt.Errorf("could not write metrics to '%s': %w", path, err)
	}
	log.Info().Str("path", path).Msg("metrics written")
	return nil
}

// Reason classifies the failure of a series.
func Reason(err error) string {
	switch {
	case errors.Is(err, storage.CouldNotLoadErr), errors.Is(err, storage.NotFoundErr):
		return ReasonDataLoad
	case errors.Is(err, bayes.NumericalInstabilityErr):
		return ReasonNumerical
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ReasonCancelled
	}
	return ReasonOther
}
