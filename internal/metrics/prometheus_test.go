package metrics

import (
	"context"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipbinhu/Stock/internal/bayes"
	"github.com/philipbinhu/Stock/internal/forecast"
	"github.com/philipbinhu/Stock/internal/model"
	"github.com/philipbinhu/Stock/internal/storage"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReason(t *testing.T) {

	type test struct {
		err    error
		reason string
	}

	tests := map[string]test{
		"load": {
			err:    fmt.Errorf("file: %w", storage.CouldNotLoadErr),
			reason: ReasonDataLoad,
		},
		"missing": {
			err:    fmt.Errorf("file: %w", storage.NotFoundErr),
			reason: ReasonDataLoad,
		},
		"numerical": {
			err:    fmt.Errorf("posterior: %w", bayes.NumericalInstabilityErr),
			reason: ReasonNumerical,
		},
		"cancelled": {
			err:    context.Canceled,
			reason: ReasonCancelled,
		},
		"other": {
			err:    forecast.EmptySeriesErr,
			reason: ReasonOther,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.reason, Reason(tt.err))
		})
	}

}

func TestReason_MismatchedSeries(t *testing.T) {
	s := model.Series{
		Name: "broken",
		X:    []int{1, 0},
		Y:    []float64{3, 2, 1},
	}
	_, err := forecast.NewPipeline(bayes.DefaultConfig()).Run(s)
	require.Error(t, err)
	assert.Equal(t, ReasonDataLoad, Reason(err))
}

func TestPrometheus(t *testing.T) {
	p := NewPrometheusMetrics()

	ok, _ := forecast.Evaluate(100, 110)
	zero, _ := forecast.Evaluate(0, 5)

	p.Series(forecast.Result{Series: "a", Record: ok, Cond: 1e6, Prediction: model.Prediction{Variance: 0.2}})
	p.Series(forecast.Result{Series: "b", Record: zero, Cond: 1e4, Prediction: model.Prediction{Variance: 0.3}})
	p.Failure("c", storage.CouldNotLoadErr)
	p.Failure("d", bayes.NumericalInstabilityErr)
	p.Failure("e", storage.NotFoundErr)
	p.Summary(forecast.Summary{Count: 2, MeanAbsolute: 7.5, MeanRelative: 0.1, RMSE: 7.9})

	assert.Equal(t, 1.0, testutil.ToFloat64(p.Processed.WithLabelValues(StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.Processed.WithLabelValues(StatusUndefined)))
	assert.Equal(t, 3.0, testutil.ToFloat64(p.Processed.WithLabelValues(StatusFailed)))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.Failed.WithLabelValues(ReasonDataLoad)))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.Failed.WithLabelValues(ReasonNumerical)))
	assert.Equal(t, 1e6, testutil.ToFloat64(p.Condition))
	assert.Equal(t, 7.5, testutil.ToFloat64(p.Overall.WithLabelValues("mean_absolute")))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.Overall.WithLabelValues("count")))

	assert.Equal(t, 4, testutil.CollectAndCount(p.Overall))
}

func TestPrometheus_WriteTo(t *testing.T) {
	p := NewPrometheusMetrics()
	record, _ := forecast.Evaluate(10, 11)
	p.Series(forecast.Result{Series: "a", Record: record})

	path := filepath.Join(t.TempDir(), "forecast.prom")
	require.NoError(t, p.WriteTo(path))

	b, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.True(t, strings.Contains(out, `stock_forecast_series_total{status="ok"} 1`), out)
	assert.True(t, strings.Contains(out, "stock_forecast_absolute_error_count 1"), out)

	err = p.WriteTo(filepath.Join(t.TempDir(), "missing", "forecast.prom"))
	assert.Error(t, err)
}
