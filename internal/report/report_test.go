package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/philipbinhu/Stock/internal/emoji"
	"github.com/philipbinhu/Stock/internal/forecast"
	"github.com/philipbinhu/Stock/internal/model"
	"github.com/philipbinhu/Stock/internal/storage"
	"github.com/philipbinhu/Stock/internal/storage/file/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(name string, truth, mean float64) forecast.Result {
	record, _ := forecast.Evaluate(truth, mean)
	return forecast.Result{
		Series: name,
		N:      5,
		Prediction: model.Prediction{
			X:        0.8,
			Mean:     mean,
			Variance: 0.25,
		},
		Record:     record,
		Baseline:   mean + 1,
		BaselineOK: true,
		Targets:    []float64{1, 2, 3, 4, 5},
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	text := NewText(&buf).WithPlot()

	text.Series(result("stock_data_0", 100, 110))
	text.Failure("stock_data_1", fmt.Errorf("broken: %w", storage.CouldNotLoadErr))
	text.Series(result("stock_data_2", 0, 2))
	text.Summary(forecast.Summary{
		Count:         2,
		MeanAbsolute:  6,
		MeanRelative:  0.1,
		RelativeCount: 1,
		RMSE:          7.07,
	})

	out := buf.String()
	assert.True(t, strings.Contains(out, "The 1st input stock dataset from stock_data_0"), out)
	assert.True(t, strings.Contains(out, "The 2nd input stock dataset from stock_data_1 could not be forecasted"), out)
	assert.True(t, strings.Contains(out, "The 3rd input stock dataset from stock_data_2"), out)
	assert.True(t, strings.Contains(out, "Data size: 6"), out)
	assert.True(t, strings.Contains(out, "The prediction of N+1 time is 110.000000 +- 0.250000"), out)
	assert.True(t, strings.Contains(out, "The relative error is 0.100000"), out)
	assert.True(t, strings.Contains(out, "The relative error is undefined"), out)
	assert.True(t, strings.Contains(out, "The overall absolute mean error is 6.000000"), out)
	assert.True(t, strings.Contains(out, "The overall average relative error is 0.100000"), out)
	// table rows
	assert.True(t, strings.Contains(out, "stock_data_2"), out)
	assert.True(t, strings.Contains(out, "111.00"), out)
	assert.True(t, strings.Contains(out, "OVERALL"), out)
}

func TestText_UndefinedRelative(t *testing.T) {
	var buf bytes.Buffer
	text := NewText(&buf)

	text.Series(result("stock_data_0", 0, 2))
	text.Summary(forecast.Summary{
		Count:        1,
		MeanAbsolute: 2,
		RMSE:         2,
	})

	out := buf.String()
	assert.True(t, strings.Contains(out, "The overall average relative error is undefined"), out)
	assert.False(t, strings.Contains(out, "The overall average relative error is 0.000000"), out)
}

func TestSignal(t *testing.T) {
	assert.Equal(t, emoji.Up+emoji.DotFire+emoji.FullEclipse, signal(result("a", 100, 110)))
	assert.Equal(t, emoji.Down+emoji.DotWater+emoji.NoValue, signal(forecast.Result{
		Targets:    []float64{5},
		Prediction: model.Prediction{Mean: -1},
	}))
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1:   "1st",
		2:   "2nd",
		3:   "3rd",
		4:   "4th",
		11:  "11th",
		12:  "12th",
		13:  "13th",
		21:  "21st",
		102: "102nd",
		111: "111th",
	}
	for i, s := range tests {
		assert.Equal(t, s, ordinal(i))
	}
}

func TestStore(t *testing.T) {
	persistence := storage.NewMockStorage()
	store := NewStore(persistence)
	require.NotEmpty(t, store.ID())

	store.Series(result("stock_data_0", 100, 110))
	store.Failure("stock_data_1", storage.NotFoundErr)
	store.Summary(forecast.Summary{Count: 1, MeanAbsolute: 10})

	assert.Empty(t, store.Errs())
	assert.Len(t, persistence.Elements, 2)

	v, ok := persistence.Elements[storage.Key{Run: store.ID(), Label: "stock_data_0"}]
	require.True(t, ok)
	assert.Equal(t, "stock_data_0", v.(forecast.Result).Series)

	v, ok = persistence.Elements[storage.Key{Run: store.ID(), Label: summaryLabel}]
	require.True(t, ok)
	run := v.(Run)
	assert.Equal(t, []string{"stock_data_0"}, run.Series)
	require.Len(t, run.Failures, 1)
	assert.Equal(t, "stock_data_1", run.Failures[0].Series)
	assert.Equal(t, 10.0, run.Summary.MeanAbsolute)
}

func TestStore_Unique(t *testing.T) {
	persistence := storage.NewMockStorage()
	assert.NotEqual(t, NewStore(persistence).ID(), NewStore(persistence).ID())
}

func TestStore_Json(t *testing.T) {
	persistence := json.NewStorage(t.TempDir())
	store := NewStore(persistence)

	store.Series(result("stock_data_0", 100, 110))
	store.Failure("stock_data_1", storage.CouldNotLoadErr)
	store.Summary(forecast.Summary{Count: 1, MeanAbsolute: 10, MeanRelative: 0.1, RelativeCount: 1})
	require.Empty(t, store.Errs())

	run, err := LoadRun(persistence, store.ID())
	require.NoError(t, err)
	assert.Equal(t, store.ID(), run.ID)
	assert.Equal(t, []string{"stock_data_0"}, run.Series)
	require.Len(t, run.Failures, 1)
	assert.Equal(t, "could not load", run.Failures[0].Reason)
	assert.Equal(t, 0.1, run.Summary.MeanRelative)

	var r forecast.Result
	err = persistence.Load(storage.Key{Run: store.ID(), Label: "stock_data_0"}, &r)
	require.NoError(t, err)
	assert.Equal(t, 110.0, r.Prediction.Mean)
	assert.Equal(t, forecast.Reverse, r.Ordering)

	_, err = LoadRun(persistence, "missing")
	assert.True(t, errors.Is(err, storage.NotFoundErr))
}
