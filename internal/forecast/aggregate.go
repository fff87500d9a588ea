package forecast

import (
	"context"
	"fmt"

	"github.com/philipbinhu/Stock/internal/buffer"
	"github.com/philipbinhu/Stock/internal/model"
	"github.com/rocketlaunchr/dataframe-go/forecast/evaluation"
	"gonum.org/v1/gonum/stat"
)

// Aggregate accumulates the error records of many series.
// It is a value, Add and Merge return the extended aggregate and leave the receiver untouched.
type Aggregate struct {
	absolute  []float64
	relative  []float64
	truth     []float64
	predicted []float64
}

// Add returns the aggregate extended by the given record.
// Records without a relative error contribute to the absolute error only.
func (a Aggregate) Add(r model.ErrorRecord) Aggregate {
	a.absolute = append(a.absolute[:len(a.absolute):len(a.absolute)], r.Absolute)
	a.truth = append(a.truth[:len(a.truth):len(a.truth)], r.Truth)
	a.predicted = append(a.predicted[:len(a.predicted):len(a.predicted)], r.Predicted)
	if r.RelativeOK {
		a.relative = append(a.relative[:len(a.relative):len(a.relative)], r.Relative)
	}
	return a
}

// Merge returns the union of both aggregates.
func (a Aggregate) Merge(b Aggregate) Aggregate {
	a.absolute = append(a.absolute[:len(a.absolute):len(a.absolute)], b.absolute...)
	a.relative = append(a.relative[:len(a.relative):len(a.relative)], b.relative...)
	a.truth = append(a.truth[:len(a.truth):len(a.truth)], b.truth...)
	a.predicted = append(a.predicted[:len(a.predicted):len(a.predicted)], b.predicted...)
	return a
}

// Len returns the number of records.
func (a Aggregate) Len() int {
	return len(a.absolute)
}

// Summary holds the overall accuracy across all series.
type Summary struct {
	Count         int     `json:"count"`
	MeanAbsolute  float64 `json:"mean_absolute"`
	MeanRelative  float64 `json:"mean_relative"`
	RelativeCount int     `json:"relative_count"`
	RMSE          float64 `json:"rmse"`
	MinAbsolute   float64 `json:"min_absolute"`
	MaxAbsolute   float64 `json:"max_absolute"`
	StdAbsolute   float64 `json:"std_absolute"`
}

// Finalize reduces the records to their arithmetic means.
func (a Aggregate) Finalize() (Summary, error) {
	if a.Len() == 0 {
		return Summary{}, NoRecordsErr
	}

	rmse, _, err := evaluation.RootMeanSquaredError(context.Background(), a.truth, a.predicted, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("could not evaluate forecasts: %w", err)
	}

	spread := buffer.NewStats().Push(a.absolute...)

	s := Summary{
		Count:         a.Len(),
		MeanAbsolute:  stat.Mean(a.absolute, nil),
		RelativeCount: len(a.relative),
		RMSE:          rmse,
		MinAbsolute:   spread.Min(),
		MaxAbsolute:   spread.Max(),
		StdAbsolute:   spread.StDev(),
	}
	if len(a.relative) > 0 {
		s.MeanRelative = stat.Mean(a.relative, nil)
	}
	return s, nil
}
