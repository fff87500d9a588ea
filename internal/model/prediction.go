package model

import (
	"fmt"
	"math"
)

// Prediction is the predictive distribution at a single query point.
type Prediction struct {
	X        float64 `json:"x"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
}

// StdDev returns the standard deviation of the prediction.
func (p Prediction) StdDev() float64 {
	return math.Sqrt(p.Variance)
}

// Band returns the interval of k standard deviations around the mean.
func (p Prediction) Band(k float64) (lower, upper float64) {
	d := k * p.StdDev()
	return p.Mean - d, p.Mean + d
}

func (p Prediction) String() string {
	return fmt.Sprintf("%f +- %f", p.Mean, p.Variance)
}

// ErrorRecord compares a prediction against the observed value.
type ErrorRecord struct {
	Truth     float64 `json:"truth"`
	Predicted float64 `json:"predicted"`
	Absolute  float64 `json:"absolute"`
	Relative  float64 `json:"relative"`
	// RelativeOK is false when the relative error is undefined.
	RelativeOK bool `json:"relative_ok"`
}
