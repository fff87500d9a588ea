package model

import (
	"fmt"
	"time"
)

// Series is a single price history prepared for forecasting.
// X holds the day offsets of the historical observations relative to the earliest one,
// Y the corresponding values. Both follow the order of the source, most recent first.
// The most recent observation is held out as the query point.
type Series struct {
	Name   string    `json:"name"`
	X      []int     `json:"x"`
	Y      []float64 `json:"y"`
	QueryX int       `json:"query_x"`
	Truth  float64   `json:"truth"`
	// Earliest is the reference time of the day offsets.
	Earliest time.Time `json:"earliest"`
}

// Len returns the number of historical observations.
func (s Series) Len() int {
	return len(s.Y)
}

// Validate checks the structural consistency of the series.
func (s Series) Validate() error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("series '%s' has %d offsets for %d values", s.Name, len(s.X), len(s.Y))
	}
	return nil
}
