package model

import "time"

// Price defines a price value in time.
type Price struct {
	Value float64   `json:"value"`
	Time  time.Time `json:"time"`
}
