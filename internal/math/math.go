package math

import (
	"math"
	"strconv"
)

// Format formats a float based on the given precision
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// FormatP formats a float with the given number of decimals.
// NOTE : NaN and infinite values are rendered as '-'
func FormatP(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "-"
	}
	return strconv.FormatFloat(f, 'f', precision, 64)
}

// Finite checks that none of the given values is NaN or infinite.
func Finite(ff ...float64) bool {
	for _, f := range ff {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Reverse returns a reversed copy of the given slice.
func Reverse(ff []float64) []float64 {
	rr := make([]float64, len(ff))
	for i, f := range ff {
		rr[len(ff)-1-i] = f
	}
	return rr
}
