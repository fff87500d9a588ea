package math

import "math"

// Series generates limit equally spaced values starting from 0.
func Series(factor float64, limit int) []float64 {
	xx := make([]float64, 0)
	for i := 0; i < limit; i++ {
		xx = append(xx, factor*float64(i))
	}
	return xx
}

// Line evaluates a + b*x for each of the given points.
func Line(a, b float64, xx []float64) []float64 {
	yy := make([]float64, len(xx))
	for i, x := range xx {
		yy[i] = a + b*x
	}
	return yy
}

func Sine(factor float64, limit int, v float64) []float64 {
	xx := make([]float64, 0)
	for i := 0; i < limit; i++ {
		xx = append(xx, factor*SineEvolve(i, v))
	}
	return xx
}

func SineEvolve(i int, p float64) float64 {
	return math.Sin(float64(i) * p)
}
