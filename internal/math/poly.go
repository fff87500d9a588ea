package math

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Fit fits the given series of x and y into a polynomial function of the given degree
// out put is a vector with the coefficients of the corresponding powers of x
// c[0] + c[1]x + c[2]x^2 + c[3]x^3 + ...
func Fit(x, y []float64, degree int) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("mismatched input lengths: x=%d y=%d", len(x), len(y))
	}
	if len(x) <= degree {
		return nil, fmt.Errorf("not enough points for degree %d: %d", degree, len(x))
	}

	a := Design(x, degree)
	b := mat.NewVecDense(len(y), y)
	c := mat.NewVecDense(degree+1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)

	err := qr.SolveVecTo(c, false, b)
	if err != nil {
		return nil, fmt.Errorf("could not solve least squares system: %w", err)
	}

	cc := make([]float64, c.Len())
	for i := 0; i < c.Len(); i++ {
		cc[i] = c.AtVec(i)
	}
	return cc, nil
}

func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}
