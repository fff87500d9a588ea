package math

import "gonum.org/v1/gonum/mat"

// Phi evaluates the polynomial basis at x.
// The result is the column vector [x^0, x^1, ..., x^degree].
func Phi(x float64, degree int) *mat.VecDense {
	phi := make([]float64, degree+1)
	for i, p := 0, 1.; i <= degree; i, p = i+1, p*x {
		phi[i] = p
	}
	return mat.NewVecDense(degree+1, phi)
}

// Design builds the design matrix for the given points,
// each row i holds the basis vector of xs[i].
func Design(xs []float64, degree int) *mat.Dense {
	return vandermonde(xs, degree)
}

// Eval evaluates the polynomial with the given coefficients at x.
func Eval(c []float64, x float64) float64 {
	// horner
	var y float64
	for i := len(c) - 1; i >= 0; i-- {
		y = y*x + c[i]
	}
	return y
}
