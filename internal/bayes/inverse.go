package bayes

import (
	"fmt"
	"math"

	coinmath "github.com/philipbinhu/Stock/internal/math"
	"gonum.org/v1/gonum/mat"
)

// Inverter inverts a symmetric positive definite matrix.
// It returns the inverse and the estimated condition number of the input.
// maxCond is the largest condition number the caller accepts.
type Inverter func(a mat.Symmetric, maxCond float64) (*mat.SymDense, float64, error)

// Cholesky inverts the matrix through its cholesky decomposition.
func Cholesky(a mat.Symmetric, maxCond float64) (*mat.SymDense, float64, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(a); !ok {
		return nil, 0, fmt.Errorf("matrix is not positive definite: %w", NumericalInstabilityErr)
	}
	cond := chol.Cond()
	if math.IsNaN(cond) || cond > maxCond {
		return nil, cond, fmt.Errorf("condition number %e above %e: %w", cond, maxCond, NumericalInstabilityErr)
	}
	s := mat.NewSymDense(a.SymmetricDim(), nil)
	if err := chol.InverseTo(s); err != nil {
		return nil, cond, fmt.Errorf("could not invert matrix (%s): %w", err.Error(), NumericalInstabilityErr)
	}
	if err := finite(s); err != nil {
		return nil, cond, err
	}
	return s, cond, nil
}

// LU inverts the matrix through its LU decomposition.
// The result is symmetrised, as LU does not preserve symmetry exactly.
func LU(a mat.Symmetric, maxCond float64) (*mat.SymDense, float64, error) {
	n := a.SymmetricDim()
	var lu mat.LU
	lu.Factorize(a)
	cond := lu.Cond()
	if math.IsNaN(cond) || cond > maxCond {
		return nil, cond, fmt.Errorf("condition number %e above %e: %w", cond, maxCond, NumericalInstabilityErr)
	}

	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	var inv mat.Dense
	if err := lu.SolveTo(&inv, false, mat.NewDiagDense(n, ones)); err != nil {
		return nil, cond, fmt.Errorf("could not invert matrix (%s): %w", err.Error(), NumericalInstabilityErr)
	}

	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, (inv.At(i, j)+inv.At(j, i))/2)
		}
	}
	if err := finite(s); err != nil {
		return nil, cond, err
	}
	return s, cond, nil
}

func finite(s *mat.SymDense) error {
	n := s.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if !coinmath.Finite(s.At(i, j)) {
				return fmt.Errorf("non finite entry at (%d,%d): %w", i, j, NumericalInstabilityErr)
			}
		}
	}
	return nil
}
