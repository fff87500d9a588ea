package bayes

import (
	"fmt"

	coinmath "github.com/philipbinhu/Stock/internal/math"
	"github.com/philipbinhu/Stock/internal/model"
	"gonum.org/v1/gonum/mat"
)

// Mean returns the predictive mean at x.
//
//	m(x) = beta * phi(x)^T * S * sum(t_n * phi(x_n))
func Mean(cfg Config, x float64, xTrain, yTrain []float64, s mat.Symmetric) (float64, error) {
	if len(xTrain) != len(yTrain) {
		return 0, fmt.Errorf("%d inputs for %d targets: %w", len(xTrain), len(yTrain), LengthMismatchErr)
	}
	if len(xTrain) == 0 {
		return 0, EmptyTrainingSetErr
	}
	if s.SymmetricDim() != cfg.Dim() {
		return 0, fmt.Errorf("covariance dimension %d for basis of %d: %w", s.SymmetricDim(), cfg.Dim(), LengthMismatchErr)
	}

	sum := mat.NewVecDense(cfg.Dim(), nil)
	for i, xt := range xTrain {
		sum.AddScaledVec(sum, yTrain[i], coinmath.Phi(xt, cfg.Degree))
	}

	return cfg.Beta * mat.Inner(coinmath.Phi(x, cfg.Degree), s, sum), nil
}

// Variance returns the predictive variance at x.
//
//	s^2(x) = 1/beta + phi(x)^T * S * phi(x)
func Variance(cfg Config, x float64, s mat.Symmetric) float64 {
	phi := coinmath.Phi(x, cfg.Degree)
	return 1/cfg.Beta + mat.Inner(phi, s, phi)
}

// Mean returns the predictive mean at x for the given training set.
func (p *Posterior) Mean(x float64, xTrain, yTrain []float64) (float64, error) {
	return Mean(p.cfg, x, xTrain, yTrain, p.s)
}

// Variance returns the predictive variance at x.
func (p *Posterior) Variance(x float64) float64 {
	return Variance(p.cfg, x, p.s)
}

// Predict returns the predictive distribution at x.
func (p *Posterior) Predict(x float64, xTrain, yTrain []float64) (model.Prediction, error) {
	m, err := p.Mean(x, xTrain, yTrain)
	if err != nil {
		return model.Prediction{}, err
	}
	v := p.Variance(x)
	if !coinmath.Finite(m, v) {
		return model.Prediction{}, fmt.Errorf("non finite prediction at %f: %w", x, NumericalInstabilityErr)
	}
	return model.Prediction{
		X:        x,
		Mean:     m,
		Variance: v,
	}, nil
}
