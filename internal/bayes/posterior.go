package bayes

import (
	"fmt"

	coinmath "github.com/philipbinhu/Stock/internal/math"
	"gonum.org/v1/gonum/mat"
)

// Posterior is the posterior covariance of the polynomial weights for a training set.
type Posterior struct {
	cfg  Config
	s    *mat.SymDense
	cond float64
}

// Option configures the posterior computation.
type Option func(p *options)

type options struct {
	invert Inverter
}

// WithInverter overrides the matrix inversion.
func WithInverter(inv Inverter) Option {
	return func(o *options) {
		o.invert = inv
	}
}

// NewPosterior computes the posterior covariance S for the given training inputs.
//
//	S^-1 = alpha*I + beta * sum(phi(x) * phi(x)^T)
func NewPosterior(cfg Config, xTrain []float64, opts ...Option) (*Posterior, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(xTrain) == 0 {
		return nil, EmptyTrainingSetErr
	}

	o := &options{invert: Cholesky}
	for _, opt := range opts {
		opt(o)
	}

	sInv := Precision(cfg, xTrain)

	s, cond, err := o.invert(sInv, cfg.MaxCondition)
	if err != nil {
		return nil, fmt.Errorf("could not compute posterior for %d points: %w", len(xTrain), err)
	}

	return &Posterior{
		cfg:  cfg,
		s:    s,
		cond: cond,
	}, nil
}

// Precision builds the precision matrix of the weights, the inverse of the posterior covariance.
func Precision(cfg Config, xTrain []float64) *mat.SymDense {
	d := cfg.Dim()
	sInv := mat.NewSymDense(d, nil)
	for i := 0; i < d; i++ {
		sInv.SetSym(i, i, cfg.Alpha)
	}
	for _, x := range xTrain {
		sInv.SymRankOne(sInv, cfg.Beta, coinmath.Phi(x, cfg.Degree))
	}
	return sInv
}

// S returns a copy of the posterior covariance.
func (p *Posterior) S() mat.Symmetric {
	s := mat.NewSymDense(p.s.SymmetricDim(), nil)
	s.CopySym(p.s)
	return s
}

// Cond returns the estimated condition number of the precision matrix.
func (p *Posterior) Cond() float64 {
	return p.cond
}

// Config returns the hyperparameters the posterior was computed with.
func (p *Posterior) Config() Config {
	return p.cfg
}
