package bayes

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	// Alpha is the default prior precision of the polynomial weights.
	Alpha = 5e-3
	// Beta is the default noise precision of the observations.
	Beta = 11.1
	// Degree is the default degree of the polynomial basis.
	Degree = 7
)

// Config holds the hyperparameters of the model.
// It is passed by value and never mutated once a computation started.
type Config struct {
	Alpha  float64 `json:"alpha"`
	Beta   float64 `json:"beta"`
	Degree int     `json:"degree"`
	// MaxCondition is the largest acceptable condition number of the precision matrix.
	MaxCondition float64 `json:"max_condition"`
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return NewConfig(Alpha, Beta, Degree)
}

// NewConfig creates a new config for the given hyperparameters.
func NewConfig(alpha, beta float64, degree int) Config {
	return Config{
		Alpha:        alpha,
		Beta:         beta,
		Degree:       degree,
		MaxCondition: mat.ConditionTolerance,
	}
}

// Dim returns the dimension of the basis.
func (c Config) Dim() int {
	return c.Degree + 1
}

// Validate checks the hyperparameters.
func (c Config) Validate() error {
	if c.Alpha <= 0 {
		return fmt.Errorf("prior precision must be positive: %v: %w", c.Alpha, InvalidConfigErr)
	}
	if c.Beta <= 0 {
		return fmt.Errorf("noise precision must be positive: %v: %w", c.Beta, InvalidConfigErr)
	}
	if c.Degree < 0 {
		return fmt.Errorf("degree must not be negative: %d: %w", c.Degree, InvalidConfigErr)
	}
	if c.MaxCondition <= 1 {
		return fmt.Errorf("condition tolerance must be above 1: %v: %w", c.MaxCondition, InvalidConfigErr)
	}
	return nil
}
