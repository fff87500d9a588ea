package bayes

import "errors"

var (
	// NumericalInstabilityErr is returned when the precision matrix cannot be inverted reliably.
	NumericalInstabilityErr = errors.New("numerical instability")
	// EmptyTrainingSetErr is returned when there are no training points.
	EmptyTrainingSetErr = errors.New("empty training set")
	// LengthMismatchErr is returned when training inputs and targets differ in length.
	LengthMismatchErr = errors.New("length mismatch")
	// InvalidConfigErr is returned for non-positive precisions or a negative degree.
	InvalidConfigErr = errors.New("invalid config")
)
