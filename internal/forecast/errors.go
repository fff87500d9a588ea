package forecast

import "errors"

var (
	// DivisionByZeroErr signals an undefined relative error, the rest of the result stays valid.
	DivisionByZeroErr = errors.New("division by zero")
	EmptySeriesErr    = errors.New("empty series")
	NoRecordsErr      = errors.New("no records")
)
