package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/philipbinhu/Stock/internal/model"
)

const (
	ReportDir = "reports"
)

var (
	DefaultDir = "datasets"
)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Source provides the price series to be forecasted.
type Source interface {
	// Series lists the identifiers of the available series in processing order.
	Series(ctx context.Context) ([]string, error)
	// Load loads the series for the given identifier.
	Load(ctx context.Context, id string) (model.Series, error)
}

// Key is the storage key for a general implementation
type Key struct {
	Run   string `json:"run"`
	Label string `json:"label"`
}

func (k Key) Path() string {
	return fmt.Sprintf("%s_%s", k.Run, k.Label)
}

// Persistence stores and loads values for a key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
