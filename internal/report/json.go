package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/philipbinhu/Stock/internal/forecast"
	"github.com/philipbinhu/Stock/internal/storage"
	"github.com/rs/zerolog/log"
)

const summaryLabel = "summary"

// Run is the persisted summary of a batch.
type Run struct {
	ID       string             `json:"id"`
	Time     time.Time          `json:"time"`
	Series   []string           `json:"series"`
	Failures []forecast.Failure `json:"failures"`
	Summary  forecast.Summary   `json:"summary"`
}

// Store persists the results of a batch under a unique run id.
type Store struct {
	persistence storage.Persistence
	run         Run
	errs        []error
}

// NewStore creates a new store for a fresh run.
func NewStore(persistence storage.Persistence) *Store {
	return &Store{
		persistence: persistence,
		run: Run{
			ID:       uuid.New().String(),
			Time:     time.Now(),
			Series:   make([]string, 0),
			Failures: make([]forecast.Failure, 0),
		},
		errs: make([]error, 0),
	}
}

// ID returns the run id.
func (s *Store) ID() string {
	return s.run.ID
}

// Errs returns the errors encountered while persisting.
func (s *Store) Errs() []error {
	return s.errs
}

func (s *Store) Series(r forecast.Result) {
	s.run.Series = append(s.run.Series, r.Series)
	s.store(r.Series, r)
}

func (s *Store) Failure(id string, err error) {
	s.run.Failures = append(s.run.Failures, forecast.Failure{
		Series: id,
		Err:    err,
		Reason: err.Error(),
	})
}

func (s *Store) Summary(summary forecast.Summary) {
	s.run.Summary = summary
	s.store(summaryLabel, s.run)
}

func (s *Store) store(label string, value interface{}) {
	k := storage.Key{
		Run:   s.run.ID,
		Label: label,
	}
	if err := s.persistence.Store(k, value); err != nil {
		log.Error().Err(err).Str("key", k.Path()).Msg("could not store report")
		s.errs = append(s.errs, fmt.Errorf("could not store '%s': %w", k.Path(), err))
	}
}

// LoadRun loads the summary of a previous run.
func LoadRun(persistence storage.Persistence, id string) (Run, error) {
	var run Run
	err := persistence.Load(storage.Key{
		Run:   id,
		Label: summaryLabel,
	}, &run)
	if err != nil {
		return Run{}, fmt.Errorf("could not load run '%s': %w", id, err)
	}
	return run, nil
}
