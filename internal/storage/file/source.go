package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/philipbinhu/Stock/internal/model"
	"github.com/philipbinhu/Stock/internal/storage"
	"github.com/rs/zerolog/log"
)

// Pattern defines the naming of the series files in a directory
// e.g. {Dir}/{Prefix}{index}{Ext} for index in [0, Count)
type Pattern struct {
	Dir    string `json:"dir"`
	Prefix string `json:"prefix"`
	Ext    string `json:"ext"`
	Count  int    `json:"count"`
}

// Name returns the file name for the given index.
func (p Pattern) Name(i int) string {
	return fmt.Sprintf("%s%d%s", p.Prefix, i, p.Ext)
}

// Source is a storage.Source for csv files following a naming pattern.
type Source struct {
	pattern Pattern
	csv     CSV
}

// NewSource creates a new file source.
func NewSource(pattern Pattern, csv CSV) *Source {
	return &Source{
		pattern: pattern,
		csv:     csv,
	}
}

// Series returns the file names of the pattern in index order.
func (s *Source) Series(ctx context.Context) ([]string, error) {
	if s.pattern.Count <= 0 {
		return nil, fmt.Errorf("no files for pattern '%+v': %w", s.pattern, storage.NotFoundErr)
	}
	ids := make([]string, s.pattern.Count)
	for i := range ids {
		ids[i] = s.pattern.Name(i)
	}
	return ids, nil
}

// Load loads the series stored in the file with the given name.
func (s *Source) Load(ctx context.Context, id string) (model.Series, error) {
	p := filepath.Join(s.pattern.Dir, id)
	f, err := os.Open(p)
	if err != nil {
		return model.Series{}, fmt.Errorf("could not open file '%s': %s: %w", p, err.Error(), storage.CouldNotLoadErr)
	}
	defer f.Close()

	series, err := s.csv.Load(ctx, id, f)
	if err != nil {
		return model.Series{}, err
	}
	log.Debug().
		Str("file", p).
		Int("rows", series.Len()+1).
		Msg("loaded series")
	return series, nil
}
