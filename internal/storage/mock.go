package storage

import (
	"context"
	"fmt"

	"github.com/philipbinhu/Stock/internal/model"
)

// MockStorage keeps the stored values in memory.
type MockStorage struct {
	Elements map[Key]interface{}
}

func NewMockStorage() *MockStorage {
	return &MockStorage{Elements: make(map[Key]interface{})}
}

func (m *MockStorage) Store(k Key, value interface{}) error {
	m.Elements[k] = value
	return nil
}

func (m *MockStorage) Load(k Key, value interface{}) error {
	if _, ok := m.Elements[k]; !ok {
		return fmt.Errorf("not found '%v': %w", k, NotFoundErr)
	}
	return nil
}

// MockSource is an in-memory source of series.
// Errors registered for an id are returned instead of the series.
type MockSource struct {
	ids    []string
	series map[string]model.Series
	errs   map[string]error
}

func NewMockSource() *MockSource {
	return &MockSource{
		ids:    make([]string, 0),
		series: make(map[string]model.Series),
		errs:   make(map[string]error),
	}
}

// With adds a series to the source.
func (m *MockSource) With(s model.Series) *MockSource {
	m.ids = append(m.ids, s.Name)
	m.series[s.Name] = s
	return m
}

// WithErr adds an id that fails to load with the given error.
func (m *MockSource) WithErr(id string, err error) *MockSource {
	m.ids = append(m.ids, id)
	m.errs[id] = err
	return m
}

func (m *MockSource) Series(ctx context.Context) ([]string, error) {
	ids := make([]string, len(m.ids))
	copy(ids, m.ids)
	return ids, nil
}

func (m *MockSource) Load(ctx context.Context, id string) (model.Series, error) {
	if err, ok := m.errs[id]; ok {
		return model.Series{}, fmt.Errorf("could not load '%s': %w", id, err)
	}
	s, ok := m.series[id]
	if !ok {
		return model.Series{}, fmt.Errorf("unknown series '%s': %w", id, NotFoundErr)
	}
	return s, nil
}
