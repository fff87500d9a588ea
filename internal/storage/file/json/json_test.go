package json

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/philipbinhu/Stock/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Event struct {
	Name  string  `json:"name"`
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}

func TestStorage_StoreAndLoad(t *testing.T) {

	root := t.TempDir()
	s := NewStorage(root)

	k := storage.Key{
		Run:   uuid.New().String(),
		Label: "summary",
	}

	ev := Event{
		Name:  "test",
		ID:    uuid.New().String(),
		Value: 1.5,
	}

	err := s.Store(k, ev)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, k.Run, "summary.json"))
	assert.NoError(t, err)

	var loaded Event
	err = s.Load(k, &loaded)
	require.NoError(t, err)
	assert.Equal(t, ev, loaded)

}

func TestStorage_LoadMissing(t *testing.T) {
	s := NewStorage(t.TempDir())
	var ev Event
	err := s.Load(storage.Key{Run: "run", Label: "missing"}, &ev)
	assert.True(t, errors.Is(err, storage.NotFoundErr))
}

func TestLoad_Corrupted(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0600))
	var ev Event
	err := Load(dir, "bad.json", &ev)
	assert.True(t, errors.Is(err, storage.CouldNotLoadErr))
}

func TestSave_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0600))
	err := Save(p, "out.json", Event{})
	assert.Error(t, err)
}
