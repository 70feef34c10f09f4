package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ExternalChangeTriggersCallback(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Load())

	changed := make(chan struct{}, 1)
	cleanup, err := s.Watch(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer cleanup()

	// Simulate an external edit of the data file.
	external := `[{"id": "x", "name": "Edited Outside", "date": "2024-01-01"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, DataFileName), []byte(external), 0644))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not report the external change")
	}

	// A reload picks up the external content.
	require.NoError(t, s.Load())
	goals, _ := s.SortedByDate()
	require.Len(t, goals, 1)
	assert.Equal(t, "Edited Outside", goals[0].Name)
}

func TestWatch_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Load())

	changed := make(chan struct{}, 1)
	cleanup, err := s.Watch(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer cleanup()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("noise"), 0644))

	select {
	case <-changed:
		t.Fatal("watcher fired for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}
