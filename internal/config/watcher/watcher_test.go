package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationString(t *testing.T) {
	assert.Equal(t, "write", OpWrite.String())
	assert.Equal(t, "create", OpCreate.String())
	assert.Equal(t, "remove", OpRemove.String())
	assert.Equal(t, "rename", OpRename.String())
	assert.Equal(t, "unknown", Operation(42).String())
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o644))

	w, err := New(WithDebounce(20 * time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	events := make(chan Event, 16)
	w.OnChange(func(ev Event) { events <- ev })
	require.NoError(t, w.Watch(path))

	// Changes to other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("a = 2\n"), 0o644))

	select {
	case ev := <-events:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, ev.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}
}

func TestWatcherDebounces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o644))

	w, err := New(WithDebounce(200 * time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	events := make(chan Event, 16)
	w.OnChange(func(ev Event) { events <- ev })
	require.NoError(t, w.Watch(path))

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("a: 2\n"), 0o644))
	}

	select {
	case <-events:
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}
	select {
	case ev := <-events:
		t.Fatalf("unexpected second event %+v", ev)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcherUnwatchAndClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	w, err := New()
	require.NoError(t, err)

	require.NoError(t, w.Watch(path), "missing file in an existing directory")
	require.NoError(t, w.Watch(path), "watching twice is fine")
	require.NoError(t, w.Unwatch(path))
	require.NoError(t, w.Unwatch(path))

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Watch(path), ErrClosed)
}

func TestWatcherMissingDirectory(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Close()

	assert.Error(t, w.Watch(filepath.Join(t.TempDir(), "nope", "config.toml")))
}
