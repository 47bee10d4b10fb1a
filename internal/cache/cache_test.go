package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestStoreAndLookup(t *testing.T) {
	dir := t.TempDir()
	c := New(filepath.Join(dir, "cache"))
	source := writeSource(t, dir, "mod.json", time.Now().Add(-time.Hour))

	require.NoError(t, c.Store(source, "def f():\n    pass\n"))

	output, ok := c.Lookup(source, time.Time{})
	require.True(t, ok)
	assert.Equal(t, "def f():\n    pass\n", output)
}

func TestLookupMissesWhenSourceIsNewer(t *testing.T) {
	dir := t.TempDir()
	c := New(filepath.Join(dir, "cache"))
	source := writeSource(t, dir, "mod.json", time.Now().Add(-time.Hour))

	require.NoError(t, c.Store(source, "output"))

	// Touching the source past the cached entry invalidates it.
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(source, future, future))

	_, ok := c.Lookup(source, time.Time{})
	assert.False(t, ok)
}

func TestLookupHonorsMinTime(t *testing.T) {
	dir := t.TempDir()
	c := New(filepath.Join(dir, "cache"))
	source := writeSource(t, dir, "mod.json", time.Now().Add(-time.Hour))

	require.NoError(t, c.Store(source, "output"))

	_, ok := c.Lookup(source, time.Now().Add(time.Hour))
	assert.False(t, ok, "entries older than minTime are stale")
}

func TestLookupMissesOnAbsentEntry(t *testing.T) {
	dir := t.TempDir()
	c := New(filepath.Join(dir, "cache"))
	source := writeSource(t, dir, "mod.json", time.Now())

	_, ok := c.Lookup(source, time.Time{})
	assert.False(t, ok)
}

func TestKeyIsStablePerPath(t *testing.T) {
	assert.Equal(t, Key("a.json"), Key("a.json"))
	assert.NotEqual(t, Key("a.json"), Key("b.json"))
	assert.Len(t, Key("a.json"), 40)
}
