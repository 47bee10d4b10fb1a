// Package cache lets the CLI skip re-translation of files whose previous
// output is still valid. Entries are keyed by a content-derived hash of the
// file path (not the file content); validity is decided by mtime comparison.
package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Cache stores one msgpack-encoded entry per translated file under dir.
type Cache struct {
	dir string
}

// New creates a cache rooted at dir. The directory is created lazily on the
// first store.
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// Key derives the cache key for a file path.
func Key(path string) string {
	sum := sha1.Sum([]byte(path))
	return hex.EncodeToString(sum[:])
}

type entry struct {
	Source string `msgpack:"source"`
	Output string `msgpack:"output"`
}

func (c *Cache) entryPath(path string) string {
	return filepath.Join(c.dir, Key(path))
}

// Lookup returns the cached translation output for path if it is still
// valid: the cached entry's mtime must be strictly newer than both minTime
// and the source file's own mtime.
func (c *Cache) Lookup(path string, minTime time.Time) (string, bool) {
	cached, err := os.Stat(c.entryPath(path))
	if err != nil {
		return "", false
	}
	source, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	limit := minTime
	if source.ModTime().After(limit) {
		limit = source.ModTime()
	}
	if !cached.ModTime().After(limit) {
		return "", false
	}
	data, err := os.ReadFile(c.entryPath(path))
	if err != nil {
		return "", false
	}
	var e entry
	if err := msgpack.Unmarshal(data, &e); err != nil || e.Source != path {
		return "", false
	}
	return e.Output, true
}

// Store records the translation output for path.
func (c *Cache) Store(path, output string) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	data, err := msgpack.Marshal(entry{Source: path, Output: output})
	if err != nil {
		return err
	}
	return os.WriteFile(c.entryPath(path), data, 0o644)
}
