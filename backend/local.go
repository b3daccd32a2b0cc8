package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Local is the file-backed translation-memory backend used when no Redis
// server is reachable (desktop mode). The whole map lives in memory and
// is rewritten to disk on every Set and on Close.
//
// Unlike the Redis backend, Local has no TTL: entries persist until they
// are overwritten or the store file is deleted. That asymmetry is a
// deliberate per-backend policy (unbounded retention for a single-user
// desktop install), not an oversight.
//
// The full-file rewrite keeps the format trivial and is fine at subtitle
// volumes; it is not suitable for high write rates.
type Local struct {
	path string

	mu      sync.RWMutex
	entries map[string]string
}

// NewLocal opens the store at path, loading any existing entries.
// A missing or corrupt file is not an error; the store starts empty.
// An error is returned only when the path itself is unusable (empty, or
// pointing at a directory).
func NewLocal(path string) (*Local, error) {
	if path == "" {
		return nil, fmt.Errorf("local store path is empty")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("local store path %s is a directory", path)
	}

	l := &Local{
		path:    path,
		entries: make(map[string]string),
	}

	data, err := os.ReadFile(path) // #nosec G304 - path is intentionally caller-provided
	if err != nil {
		// Missing file: first run, start empty.
		return l, nil
	}

	if err := json.Unmarshal(data, &l.entries); err != nil {
		// Corrupt file: start empty rather than fail. The next write
		// replaces it with a valid snapshot.
		l.entries = make(map[string]string)
	}
	if l.entries == nil {
		l.entries = make(map[string]string)
	}

	return l, nil
}

// Get retrieves a value from the in-memory map. Never errors.
func (l *Local) Get(_ context.Context, key string) (string, bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	val, ok := l.entries[key]
	return val, ok, nil
}

// Set stores a value and immediately rewrites the store file.
func (l *Local) Set(_ context.Context, key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[key] = value
	return l.flushLocked()
}

// Close flushes the map to disk. Idempotent.
func (l *Local) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flushLocked()
}

// Len returns the number of stored entries.
func (l *Local) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Entries returns a snapshot of all stored entries.
func (l *Local) Entries() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := make(map[string]string, len(l.entries))
	for k, v := range l.entries {
		snapshot[k] = v
	}
	return snapshot
}

// flushLocked writes the full map to the store file via a temp file and
// rename, so a crash mid-write leaves either the old or the new snapshot.
// Must be called with l.mu held.
func (l *Local) flushLocked() error {
	data, err := json.MarshalIndent(l.entries, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(l.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(l.path)+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), l.path)
}

// Verify Local implements Backend
var _ Backend = (*Local)(nil)
