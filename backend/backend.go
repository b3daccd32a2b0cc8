// Package backend provides the storage backends for the translation memory.
package backend

import "context"

// Backend is the interface for translation-memory storage.
// Implementations are safe for concurrent use; every operation acts on a
// single key with last-write-wins semantics.
type Backend interface {
	// Get retrieves a stored translation. The boolean is false when the
	// key is absent; an error means the read itself failed and the caller
	// should treat the lookup as a miss.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a translation, overwriting any existing entry.
	Set(ctx context.Context, key, value string) error

	// Close releases the backend's resources. For the local store this
	// flushes the map to disk. Safe to call more than once.
	Close() error
}
