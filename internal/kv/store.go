// Package kv holds the persisted-value store: a small string key/value
// side channel that survives restarts, plus the Value wrapper that mirrors
// one in-memory setting into it.
package kv

import (
	"fmt"
	"path/filepath"
)

// Store is the interface every backend implements. All methods are safe
// for concurrent use.
type Store interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set inserts or replaces the value under key.
	Set(key, value string) error

	// Delete removes key. Returns true if it existed.
	Delete(key string) (bool, error)

	// Keys returns every stored key in sorted order.
	Keys() ([]string, error)

	Close() error
}

// New creates a Store based on the backend name.
//
// Supported backends:
//
//	"sqlite" - SQLite database at dir/state.db (default)
//	"json"   - JSON object at dir/state.json
//	"memory" - in-memory, lost on exit
func New(backend, dir string) (Store, error) {
	switch backend {
	case "sqlite", "":
		return OpenSQLite(filepath.Join(dir, "state.db"))
	case "json":
		return NewJSONFileStore(filepath.Join(dir, "state.json"))
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q (supported: sqlite, json, memory)", backend)
	}
}

// Location describes where a backend keeps its data, for display.
func Location(backend, dir string) string {
	switch backend {
	case "sqlite", "":
		return filepath.Join(dir, "state.db")
	case "json":
		return filepath.Join(dir, "state.json")
	default:
		return "(memory)"
	}
}
