package kv

import (
	"io"
	"log/slog"
)

// Value is a string held in memory and mirrored to a Store under a fixed
// key. Store failures never surface to callers: reads fall back to the
// default and writes are logged, keeping the in-memory value authoritative.
type Value struct {
	store  Store
	key    string
	value  string
	logger *slog.Logger
}

// Load reads key from store once. A missing or empty stored value yields
// fallback.
func Load(store Store, key, fallback string, logger *slog.Logger) *Value {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	v := &Value{store: store, key: key, value: fallback, logger: logger}
	if store == nil {
		return v
	}

	stored, ok, err := store.Get(key)
	switch {
	case err != nil:
		logger.Warn("reading persisted value", "key", key, "error", err)
	case ok && stored != "":
		v.value = stored
	}
	return v
}

func (v *Value) Key() string { return v.key }

func (v *Value) Get() string { return v.value }

// Set updates the value and writes it through to the store.
func (v *Value) Set(s string) {
	v.value = s
	if v.store == nil {
		return
	}
	if err := v.store.Set(v.key, s); err != nil {
		v.logger.Warn("persisting value", "key", v.key, "error", err)
	}
}
