package store

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Read returns the value stored under key decoded into T, or def when
// the key is absent or the payload fails to parse. Malformed stored
// data is never fatal: the corrupt payload stays in place (a later
// Write replaces it) and the default is substituted for this read.
func Read[T any](ctx context.Context, s *Store, key string, def T) T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		slog.Warn("read failed, using default", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Warn("malformed stored value, using default", "key", key, "error", err)
		return def
	}
	return v
}

// Write serializes v and stores it under key. Serialization or medium
// failures propagate to the caller; the previously stored document is
// untouched on failure.
func Write[T any](ctx context.Context, s *Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Put(ctx, key, data)
}
