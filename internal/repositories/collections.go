package repositories

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// loadCollection reads and decodes a JSON-array collection. Read failures
// (storage or corrupt payload) degrade to an empty slice with a logged
// diagnostic so callers stay usable when the backend misbehaves.
func loadCollection[T any](ctx context.Context, store KeyValueStore, key string, log *zap.Logger) []T {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Warn("collection read failed, returning empty",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warn("collection payload corrupt, returning empty",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	return items
}

// storeCollection encodes and writes a whole collection back. Write failures
// propagate to the caller.
func storeCollection[T any](ctx context.Context, store KeyValueStore, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, string(raw))
}
