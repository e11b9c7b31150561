package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Aside implements the cache-aside pattern: serve dest from Redis when the
// key is present, otherwise run load and store the result with the given TTL.
// Cache failures never fail the read; the loader is the source of truth.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, load func() error) error {
	if client == nil {
		return load()
	}

	if data, err := client.Get(ctx, key).Bytes(); err == nil {
		if jsonErr := json.Unmarshal(data, dest); jsonErr == nil {
			return nil
		}
		// Corrupt entry; drop it and fall through to the loader.
		client.Del(ctx, key)
	}

	if err := load(); err != nil {
		return err
	}

	if data, err := json.Marshal(dest); err == nil {
		client.Set(ctx, key, data, ttl)
	}
	return nil
}
