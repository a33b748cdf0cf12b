// Package cache provides a small byte-oriented TTL cache behind a
// common interface, with in-memory and Redis backends. Values are
// JSON-marshaled by the typed helpers; the cache itself stores bytes.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Service defines cache operations.
type Service interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// SetJSON marshals and stores a value.
func SetJSON(ctx context.Context, c Service, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	return c.Set(ctx, key, b, ttl)
}

// GetJSON retrieves and unmarshals a value into dest.
func GetJSON(ctx context.Context, c Service, key string, dest interface{}) error {
	b, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("cache unmarshal: %w", err)
	}
	return nil
}

// Key builds a cache key from parts.
func Key(parts ...string) string {
	key := parts[0]
	for _, p := range parts[1:] {
		key += ":" + p
	}
	return key
}
