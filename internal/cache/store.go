package cache

import (
	"context"
	"time"
)

// Store represents a shared cache interface used across the application.
// Any backend offering keyed get/set/delete with expiry satisfies it.
type Store interface {
	// Backend names the backing implementation for introspection payloads.
	Backend() string
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Delete(ctx context.Context, keys ...string) error
}
