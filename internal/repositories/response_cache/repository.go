// Package responsecache stores provider responses for a bounded time window
// so repeated loads of the same collection skip the network.
//
// It is a plain TTL cache: an entry is served while fewer than TTL has
// elapsed since it was stored, then evicted on the next read. There is no
// capacity bound and no LRU behaviour.
package responsecache

//go:generate mockgen -destination=mock/mock_repository.go -package=responsecachemock github.com/KirkDiggler/wizarding-catalog/internal/repositories/response_cache Repository

import (
	"context"
	"time"
)

// DefaultTTL is how long a cached response stays fresh
const DefaultTTL = 5 * time.Minute

const (
	errKeyEmpty      = "cache key cannot be empty"
	errEntryNotFound = "cache entry not found"
	errEntryExpired  = "cache entry expired"
)

// GetInput contains parameters for reading a cached response
type GetInput struct {
	Key string
}

// GetOutput contains a fresh cached response
type GetOutput struct {
	Value    []byte
	StoredAt time.Time
}

// SetInput contains parameters for caching a response
type SetInput struct {
	Key   string
	Value []byte
}

// SetOutput reports when the stored entry stops being served
type SetOutput struct {
	ExpiresAt time.Time
}

// Repository defines the response cache operations.
// Get returns a NotFound error for both missing and expired keys.
type Repository interface {
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Set(ctx context.Context, input SetInput) (*SetOutput, error)
	Clear(ctx context.Context) error
}

func isExpired(storedAt, now time.Time, ttl time.Duration) bool {
	return now.Sub(storedAt) >= ttl
}
