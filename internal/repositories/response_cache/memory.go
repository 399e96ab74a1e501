package responsecache

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/wizarding-catalog/internal/errors"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/clock"
)

// MemoryConfig configures the in-process cache
type MemoryConfig struct {
	Clock clock.Clock
	TTL   time.Duration
}

type memoryEntry struct {
	value    []byte
	storedAt time.Time
}

type memoryRepository struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	clock   clock.Clock
	ttl     time.Duration
}

// NewMemory creates an in-process response cache
func NewMemory(cfg *MemoryConfig) (Repository, error) {
	if cfg == nil {
		cfg = &MemoryConfig{}
	}
	if cfg.TTL < 0 {
		return nil, errors.InvalidArgument("ttl cannot be negative")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &memoryRepository{
		entries: make(map[string]memoryEntry),
		clock:   c,
		ttl:     ttl,
	}, nil
}

var _ Repository = (*memoryRepository)(nil)

func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[input.Key]
	if !ok {
		return nil, errors.NotFound(errEntryNotFound).WithMeta("key", input.Key)
	}

	if isExpired(entry.storedAt, r.clock.Now(), r.ttl) {
		delete(r.entries, input.Key)
		return nil, errors.NotFound(errEntryExpired).WithMeta("key", input.Key)
	}

	return &GetOutput{
		Value:    append([]byte(nil), entry.value...),
		StoredAt: entry.storedAt,
	}, nil
}

func (r *memoryRepository) Set(_ context.Context, input SetInput) (*SetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	now := r.clock.Now()

	r.mu.Lock()
	r.entries[input.Key] = memoryEntry{
		value:    append([]byte(nil), input.Value...),
		storedAt: now,
	}
	r.mu.Unlock()

	return &SetOutput{ExpiresAt: now.Add(r.ttl)}, nil
}

func (r *memoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]memoryEntry)
	return nil
}
