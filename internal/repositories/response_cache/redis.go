package responsecache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/wizarding-catalog/internal/errors"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/wizarding-catalog/internal/redis"
)

const (
	// Key pattern: response_cache:{key}
	defaultKeyPrefix = "response_cache:"
	scanBatchSize    = 100
)

// RedisConfig configures the redis-backed cache
type RedisConfig struct {
	Client    redisclient.Client
	Clock     clock.Clock
	TTL       time.Duration
	KeyPrefix string
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

// redisEntry is the stored envelope. StoredAt is kept alongside the value so
// freshness follows the injected clock, with the redis TTL as a backstop.
type redisEntry struct {
	Value    []byte    `json:"value"`
	StoredAt time.Time `json:"stored_at"`
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
	prefix string
}

// NewRedis creates a redis-backed response cache
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ttl:    ttl,
		prefix: prefix,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	key := r.buildKey(input.Key)

	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errEntryNotFound).WithMeta("key", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to get cache entry from Redis")
	}

	var entry redisEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal cache entry")
	}

	if isExpired(entry.StoredAt, r.clock.Now(), r.ttl) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound(errEntryExpired).WithMeta("key", input.Key)
	}

	return &GetOutput{
		Value:    entry.Value,
		StoredAt: entry.StoredAt,
	}, nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	now := r.clock.Now()
	data, err := json.Marshal(redisEntry{Value: input.Value, StoredAt: now})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal cache entry")
	}

	if err := r.client.Set(ctx, r.buildKey(input.Key), data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store cache entry in Redis")
	}

	return &SetOutput{ExpiresAt: now.Add(r.ttl)}, nil
}

// Clear removes every key under this cache's prefix
func (r *redisRepository) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", scanBatchSize).Result()
		if err != nil {
			return errors.Wrapf(err, "failed to scan cache keys")
		}

		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return errors.Wrapf(err, "failed to delete cache keys")
			}
		}

		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (r *redisRepository) buildKey(key string) string {
	return r.prefix + key
}
