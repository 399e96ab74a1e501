package external

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/wizarding-catalog/internal/entities"
	"github.com/KirkDiggler/wizarding-catalog/internal/errors"
	responsecache "github.com/KirkDiggler/wizarding-catalog/internal/repositories/response_cache"
)

const (
	// CacheKeyCharacters is the response cache key for the character collection
	CacheKeyCharacters = "characters"
	// CacheKeySpells is the response cache key for the spell collection
	CacheKeySpells = "spells"
)

// CachedClientConfig configures NewCachedClient
type CachedClientConfig struct {
	Client Client
	Cache  responsecache.Repository
	Logger *slog.Logger
}

// Validate validates the CachedClientConfig.
func (cfg *CachedClientConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("client")
	}
	if cfg.Cache == nil {
		vb.RequiredField("cache")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return nil
}

// cachedClient serves collections from the response cache while they are
// fresh and falls through to the wrapped client otherwise. Cache failures
// are logged and never fail a request.
type cachedClient struct {
	client Client
	cache  responsecache.Repository
	logger *slog.Logger
}

// NewCachedClient wraps a Client with a response cache
func NewCachedClient(cfg *CachedClientConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cachedClient{
		client: cfg.Client,
		cache:  cfg.Cache,
		logger: cfg.Logger,
	}, nil
}

func (c *cachedClient) ListCharacters(ctx context.Context) ([]entities.Character, error) {
	var cached []entities.Character
	if c.lookup(ctx, CacheKeyCharacters, &cached) {
		return cached, nil
	}

	characters, err := c.client.ListCharacters(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, CacheKeyCharacters, characters)
	return characters, nil
}

func (c *cachedClient) ListSpells(ctx context.Context) ([]entities.Spell, error) {
	var cached []entities.Spell
	if c.lookup(ctx, CacheKeySpells, &cached) {
		return cached, nil
	}

	spells, err := c.client.ListSpells(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, CacheKeySpells, spells)
	return spells, nil
}

// lookup decodes a fresh cache entry into out and reports whether it did
func (c *cachedClient) lookup(ctx context.Context, key string, out any) bool {
	got, err := c.cache.Get(ctx, responsecache.GetInput{Key: key})
	if err != nil {
		if !errors.IsNotFound(err) {
			c.logger.WarnContext(ctx, "response cache read failed",
				"key", key,
				"error", err)
		}
		return false
	}

	if err := json.Unmarshal(got.Value, out); err != nil {
		c.logger.WarnContext(ctx, "discarding undecodable cache entry",
			"key", key,
			"error", err)
		return false
	}

	c.logger.DebugContext(ctx, "response cache hit", "key", key)
	return true
}

func (c *cachedClient) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to encode response for cache",
			"key", key,
			"error", err)
		return
	}

	if _, err := c.cache.Set(ctx, responsecache.SetInput{Key: key, Value: data}); err != nil {
		c.logger.WarnContext(ctx, "response cache write failed",
			"key", key,
			"error", err)
	}
}
