package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/domain"
)

const resolverKeySegment = "resolver:"

// ResolverCache caches collection name resolutions
//
//go:generate mockgen -source=resolver_cache.go -destination=../mocks/resolver_cache.go -package=mocks -mock_names=ResolverCache=MockResolverCache
type ResolverCache interface {
	// Get returns the cached reference for a collection name, nil on a miss
	Get(ctx context.Context, name string) (*domain.CollectionRef, error)

	// Set stores the reference resolved for a collection name
	Set(ctx context.Context, name string, ref domain.CollectionRef) error

	// Invalidate removes the cached reference for a collection name
	Invalidate(ctx context.Context, name string) error
}

type redisResolverCache struct {
	redis     adapter.RedisClient
	json      adapter.JSON
	keyPrefix string
	ttl       time.Duration
}

// NewRedisResolverCache creates a resolver cache stored in Redis
func NewRedisResolverCache(redis adapter.RedisClient, json adapter.JSON, keyPrefix string, ttl time.Duration) ResolverCache {
	return &redisResolverCache{
		redis:     redis,
		json:      json,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// key is derived from the normalized name so that "Okay  Bears" and "okay bears" share an entry
func (c *redisResolverCache) key(name string) string {
	return c.keyPrefix + resolverKeySegment + domain.NormalizeCollectionName(name)
}

func (c *redisResolverCache) Get(ctx context.Context, name string) (*domain.CollectionRef, error) {
	data, err := c.redis.Get(ctx, c.key(name))
	if err != nil {
		if errors.Is(err, adapter.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read resolver cache: %w", err)
	}

	var ref domain.CollectionRef
	if err := c.json.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached collection: %w", err)
	}
	if ref.CollectionID == "" {
		return nil, nil
	}

	return &ref, nil
}

func (c *redisResolverCache) Set(ctx context.Context, name string, ref domain.CollectionRef) error {
	data, err := c.json.Marshal(ref)
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}

	if err := c.redis.Set(ctx, c.key(name), data, c.ttl); err != nil {
		return fmt.Errorf("failed to write resolver cache: %w", err)
	}

	return nil
}

func (c *redisResolverCache) Invalidate(ctx context.Context, name string) error {
	if err := c.redis.Del(ctx, c.key(name)); err != nil {
		return fmt.Errorf("failed to invalidate resolver cache: %w", err)
	}
	return nil
}
