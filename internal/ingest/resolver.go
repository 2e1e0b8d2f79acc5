package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vtopia/nft-assistant/internal/cache"
	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/logger"
	"github.com/vtopia/nft-assistant/internal/metrics"
	"github.com/vtopia/nft-assistant/internal/providers/vendors/hellomoon"
	"github.com/vtopia/nft-assistant/internal/retry"
)

// Resolver maps a free-text collection name to its canonical reference
//
//go:generate mockgen -source=resolver.go -destination=../mocks/collection_resolver.go -package=mocks -mock_names=Resolver=MockCollectionResolver
type Resolver interface {
	// Resolve returns the best match for name, or domain.ErrCollectionNotFound
	Resolve(ctx context.Context, name string) (*domain.CollectionRef, error)
}

type resolver struct {
	client  hellomoon.Client
	cache   cache.ResolverCache
	retrier *retry.Retrier
	policy  retry.Policy
}

// NewResolver creates a collection resolver. resolverCache may be nil.
func NewResolver(client hellomoon.Client, resolverCache cache.ResolverCache, retrier *retry.Retrier, policy retry.Policy) Resolver {
	return &resolver{
		client:  client,
		cache:   resolverCache,
		retrier: retrier,
		policy:  policy,
	}
}

func (r *resolver) Resolve(ctx context.Context, name string) (*domain.CollectionRef, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("collection_name", "collection name is required")
	}

	if ref := r.cached(ctx, name); ref != nil {
		return ref, nil
	}

	var ref *domain.CollectionRef
	err := r.retrier.Do(ctx, r.policy, func(ctx context.Context) error {
		candidates, err := r.client.SearchCollectionByName(ctx, name)
		if err != nil {
			return retry.PermanentOnClientError(err)
		}
		if len(candidates) == 0 {
			return retry.Permanent(fmt.Errorf("%w: %q", domain.ErrCollectionNotFound, name))
		}

		best := candidates[0]
		if best.HelloMoonCollectionID == "" {
			return retry.Permanent(fmt.Errorf("%w: collection id of %q", domain.ErrMissingRequiredField, name))
		}

		ref = &domain.CollectionRef{
			CollectionID:  best.HelloMoonCollectionID,
			CanonicalName: strings.TrimSpace(best.CollectionName),
		}
		return nil
	}, func(attempt int, err error, next time.Duration) {
		logger.WarnCtx(ctx, "collection resolution failed, retrying",
			zap.String("name", name),
			zap.Int("attempt", attempt),
			zap.Duration("next", next),
			zap.Error(err))
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "resolved collection",
		zap.String("name", name),
		zap.String("collection_id", ref.CollectionID),
		zap.String("canonical_name", ref.CanonicalName))

	r.store(ctx, name, *ref)

	return ref, nil
}

// cached looks name up in the resolver cache, cache failures count as a miss
func (r *resolver) cached(ctx context.Context, name string) *domain.CollectionRef {
	if r.cache == nil {
		return nil
	}

	ref, err := r.cache.Get(ctx, name)
	switch {
	case err != nil:
		metrics.ResolverCacheLookups.WithLabelValues(metrics.CacheError).Inc()
		logger.WarnCtx(ctx, "resolver cache lookup failed", zap.String("name", name), zap.Error(err))
		return nil
	case ref == nil:
		metrics.ResolverCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		return nil
	default:
		metrics.ResolverCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
		return ref
	}
}

func (r *resolver) store(ctx context.Context, name string, ref domain.CollectionRef) {
	if r.cache == nil {
		return
	}

	if err := r.cache.Set(ctx, name, ref); err != nil {
		logger.WarnCtx(ctx, "failed to cache resolved collection", zap.String("name", name), zap.Error(err))
	}
}
