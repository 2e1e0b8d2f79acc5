package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/config"
	"github.com/vtopia/nft-assistant/internal/logger"
	"github.com/vtopia/nft-assistant/internal/metrics"
)

const (
	healthCheckInterval = 10 * time.Second
	pollInterval        = 100 * time.Millisecond
)

var (
	// ErrProxyClosed is returned for requests submitted after Close
	ErrProxyClosed = errors.New("rate limit proxy is closed")

	// ErrUnknownProvider is returned for a provider without a configured limit
	ErrUnknownProvider = errors.New("provider not configured")
)

// RequestFunc performs the actual provider call
type RequestFunc func(ctx context.Context) (interface{}, error)

type requestResult struct {
	value interface{}
	err   error
}

// Proxy throttles provider calls per provider name
//
//go:generate mockgen -source=proxy.go -destination=../mocks/ratelimit_proxy.go -package=mocks -mock_names=Proxy=MockRateLimitProxy
type Proxy interface {
	// Request blocks until a token for providerName is acquired, then runs fn on the worker pool
	Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error)

	// Close stops accepting requests and waits for in-flight ones
	Close() error
}

type proxy struct {
	config         config.RateLimiterConfig
	pool           pond.ResultPool[*requestResult]
	limiters       map[string]*providerLimiter
	redis          adapter.RedisClient
	clock          adapter.Clock
	done           chan struct{}
	closed         atomic.Bool
	closeOnce      sync.Once
	redisAvailable atomic.Bool
}

// providerLimiter holds the limiting state of one provider
type providerLimiter struct {
	name        string
	config      config.RateLimitConfig
	distributed adapter.RedisRateLimiter
	// local is used when Redis is unavailable, at a reduced rate
	local *rate.Limiter
	// preFilter keeps a single process from hammering Redis
	preFilter *rate.Limiter
}

// NewProxy creates a rate limiting proxy. rc may be nil, in which case only local limiters are used.
func NewProxy(cfg config.RateLimiterConfig, rc adapter.RedisClient, clock adapter.Clock) (Proxy, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid rate limiter configuration: %w", err)
	}

	redisAvailable := false
	var distributed adapter.RedisRateLimiter
	if rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rc.Ping(ctx)
		cancel()
		if err == nil {
			redisAvailable = true
		} else {
			logger.Warn("redis unavailable for rate limiting", zap.Error(err))
		}
		distributed = rc.NewRateLimiter()
	}
	if !redisAvailable && !cfg.EnableLocalFallback {
		return nil, errors.New("redis unavailable and local fallback disabled")
	}

	limiters := make(map[string]*providerLimiter, len(cfg.Providers))
	for name, pc := range cfg.Providers {
		localRate := max(float64(pc.RequestsPerSecond)*cfg.LocalFallbackMultiplier, 1.0)
		limiters[name] = &providerLimiter{
			name:        name,
			config:      pc,
			distributed: distributed,
			local:       rate.NewLimiter(rate.Limit(localRate), pc.Burst),
			preFilter:   rate.NewLimiter(rate.Limit(pc.RequestsPerSecond), pc.Burst),
		}
	}

	p := &proxy{
		config:   cfg,
		pool:     pond.NewResultPool[*requestResult](cfg.MaxWorkers, pond.WithQueueSize(cfg.MaxQueueSize)),
		limiters: limiters,
		redis:    rc,
		clock:    clock,
		done:     make(chan struct{}),
	}
	p.redisAvailable.Store(redisAvailable)

	if rc != nil {
		go p.monitorRedisHealth()
	}

	logger.Info("rate limit proxy initialized",
		zap.Int("max_workers", cfg.MaxWorkers),
		zap.Int("max_queue_size", cfg.MaxQueueSize),
		zap.Int("providers", len(cfg.Providers)),
		zap.Bool("redis", redisAvailable),
	)

	return p, nil
}

// Request runs fn through p with a typed result. A nil proxy runs fn directly.
func Request[T any](ctx context.Context, p Proxy, providerName string, fn func(ctx context.Context) (T, error)) (T, error) {
	start := time.Now()
	if p == nil {
		result, err := fn(ctx)
		observe(providerName, start, err)
		return result, err
	}

	var zero T
	result, err := p.Request(ctx, providerName, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	observe(providerName, start, err)
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, nil
	}
	return typed, nil
}

func observe(providerName string, start time.Time, err error) {
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailed
	}
	metrics.ProviderRequestDuration.WithLabelValues(providerName, outcome).Observe(time.Since(start).Seconds())
}

func (p *proxy) Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error) {
	if p.closed.Load() {
		return nil, ErrProxyClosed
	}

	limiter, ok := p.limiters[providerName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, providerName)
	}

	task := p.pool.Submit(func() *requestResult {
		if err := p.acquire(ctx, limiter); err != nil {
			return &requestResult{err: err}
		}
		value, err := fn(ctx)
		return &requestResult{value: value, err: err}
	})

	result, err := task.Wait()
	if err != nil {
		return nil, err
	}
	return result.value, result.err
}

// acquire blocks until limiter grants a token, the queue time elapses or ctx is done
func (p *proxy) acquire(ctx context.Context, limiter *providerLimiter) error {
	queueCtx, cancel := context.WithTimeout(ctx, limiter.config.MaxQueueTime)
	defer cancel()

	for {
		if err := queueCtx.Err(); err != nil {
			return err
		}

		if p.redisAvailable.Load() {
			allowed, retryAfter, err := p.tryDistributed(queueCtx, limiter)
			switch {
			case err != nil && queueCtx.Err() != nil:
				return queueCtx.Err()
			case err != nil:
				p.redisAvailable.Store(false)
				if !p.config.EnableLocalFallback {
					return fmt.Errorf("redis rate limiter unavailable: %w", err)
				}
				logger.Warn("redis rate limiter failed, using local limiter",
					zap.String("provider", limiter.name),
					zap.Error(err),
				)
			case allowed:
				return nil
			case retryAfter > 0:
				// spread retries over 50-150% of retryAfter
				jitter := time.Duration(float64(retryAfter) * (0.5 + rand.Float64())) //nolint:gosec,G404
				if err := p.wait(queueCtx, jitter); err != nil {
					return err
				}
				continue
			}
		}

		if !p.redisAvailable.Load() && p.config.EnableLocalFallback {
			return limiter.local.Wait(queueCtx)
		}

		if err := p.wait(queueCtx, pollInterval); err != nil {
			return err
		}
	}
}

func (p *proxy) wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.clock.After(d):
		return nil
	}
}

// tryDistributed asks Redis for a token, returning whether it was granted and when to retry
func (p *proxy) tryDistributed(ctx context.Context, limiter *providerLimiter) (bool, time.Duration, error) {
	if limiter.distributed == nil {
		return false, 0, errors.New("distributed limiter not available")
	}

	if err := limiter.preFilter.Wait(ctx); err != nil {
		return false, 0, err
	}

	res, err := limiter.distributed.Allow(ctx, p.config.RedisKeyPrefix+limiter.name, redis_rate.PerSecond(limiter.config.RequestsPerSecond))
	if err != nil {
		return false, 0, err
	}

	if res.Allowed == 0 {
		logger.Debug("rate limit token unavailable",
			zap.String("provider", limiter.name),
			zap.Duration("retry_after", res.RetryAfter),
		)
		return false, res.RetryAfter, nil
	}

	return true, 0, nil
}

// monitorRedisHealth re-enables the distributed limiter once Redis answers again
func (p *proxy) monitorRedisHealth() {
	for {
		select {
		case <-p.done:
			return
		case <-p.clock.After(healthCheckInterval):
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := p.redis.Ping(ctx)
		cancel()

		wasAvailable := p.redisAvailable.Swap(err == nil)
		if !wasAvailable && err == nil {
			logger.Info("redis rate limiter restored")
		}
	}
}

// Close stops the proxy. The Redis client is owned by the caller and left open.
func (p *proxy) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.done)

		if waitErr := p.pool.Stop().Wait(); waitErr != nil {
			logger.Warn("rate limit proxy tasks failed during shutdown", zap.Error(waitErr))
			err = waitErr
		}
	})
	return err
}

// validateConfig validates cfg and fills in defaults
func validateConfig(cfg *config.RateLimiterConfig) error {
	if len(cfg.Providers) == 0 {
		return errors.New("at least one provider must be configured")
	}

	providers := make(map[string]config.RateLimitConfig, len(cfg.Providers))
	for name, pc := range cfg.Providers {
		if pc.RequestsPerSecond <= 0 {
			return fmt.Errorf("provider %s: requests_per_second must be positive", name)
		}
		if pc.Burst <= 0 {
			pc.Burst = pc.RequestsPerSecond
		}
		if pc.MaxQueueTime <= 0 {
			pc.MaxQueueTime = 5 * time.Minute
		}
		providers[name] = pc
	}
	cfg.Providers = providers

	if cfg.RedisKeyPrefix == "" {
		cfg.RedisKeyPrefix = "nft:assistant:limiter:"
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = runtime.NumCPU() * 10
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 10000
	}
	if cfg.LocalFallbackMultiplier <= 0 {
		cfg.LocalFallbackMultiplier = 0.5
	}

	return nil
}
