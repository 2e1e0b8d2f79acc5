package retry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/config"
	"github.com/vtopia/nft-assistant/internal/domain"
)

// Strategy selects how the delay grows between attempts
type Strategy string

const (
	StrategyFixed       Strategy = "fixed"
	StrategyExponential Strategy = "exponential"
)

// Policy describes how an operation is retried
type Policy struct {
	// MaxAttempts is the total number of attempts, values below 1 are treated as 1
	MaxAttempts int
	// Delay is the fixed delay, or the initial delay for the exponential strategy
	Delay    time.Duration
	Strategy Strategy
	// MaxDelay caps the exponential delay, zero means uncapped
	MaxDelay time.Duration
}

// NoRetry runs the operation exactly once
func NoRetry() Policy {
	return Policy{MaxAttempts: 1, Strategy: StrategyFixed}
}

// DefaultBatchPolicy is the policy applied to asset batch fetches
func DefaultBatchPolicy() Policy {
	return Policy{
		MaxAttempts: domain.DEFAULT_BATCH_MAX_ATTEMPTS,
		Delay:       domain.DEFAULT_BATCH_RETRY_DELAY,
		Strategy:    StrategyFixed,
	}
}

// FromConfig converts a configured policy, falling back to NoRetry when unset
func FromConfig(cfg config.RetryPolicyConfig) Policy {
	if cfg.MaxAttempts <= 1 {
		return NoRetry()
	}
	strategy := Strategy(cfg.Strategy)
	if strategy != StrategyExponential {
		strategy = StrategyFixed
	}
	return Policy{
		MaxAttempts: cfg.MaxAttempts,
		Delay:       cfg.Delay,
		Strategy:    strategy,
		MaxDelay:    cfg.MaxDelay,
	}
}

// Validate reports whether the policy is usable
func (p Policy) Validate() error {
	if p.Delay < 0 || p.MaxDelay < 0 {
		return fmt.Errorf("retry delays must not be negative")
	}
	switch p.Strategy {
	case "", StrategyFixed, StrategyExponential:
		return nil
	default:
		return fmt.Errorf("unknown retry strategy %q", p.Strategy)
	}
}

func (p Policy) attempts() int {
	return max(p.MaxAttempts, 1)
}

// backOff builds the delay sequence for the policy
func (p Policy) backOff() backoff.BackOff {
	var b backoff.BackOff
	switch p.Strategy {
	case StrategyExponential:
		exp := backoff.NewExponentialBackOff()
		exp.InitialInterval = p.Delay
		exp.RandomizationFactor = 0
		exp.Multiplier = 2
		exp.MaxElapsedTime = 0
		exp.MaxInterval = p.MaxDelay
		if exp.MaxInterval == 0 {
			exp.MaxInterval = time.Duration(1<<62 - 1)
		}
		b = exp
	default:
		b = backoff.NewConstantBackOff(p.Delay)
	}
	return backoff.WithMaxRetries(b, uint64(p.attempts()-1)) //nolint:gosec,G115
}

// NotifyFunc is called after a failed attempt that will be retried
type NotifyFunc func(attempt int, err error, next time.Duration)

// Retrier runs operations under a Policy, sleeping on the injected clock
type Retrier struct {
	clock adapter.Clock
}

// New creates a Retrier
func New(clock adapter.Clock) *Retrier {
	return &Retrier{clock: clock}
}

// Do runs op until it succeeds, returns a Permanent error, the policy is exhausted or ctx is done.
// The returned error is the last error of op, or the context error.
func (r *Retrier) Do(ctx context.Context, p Policy, op func(ctx context.Context) error, notify NotifyFunc) error {
	attempt := 0
	operation := func() error {
		attempt++
		return op(ctx)
	}

	var onRetry backoff.Notify
	if notify != nil {
		onRetry = func(err error, next time.Duration) {
			notify(attempt, err, next)
		}
	}

	return backoff.RetryNotifyWithTimer(operation, backoff.WithContext(p.backOff(), ctx), onRetry, &clockTimer{clock: r.clock})
}

// Permanent wraps err so that it is not retried
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// PermanentOnClientError marks 4xx responses as permanent, except 408 and 429 which may succeed later
func PermanentOnClientError(err error) error {
	var sErr *adapter.StatusError
	if !errors.As(err, &sErr) {
		return err
	}
	switch {
	case sErr.StatusCode == http.StatusRequestTimeout, sErr.StatusCode == http.StatusTooManyRequests:
		return err
	case sErr.StatusCode >= 400 && sErr.StatusCode < 500:
		return Permanent(err)
	default:
		return err
	}
}

// clockTimer implements backoff.Timer on top of adapter.Clock
type clockTimer struct {
	clock adapter.Clock
	c     <-chan time.Time
}

func (t *clockTimer) Start(duration time.Duration) {
	t.c = t.clock.After(duration)
}

func (t *clockTimer) Stop() {}

func (t *clockTimer) C() <-chan time.Time {
	return t.c
}
