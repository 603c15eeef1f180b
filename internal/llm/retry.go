package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryClass says how the retry loop treats a failure.
type retryClass int

const (
	retryNever  retryClass = iota // config or context problem, give up
	retryOnce                     // worth one more shot, not a loop
	retryAlways                   // transient, keep going until attempts run out
)

// classifyRetry buckets an error for the retry loop.
func classifyRetry(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNever
	}

	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		return retryNever
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return retryOnce
	}

	// Rate limits, 5xx, and plain transport errors all look transient.
	return retryAlways
}

// retrier decorates a Provider with bounded retries. One instance is
// shared across requests, so per-request state lives in Generate.
type retrier struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p so transient failures are retried with exponential
// backoff and jitter, up to cfg.MaxAttempts total attempts.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{inner: p, cfg: cfg}
}

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	onceUsed := false

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch classifyRetry(err) {
		case retryNever:
			return nil, err
		case retryOnce:
			if onceUsed {
				return nil, err
			}
			onceUsed = true
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *retrier) ModelID() string {
	return r.inner.ModelID()
}

// wait picks the sleep before the next attempt. A vendor-supplied
// Retry-After wins; otherwise exponential backoff with ±20% jitter,
// capped at MaxWait.
func (r *retrier) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	base := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	base = min(base, float64(r.cfg.MaxWait))
	base *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(max(base, 0))
}
