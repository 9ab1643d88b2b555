package webdata

import (
	"context"

	"golang.org/x/time/rate"
)

// Rate limit configuration for the static data host. The documents are tiny
// and served from a CDN; conservative limits keep rapid re-queries polite.
const (
	// DefaultRequestsPerSecond is the sustained rate limit.
	DefaultRequestsPerSecond = 5.0
	// DefaultBurstSize is the maximum burst size.
	DefaultBurstSize = 10
)

// RateLimiter provides token-bucket rate limiting for data requests.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter; non-positive arguments use the defaults.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if perSecond <= 0 {
		perSecond = DefaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = DefaultBurstSize
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wait blocks until a request can be made without exceeding the rate limit.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Allow checks if a request can be made immediately without blocking.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}
