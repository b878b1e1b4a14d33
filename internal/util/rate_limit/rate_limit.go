package rate_limit

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per key in memory.
type RateLimiter struct {
	mu         sync.Mutex
	limiters   map[uuid.UUID]*rate.Limiter
	rpsLimit   int
	burstLimit int
	now        func() time.Time
}

type RateLimitResult struct {
	Allowed       bool      `json:"allowed"`
	Remaining     int       `json:"remaining"`
	ResetTime     time.Time `json:"resetTime"`
	RetryAfterSec int       `json:"retryAfterSec,omitempty"`
}

func NewRateLimiter(rpsLimit, burstLimit int) *RateLimiter {
	if rpsLimit <= 0 {
		rpsLimit = 20
	}
	if burstLimit <= 0 {
		burstLimit = max(rpsLimit*2, 1)
	}

	return &RateLimiter{
		limiters:   make(map[uuid.UUID]*rate.Limiter),
		rpsLimit:   rpsLimit,
		burstLimit: burstLimit,
		now:        time.Now,
	}
}

func (r *RateLimiter) CheckRateLimit(key uuid.UUID) *RateLimitResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	limiter := r.limiterFor(key)
	now := r.now()

	allowed := limiter.AllowN(now, 1)
	tokens := limiter.TokensAt(now)
	remaining := max(int(math.Floor(tokens)), 0)

	timeToFull := time.Duration(0)
	if tokens < float64(r.burstLimit) {
		timeToFull = time.Duration((float64(r.burstLimit) - tokens) / float64(r.rpsLimit) * float64(time.Second))
	}

	var retryAfterSec int
	if !allowed {
		retryAfterSec = max(int(math.Ceil((1-tokens)/float64(r.rpsLimit))), 1)
	}

	return &RateLimitResult{
		Allowed:       allowed,
		Remaining:     remaining,
		ResetTime:     now.Add(timeToFull),
		RetryAfterSec: retryAfterSec,
	}
}

func (r *RateLimiter) ResetRateLimit(key uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.limiters, key)
}

func (r *RateLimiter) limiterFor(key uuid.UUID) *rate.Limiter {
	limiter, exists := r.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rate.Limit(r.rpsLimit), r.burstLimit)
		r.limiters[key] = limiter
	}

	return limiter
}
