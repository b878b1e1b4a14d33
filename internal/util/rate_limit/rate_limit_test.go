package rate_limit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CheckRateLimit_WithinLimits_AllowsRequest(t *testing.T) {
	rateLimiter, _ := createRateLimiterWithClock(10, 20)
	key := uuid.New()

	result := rateLimiter.CheckRateLimit(key)

	assert.True(t, result.Allowed)
	assert.Equal(t, 19, result.Remaining)
	assert.Equal(t, 0, result.RetryAfterSec)
}

func Test_CheckRateLimit_ExceedsBurstLimit_DeniesRequest(t *testing.T) {
	rateLimiter, _ := createRateLimiterWithClock(1, 2)
	key := uuid.New()

	for i := 0; i < 2; i++ {
		result := rateLimiter.CheckRateLimit(key)
		assert.True(t, result.Allowed, "Request %d should be allowed", i+1)
	}

	result := rateLimiter.CheckRateLimit(key)
	assert.False(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)
	assert.True(t, result.RetryAfterSec > 0)
}

func Test_CheckRateLimit_TokensRefillOverTime_AllowsRequestsAfterWait(t *testing.T) {
	rateLimiter, advance := createRateLimiterWithClock(10, 1)
	key := uuid.New()

	assert.True(t, rateLimiter.CheckRateLimit(key).Allowed)
	assert.False(t, rateLimiter.CheckRateLimit(key).Allowed)

	advance(150 * time.Millisecond)

	assert.True(t, rateLimiter.CheckRateLimit(key).Allowed)
}

func Test_CheckRateLimit_DifferentKeys_HaveIndependentBuckets(t *testing.T) {
	rateLimiter, _ := createRateLimiterWithClock(1, 1)
	firstKey := uuid.New()
	secondKey := uuid.New()

	assert.True(t, rateLimiter.CheckRateLimit(firstKey).Allowed)
	assert.False(t, rateLimiter.CheckRateLimit(firstKey).Allowed)
	assert.True(t, rateLimiter.CheckRateLimit(secondKey).Allowed)
}

func Test_ResetRateLimit_AfterExhaustingBucket_AllowsAgain(t *testing.T) {
	rateLimiter, _ := createRateLimiterWithClock(1, 1)
	key := uuid.New()
	rateLimiter.CheckRateLimit(key)
	assert.False(t, rateLimiter.CheckRateLimit(key).Allowed)

	rateLimiter.ResetRateLimit(key)

	assert.True(t, rateLimiter.CheckRateLimit(key).Allowed)
}

func createRateLimiterWithClock(rpsLimit, burstLimit int) (*RateLimiter, func(time.Duration)) {
	rateLimiter := NewRateLimiter(rpsLimit, burstLimit)
	current := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	rateLimiter.now = func() time.Time { return current }

	return rateLimiter, func(d time.Duration) { current = current.Add(d) }
}
