package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllow_DisabledAlwaysAllows(t *testing.T) {
	limiter := NewLimiter(Config{Enabled: false, PerMinute: 1})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("client-a", "/resumes")
		assert.True(t, allowed)
	}
}

func TestAllow_ExemptPathBypassesLimit(t *testing.T) {
	limiter := NewLimiter(Config{Enabled: true, PerMinute: 1})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("client-a", "/health")
		assert.True(t, allowed)
	}
}

func TestAllow_ExhaustsBucket(t *testing.T) {
	limiter := NewLimiter(Config{Enabled: true, PerMinute: 2})
	defer limiter.Stop()

	allowed, info := limiter.Allow("client-a", "/resumes")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)
	assert.Equal(t, 1, info.Remaining)

	allowed, _ = limiter.Allow("client-a", "/resumes")
	assert.True(t, allowed)

	allowed, info = limiter.Allow("client-a", "/resumes")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(Config{Enabled: true, PerMinute: 1})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("client-a", "/resumes")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("client-a", "/resumes")
	assert.False(t, allowed)

	allowed, _ = limiter.Allow("client-b", "/resumes")
	assert.True(t, allowed)
}

func TestCleanup_DropsIdleBuckets(t *testing.T) {
	limiter := NewLimiter(Config{Enabled: true, PerMinute: 1})
	defer limiter.Stop()

	limiter.Allow("client-a", "/resumes")
	limiter.cleanup(time.Now().Add(time.Minute))

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Empty(t, limiter.buckets)
	assert.Empty(t, limiter.lastAccess)
}

func TestStop_Idempotent(t *testing.T) {
	limiter := NewLimiter(Config{Enabled: true, PerMinute: 1})

	limiter.Stop()
	limiter.Stop()
}
