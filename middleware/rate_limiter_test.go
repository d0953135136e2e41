package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_AllowExhaustsBurst(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(10, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "request %d within burst should pass", i+1)
	}
	assert.False(t, rl.Allow("1.2.3.4"))

	// Other clients have their own bucket
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestRateLimiter_RefillRestoresTokens(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(2, 5)
	rl.interval = 10 * time.Millisecond

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow("1.2.3.4"))
	}
	assert.False(t, rl.Allow("1.2.3.4"))

	time.Sleep(15 * time.Millisecond)
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestRateLimiter_StartCleanupSweepsPeriodically(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(10, 3)
	rl.Allow("1.2.3.4")

	rl.mu.Lock()
	rl.visitors["1.2.3.4"].lastUpdated = time.Now().Add(-time.Hour)
	rl.mu.Unlock()

	rl.StartCleanup(5*time.Millisecond, 30*time.Minute)

	assert.Eventually(t, func() bool {
		rl.mu.Lock()
		defer rl.mu.Unlock()
		_, exists := rl.visitors["1.2.3.4"]
		return !exists
	}, time.Second, 5*time.Millisecond)
}

func TestRateLimiter_CleanupDropsIdleVisitors(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(10, 3)
	rl.Allow("1.2.3.4")

	rl.mu.Lock()
	rl.visitors["1.2.3.4"].lastUpdated = time.Now().Add(-time.Hour)
	rl.mu.Unlock()

	rl.Cleanup(30 * time.Minute)

	rl.mu.Lock()
	_, exists := rl.visitors["1.2.3.4"]
	rl.mu.Unlock()
	assert.False(t, exists)
}
