package ratelimiter_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qanda/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var testConfig = ratelimiter.Config{
	Capacity:       3,
	RefillRate:     1,
	RefillInterval: time.Second,
}

func newLimiter(t *testing.T, clock *fakeClock, opts ...ratelimiter.Option) *ratelimiter.Limiter {
	t.Helper()
	l, err := ratelimiter.New(testConfig, append([]ratelimiter.Option{ratelimiter.WithClock(clock.Now)}, opts...)...)
	require.NoError(t, err)
	return l
}

func TestNew(t *testing.T) {
	t.Parallel()

	for name, cfg := range map[string]ratelimiter.Config{
		"zero capacity": {Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		"zero rate":     {Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		"zero interval": {Capacity: 1, RefillRate: 1},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ratelimiter.New(cfg)
			assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}
}

func TestLimiter(t *testing.T) {
	t.Parallel()

	t.Run("burst then deny", func(t *testing.T) {
		t.Parallel()
		l := newLimiter(t, newFakeClock())

		for want := 2; want >= 0; want-- {
			res, err := l.Allow("ip")
			require.NoError(t, err)
			assert.True(t, res.Allowed())
			assert.Equal(t, want, res.Remaining)
			assert.Equal(t, 3, res.Limit)
		}

		res, err := l.Allow("ip")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
		assert.Equal(t, time.Second, res.RetryAfter)
	})

	t.Run("denied requests do not drain the bucket", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		l := newLimiter(t, clock)

		_, err := l.AllowN("ip", 3)
		require.NoError(t, err)
		for range 5 {
			res, _ := l.Allow("ip")
			assert.False(t, res.Allowed())
		}

		clock.Advance(time.Second)
		res, _ := l.Allow("ip")
		assert.True(t, res.Allowed())
		assert.Equal(t, 0, res.Remaining)
	})

	t.Run("refill is capped at capacity", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		l := newLimiter(t, clock)

		_, _ = l.AllowN("ip", 3)
		clock.Advance(time.Hour)
		assert.Equal(t, 3, l.Status("ip").Remaining)
	})

	t.Run("partial intervals carry over", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		l := newLimiter(t, clock)

		_, _ = l.AllowN("ip", 3)
		clock.Advance(1500 * time.Millisecond)
		assert.Equal(t, 1, l.Status("ip").Remaining)
		clock.Advance(500 * time.Millisecond)
		assert.Equal(t, 2, l.Status("ip").Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()
		l := newLimiter(t, newFakeClock())

		_, _ = l.AllowN("a", 3)
		res, _ := l.Allow("b")
		assert.True(t, res.Allowed())
		res, _ = l.Allow("a")
		assert.False(t, res.Allowed())
	})

	t.Run("reset restores the bucket", func(t *testing.T) {
		t.Parallel()
		l := newLimiter(t, newFakeClock())

		_, _ = l.AllowN("ip", 3)
		l.Reset("ip")
		assert.Equal(t, 3, l.Status("ip").Remaining)
	})

	t.Run("idle buckets are forgotten", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		l := newLimiter(t, clock, ratelimiter.WithIdleTTL(time.Minute))

		_, _ = l.AllowN("ip", 3)
		clock.Advance(2 * time.Minute)
		assert.Equal(t, 3, l.Status("ip").Remaining)
	})

	t.Run("invalid token count", func(t *testing.T) {
		t.Parallel()
		l := newLimiter(t, newFakeClock())

		_, err := l.AllowN("ip", 0)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	})

	t.Run("concurrent consumers never exceed capacity", func(t *testing.T) {
		t.Parallel()
		l := newLimiter(t, newFakeClock())

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			allowed int
		)
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if res, _ := l.Allow("ip"); res.Allowed() {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 3, allowed)
	})
}
