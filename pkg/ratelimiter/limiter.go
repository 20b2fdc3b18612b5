package ratelimiter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrymomot/qanda/pkg/cache"
)

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// Limiter is a token bucket limiter keyed by string. Safe for concurrent use.
type Limiter struct {
	cfg     Config
	now     func() time.Time
	maxKeys int
	idleTTL time.Duration

	mu      sync.Mutex
	buckets *cache.LRUCache[string, *bucket]
}

type Option func(*Limiter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// WithMaxKeys bounds the number of tracked keys. Default 10000.
func WithMaxKeys(n int) Option {
	return func(l *Limiter) {
		if n > 0 {
			l.maxKeys = n
		}
	}
}

// WithIdleTTL sets how long an untouched bucket is kept. Default 1h.
func WithIdleTTL(d time.Duration) Option {
	return func(l *Limiter) {
		if d > 0 {
			l.idleTTL = d
		}
	}
}

// New validates cfg and returns a limiter.
func New(cfg Config, opts ...Option) (*Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	l := &Limiter{
		cfg:     cfg,
		now:     time.Now,
		maxKeys: 10000,
		idleTTL: time.Hour,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.buckets = cache.NewLRUCache(l.maxKeys,
		cache.WithIdleTTL[string, *bucket](l.idleTTL),
		cache.WithClock[string, *bucket](l.now),
	)
	return l, nil
}

func (l *Limiter) Allow(key string) (Result, error) {
	return l.AllowN(key, 1)
}

// AllowN consumes n tokens for key.
func (l *Limiter) AllowN(key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	return l.consume(key, n), nil
}

// Status reports the bucket state without consuming.
func (l *Limiter) Status(key string) Result {
	return l.consume(key, 0)
}

// Reset forgets key, restoring a full bucket.
func (l *Limiter) Reset(key string) {
	l.buckets.Remove(key)
}

// Run drops idle buckets until ctx is done.
func (l *Limiter) Run(ctx context.Context) {
	l.buckets.RunJanitor(ctx, max(l.idleTTL/4, time.Second))
}

func (l *Limiter) consume(key string, n int) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets.Get(key)
	if !ok {
		b = &bucket{tokens: l.cfg.Capacity, lastRefill: now}
		l.buckets.Put(key, b)
	}

	// Cap intervals so a long idle period cannot overflow the token count.
	maxIntervals := int64(l.cfg.Capacity/l.cfg.RefillRate + 1)
	intervals := int(min(int64(now.Sub(b.lastRefill)/l.cfg.RefillInterval), maxIntervals))
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*l.cfg.RefillRate, l.cfg.Capacity)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * l.cfg.RefillInterval)
		if b.tokens == l.cfg.Capacity {
			b.lastRefill = now
		}
	}

	res := Result{
		Limit:   l.cfg.Capacity,
		ResetAt: b.lastRefill.Add(l.cfg.RefillInterval),
	}
	if b.tokens-n < 0 && n > 0 {
		res.Remaining = b.tokens - n
		res.RetryAfter = max(res.ResetAt.Sub(now), 0)
		return res
	}
	b.tokens -= n
	res.Remaining = b.tokens
	return res
}
