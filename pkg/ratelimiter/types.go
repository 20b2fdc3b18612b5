package ratelimiter

import (
	"fmt"
	"time"
)

// Config defines the token bucket shape.
type Config struct {
	Capacity       int           // burst size
	RefillRate     int           // tokens added per RefillInterval
	RefillInterval time.Duration // refill period
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result describes the bucket after a check.
type Result struct {
	Limit     int
	Remaining int // negative when the request was denied
	ResetAt   time.Time
	// RetryAfter is zero for allowed requests.
	RetryAfter time.Duration
}

func (r Result) Allowed() bool { return r.Remaining >= 0 }
