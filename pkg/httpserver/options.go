package httpserver

import (
	"log/slog"
	"time"
)

// Option configures a Server.
type Option func(*options)

// Hook runs around the server lifecycle. addr is the bound listener address.
type Hook func(log *slog.Logger, addr string)

type options struct {
	addr              string
	readHeaderTimeout time.Duration
	readTimeout       time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	log               *slog.Logger
	onStart           []Hook
	onStop            []Hook
}

func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty addr")
	}
	return func(o *options) { o.addr = addr }
}

func WithReadHeaderTimeout(d time.Duration) Option {
	return durationOption("read header timeout", d, func(o *options) { o.readHeaderTimeout = d })
}

func WithReadTimeout(d time.Duration) Option {
	return durationOption("read timeout", d, func(o *options) { o.readTimeout = d })
}

func WithWriteTimeout(d time.Duration) Option {
	return durationOption("write timeout", d, func(o *options) { o.writeTimeout = d })
}

func WithIdleTimeout(d time.Duration) Option {
	return durationOption("idle timeout", d, func(o *options) { o.idleTimeout = d })
}

// WithShutdownTimeout bounds how long Shutdown waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return durationOption("shutdown timeout", d, func(o *options) { o.shutdownTimeout = d })
}

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithStartHook registers h to run once the listener is bound.
func WithStartHook(h Hook) Option {
	if h == nil {
		panic("httpserver: nil start hook")
	}
	return func(o *options) { o.onStart = append(o.onStart, h) }
}

// WithStopHook registers h to run after shutdown completes.
func WithStopHook(h Hook) Option {
	if h == nil {
		panic("httpserver: nil stop hook")
	}
	return func(o *options) { o.onStop = append(o.onStop, h) }
}

func durationOption(name string, d time.Duration, fn func(*options)) Option {
	if d <= 0 {
		panic("httpserver: " + name + " must be positive")
	}
	return fn
}
