package ratelimiter

import (
	"math"
	"net"
	"net/http"
	"strconv"
)

// KeyFunc extracts the limiter key from a request. An empty key skips
// limiting.
type KeyFunc func(r *http.Request) string

// RemoteIP keys by the host part of r.RemoteAddr. Put chi's RealIP
// middleware in front when running behind a proxy.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// LimitedHandler writes the response for a denied request.
type LimitedHandler func(w http.ResponseWriter, r *http.Request, res Result)

type middlewareOptions struct {
	onLimited LimitedHandler
}

type MiddlewareOption func(*middlewareOptions)

// WithLimitedHandler replaces the default plain 429 response. Rate limit
// headers are already set when it runs.
func WithLimitedHandler(h LimitedHandler) MiddlewareOption {
	return func(o *middlewareOptions) {
		if h != nil {
			o.onLimited = h
		}
	}
}

func Middleware(l *Limiter, key KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	o := middlewareOptions{
		onLimited: func(w http.ResponseWriter, _ *http.Request, _ Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, _ := l.Allow(k)
			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				secs := int(math.Ceil(res.RetryAfter.Seconds()))
				h.Set("Retry-After", strconv.Itoa(max(secs, 1)))
				o.onLimited(w, r, res)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
