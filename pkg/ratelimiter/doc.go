// Package ratelimiter implements an in-memory token bucket limiter and an
// HTTP middleware on top of it.
//
// Each key owns a bucket holding at most Capacity tokens. RefillRate tokens
// are added every RefillInterval; a request consumes one token and is denied
// once the bucket is empty.
//
//	l, err := ratelimiter.New(ratelimiter.Config{
//		Capacity:       30,
//		RefillRate:     10,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	go l.Run(ctx)
//	r.Use(ratelimiter.Middleware(l, ratelimiter.RemoteIP))
//
// Buckets live in a bounded LRU; a bucket left alone for the idle TTL is
// dropped, which is equivalent to refilling it.
package ratelimiter
