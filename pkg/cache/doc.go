// Package cache provides a generic, thread-safe LRU cache with optional idle
// expiry.
//
// The cache holds at most capacity entries; adding one more evicts the least
// recently used. With WithIdleTTL, an entry not read or written for longer
// than the TTL is treated as absent and dropped by the next Get, Put or
// Purge. RunJanitor purges periodically until its context is done.
//
//	c := cache.NewLRUCache[string, *form.Form](1000,
//		cache.WithIdleTTL[string, *form.Form](30*time.Minute),
//	)
//	go c.RunJanitor(ctx, time.Minute)
//
// All operations are O(1) except Purge, which walks expired entries from the
// cold end of the list and stops at the first live one.
package cache
