// Package ratelimiter implements token bucket rate limiting for HTTP handlers.
//
// A Bucket takes tokens from a Store; MemoryStore keeps the state in process.
// Each key starts with Capacity tokens and regains RefillRate tokens every
// RefillInterval, never exceeding Capacity.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.Use(ratelimiter.Middleware(limiter, func(r *http.Request) string {
//		return clientip.FromContext(r.Context())
//	}, nil))
package ratelimiter
