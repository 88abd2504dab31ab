package analytics

import (
	"sync"
	"time"
)

// rateLimiter is a per-key fixed-window rate limiter. Cheaper than a
// sliding window and accurate enough for abuse protection.
type rateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	max     int
	window  time.Duration
}

type bucket struct {
	count int
	start time.Time
}

func newRateLimiter(max int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		buckets: make(map[string]*bucket),
		max:     max,
		window:  window,
	}
	go rl.cleanup()
	return rl
}

// allow reports whether key is under the limit, counting this request.
func (rl *rateLimiter) allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok || now.Sub(b.start) >= rl.window {
		rl.buckets[key] = &bucket{count: 1, start: now}
		return true
	}
	if b.count >= rl.max {
		return false
	}
	b.count++
	return true
}

func (rl *rateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	for range ticker.C {
		rl.mu.Lock()
		for key, b := range rl.buckets {
			if time.Since(b.start) >= rl.window {
				delete(rl.buckets, key)
			}
		}
		rl.mu.Unlock()
	}
}
