package analytics

import (
	"testing"
	"time"
)

func TestRateLimiterBlocksAfterMax(t *testing.T) {
	rl := newRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("1.2.3.4") {
		t.Error("request over the limit should be blocked")
	}
}

func TestRateLimiterWindowResets(t *testing.T) {
	rl := newRateLimiter(1, 50*time.Millisecond)

	if !rl.allow("1.2.3.4") {
		t.Fatal("first request should be allowed")
	}
	if rl.allow("1.2.3.4") {
		t.Error("second request in the same window should be blocked")
	}

	time.Sleep(70 * time.Millisecond)

	if !rl.allow("1.2.3.4") {
		t.Error("request after the window expired should be allowed")
	}
}

func TestRateLimiterIsPerKey(t *testing.T) {
	rl := newRateLimiter(1, time.Minute)

	if !rl.allow("1.2.3.4") {
		t.Fatal("first key should be allowed")
	}
	if rl.allow("1.2.3.4") {
		t.Error("first key should now be blocked")
	}
	if !rl.allow("5.6.7.8") {
		t.Error("second key should not share the first key's bucket")
	}
}
