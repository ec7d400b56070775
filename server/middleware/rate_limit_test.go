package middleware

import (
	"testing"

	"golang.org/x/time/rate"
)

func TestRateLimiterAllowsBurstThenDenies(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(10.0/60.0), 10)

	for i := 0; i < 10; i++ {
		if !rl.Allow("user:1") {
			t.Fatalf("request %d should be allowed within the burst", i+1)
		}
	}
	if rl.Allow("user:1") {
		t.Error("request 11 should be denied")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(10.0/60.0), 10)

	for i := 0; i < 10; i++ {
		rl.Allow("user:1")
	}
	if rl.Allow("user:1") {
		t.Error("user:1 should be exhausted")
	}
	if !rl.Allow("user:2") {
		t.Error("user:2 should still be allowed")
	}
}
