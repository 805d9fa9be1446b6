package middleware

import (
	"fmt"
	"testing"
	"time"

	"api/config"
)

func testThrottleConfig() config.LoginThrottleConfig {
	return config.LoginThrottleConfig{
		AttemptsThreshold1: 3,
		CooldownDuration1:  time.Minute,
		AttemptsThreshold2: 5,
		CooldownDuration2:  5 * time.Minute,
	}
}

func TestRateLimiterBurst(t *testing.T) {
	rl := NewRateLimiter(10, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d within the burst must be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("request beyond the burst must be rejected")
	}
}

func TestRateLimiterPerVisitor(t *testing.T) {
	rl := NewRateLimiter(10, 1)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first visitor's request must be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("first visitor exhausted its budget")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("a different visitor keeps its own budget")
	}
}

func TestLoginThrottle(t *testing.T) {
	throttle := NewLoginThrottle(testThrottleConfig())

	email := "user@example.com"
	if blocked, _ := throttle.Blocked(email); blocked {
		t.Fatal("a fresh account must not be blocked")
	}

	throttle.RecordFailure(email)
	throttle.RecordFailure(email)
	if blocked, _ := throttle.Blocked(email); blocked {
		t.Error("two failures are below the first threshold")
	}

	throttle.RecordFailure(email)
	if blocked, _ := throttle.Blocked(email); !blocked {
		t.Error("three failures must trigger the first cooldown")
	}

	throttle.Reset(email)
	if blocked, _ := throttle.Blocked(email); blocked {
		t.Error("a reset must clear the cooldown")
	}
}

func TestLoginThrottleIsolatedPerAccount(t *testing.T) {
	throttle := NewLoginThrottle(testThrottleConfig())

	for i := 0; i < 5; i++ {
		throttle.RecordFailure("locked@example.com")
	}
	if blocked, _ := throttle.Blocked("locked@example.com"); !blocked {
		t.Error("the failing account must be blocked")
	}
	if blocked, _ := throttle.Blocked(fmt.Sprintf("other-%d@example.com", 1)); blocked {
		t.Error("other accounts must be unaffected")
	}
}
