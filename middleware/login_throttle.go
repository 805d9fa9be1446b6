package middleware

import (
	"sync"
	"time"

	"api/config"
)

type loginAttempt struct {
	failures    int
	lastFailure time.Time
}

// LoginThrottle enforces cooldowns on repeated failed logins per account
type LoginThrottle struct {
	mu       sync.Mutex
	attempts map[string]*loginAttempt
	cfg      config.LoginThrottleConfig
}

func NewLoginThrottle(cfg config.LoginThrottleConfig) *LoginThrottle {
	return &LoginThrottle{
		attempts: make(map[string]*loginAttempt),
		cfg:      cfg,
	}
}

// Blocked reports whether the account is currently in a cooldown window
// and how long until the next attempt is allowed.
func (t *LoginThrottle) Blocked(email string) (bool, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	attempt, exists := t.attempts[email]
	if !exists {
		return false, 0
	}

	var cooldown time.Duration
	switch {
	case attempt.failures >= t.cfg.AttemptsThreshold2:
		cooldown = t.cfg.CooldownDuration2
	case attempt.failures >= t.cfg.AttemptsThreshold1:
		cooldown = t.cfg.CooldownDuration1
	default:
		return false, 0
	}

	remaining := cooldown - time.Since(attempt.lastFailure)
	if remaining <= 0 {
		return false, 0
	}
	return true, remaining
}

// RecordFailure registers a failed login for the account
func (t *LoginThrottle) RecordFailure(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	attempt, exists := t.attempts[email]
	if !exists {
		attempt = &loginAttempt{}
		t.attempts[email] = attempt
	}
	attempt.failures++
	attempt.lastFailure = time.Now()
}

// Reset clears the failure count after a successful login
func (t *LoginThrottle) Reset(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.attempts, email)
}
