package config

import "time"

// Login throttle configuration
type LoginThrottleConfig struct {
	AttemptsThreshold1 int           // Number of failed logins before first cooldown
	CooldownDuration1  time.Duration // First cooldown duration
	AttemptsThreshold2 int           // Number of failed logins before second cooldown
	CooldownDuration2  time.Duration // Second cooldown duration
}

var DefaultLoginThrottleConfig = LoginThrottleConfig{
	AttemptsThreshold1: 3,
	CooldownDuration1:  3 * time.Minute,
	AttemptsThreshold2: 5,
	CooldownDuration2:  5 * time.Minute,
}
