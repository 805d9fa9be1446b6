package models

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// IsValidEmail checks that an address has the expected user@domain.tld shape
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidScore checks that a score lies in the accepted 0-10 range
func IsValidScore(score int) bool {
	return score >= 0 && score <= 10
}

func requireNotEmpty(value, field string) *Error {
	if strings.TrimSpace(value) == "" {
		return Invalid(field + " must not be empty")
	}
	return nil
}
