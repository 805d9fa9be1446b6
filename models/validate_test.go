package models

import (
	"testing"
	"time"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"name+tag@example.co",
	}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@domain",
		"user @example.com",
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidScore(t *testing.T) {
	for score := 0; score <= 10; score++ {
		if !IsValidScore(score) {
			t.Errorf("IsValidScore(%d) = false, want true", score)
		}
	}
	for _, score := range []int{-1, 11, 100} {
		if IsValidScore(score) {
			t.Errorf("IsValidScore(%d) = true, want false", score)
		}
	}
}

func TestUserValidate(t *testing.T) {
	today := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	base := func() User {
		return User{
			Firstname:    "Ada",
			Lastname:     "Lovelace",
			Email:        "ada@example.com",
			Role:         RoleCompetitor,
			RegisteredAt: today,
		}
	}

	if err := func() error { u := base(); return u.Validate(today) }(); err != nil {
		t.Fatalf("valid user rejected: %v", err)
	}

	hackathonID := "h-1"
	tests := []struct {
		name   string
		mutate func(*User)
	}{
		{"empty firstname", func(u *User) { u.Firstname = "" }},
		{"bad email", func(u *User) { u.Email = "nope" }},
		{"unknown role", func(u *User) { u.Role = "mentor" }},
		{"organizer with hackathon", func(u *User) {
			u.Role = RoleOrganizer
			u.HackathonID = &hackathonID
		}},
		{"future registration", func(u *User) { u.RegisteredAt = today.AddDate(0, 0, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := base()
			tt.mutate(&u)
			if err := u.Validate(today); KindOf(err) != KindValidation {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestHackathonValidate(t *testing.T) {
	start := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)

	h := Hackathon{
		Name:        "Spring Jam",
		Location:    "Milan",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		OrganizerID: "o-1",
	}
	if err := h.Validate(); err != nil {
		t.Fatalf("valid hackathon rejected: %v", err)
	}

	inverted := h
	inverted.StartDate, inverted.EndDate = inverted.EndDate, inverted.StartDate
	if err := inverted.Validate(); KindOf(err) != KindValidation {
		t.Errorf("end before start must be rejected, got %v", err)
	}

	if h.Finished(start.AddDate(0, 0, 1)) {
		t.Error("a running hackathon must not report finished")
	}
	if !h.Finished(h.EndDate) {
		t.Error("the end date itself must report finished")
	}
}
