package models

import (
	"strings"
	"time"
)

// User roles. A user keeps a single role for its whole lifetime.
const (
	RoleCompetitor = "competitor"
	RoleJudge      = "judge"
	RoleOrganizer  = "organizer"
)

// User represents an account in the system: a competitor, a judge or an organizer.
// Competitors and judges may reference the hackathon they registered for; organizers
// create hackathons and never register for one.
type User struct {
	ID           string     `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Firstname    string     `gorm:"type:varchar(100);not null" json:"firstname"`
	Lastname     string     `gorm:"type:varchar(100);not null" json:"lastname"`
	Email        string     `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password     string     `gorm:"type:varchar(255);not null" json:"-"`
	Role         string     `gorm:"type:varchar(20);not null" json:"role"`
	RegisteredAt time.Time  `gorm:"type:date;not null" json:"registered_at"`
	HackathonID  *string    `gorm:"type:uuid;column:hackathon_id" json:"hackathon_id,omitempty"`
	Hackathon    *Hackathon `gorm:"foreignKey:HackathonID" json:"-"`
	TeamID       *string    `gorm:"type:uuid;column:team_id" json:"team_id,omitempty"`
	Team         *Team      `gorm:"foreignKey:TeamID" json:"-"`
}

// Validate checks the identity fields and the role/hackathon exclusivity
func (u *User) Validate(today time.Time) error {
	if err := requireNotEmpty(u.Firstname, "firstname"); err != nil {
		return err
	}
	if err := requireNotEmpty(u.Lastname, "lastname"); err != nil {
		return err
	}
	if !IsValidEmail(u.Email) {
		return Invalid("invalid email address: " + u.Email)
	}
	switch u.Role {
	case RoleCompetitor, RoleJudge, RoleOrganizer:
	default:
		return Invalid("unknown role: " + u.Role)
	}
	if u.Role == RoleOrganizer && u.HackathonID != nil {
		return Invalid("an organizer cannot register for a hackathon")
	}
	if !u.RegisteredAt.IsZero() && u.RegisteredAt.After(today) {
		return Invalid("registration date cannot be in the future")
	}
	return nil
}

// NormalizeEmail lowercases and trims the address before storing it
func (u *User) NormalizeEmail() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}

func (u *User) IsCompetitor() bool { return u.Role == RoleCompetitor }
func (u *User) IsJudge() bool      { return u.Role == RoleJudge }
func (u *User) IsOrganizer() bool  { return u.Role == RoleOrganizer }

// SameHackathon reports whether the user registered for the given hackathon
func (u *User) SameHackathon(hackathonID string) bool {
	return u.HackathonID != nil && *u.HackathonID == hackathonID
}
