package models

import "time"

// Hackathon represents a competitive event with a fixed registration window and
// date range, owned by exactly one organizer
type Hackathon struct {
	ID          string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	Location    string    `gorm:"type:varchar(100);not null" json:"location"`
	StartDate   time.Time `gorm:"type:date;not null;column:start_date" json:"start_date"`
	EndDate     time.Time `gorm:"type:date;not null;column:end_date" json:"end_date"`
	OrganizerID string    `gorm:"type:uuid;not null;column:organizer_id" json:"organizer_id"`
	Organizer   *User     `gorm:"foreignKey:OrganizerID" json:"organizer,omitempty"`
	Teams       []*Team   `gorm:"foreignKey:HackathonID" json:"teams,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks the invariants that must hold at creation time
func (h *Hackathon) Validate() error {
	if err := requireNotEmpty(h.Name, "name"); err != nil {
		return err
	}
	if err := requireNotEmpty(h.Location, "location"); err != nil {
		return err
	}
	if h.StartDate.IsZero() || h.EndDate.IsZero() {
		return Invalid("start and end dates are required")
	}
	if h.EndDate.Before(h.StartDate) {
		return Invalid("end date cannot precede start date")
	}
	if h.OrganizerID == "" {
		return Invalid("hackathon requires an organizer")
	}
	return nil
}

// Finished reports whether the event date range has elapsed. The leaderboard
// becomes available on the end date itself.
func (h *Hackathon) Finished(today time.Time) bool {
	return !today.Before(h.EndDate)
}

// AddTeam attaches a team to the hackathon, keeping both sides of the
// association consistent. Adding the same team twice is a no-op.
func (h *Hackathon) AddTeam(team *Team) {
	if team == nil {
		return
	}
	for _, t := range h.Teams {
		if t.ID == team.ID {
			return
		}
	}
	h.Teams = append(h.Teams, team)
	team.HackathonID = h.ID
	team.Hackathon = h
}
