package models

import "time"

// Problem represents a challenge statement authored by a judge and assigned
// exclusively to at most one team
type Problem struct {
	ID          string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Description string    `gorm:"type:varchar(1000);not null" json:"description"`
	JudgeID     string    `gorm:"type:uuid;not null;column:judge_id" json:"judge_id"`
	Judge       *User     `gorm:"foreignKey:JudgeID" json:"judge,omitempty"`
	TeamID      *string   `gorm:"type:uuid;unique;column:team_id" json:"team_id,omitempty"`
	Team        *Team     `gorm:"foreignKey:TeamID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks the creation-time invariants
func (p *Problem) Validate() error {
	if err := requireNotEmpty(p.Title, "problem title"); err != nil {
		return err
	}
	if err := requireNotEmpty(p.Description, "problem description"); err != nil {
		return err
	}
	if p.JudgeID == "" {
		return Invalid("problem requires an authoring judge")
	}
	return nil
}
