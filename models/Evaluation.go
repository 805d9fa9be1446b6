package models

import (
	"fmt"
	"time"
)

// Evaluation represents a judge's score and feedback for a team
type Evaluation struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Score     int       `gorm:"type:integer;not null" json:"score"`
	Feedback  string    `gorm:"type:text" json:"feedback"`
	JudgeID   string    `gorm:"type:uuid;not null;column:judge_id" json:"judge_id"`
	Judge     *User     `gorm:"foreignKey:JudgeID" json:"judge,omitempty"`
	TeamID    string    `gorm:"type:uuid;not null;column:team_id" json:"team_id"`
	Team      *Team     `gorm:"foreignKey:TeamID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the creation-time invariants
func (e *Evaluation) Validate() error {
	if !IsValidScore(e.Score) {
		return Invalid(fmt.Sprintf("score must be between 0 and 10, got %d", e.Score))
	}
	if e.JudgeID == "" {
		return Invalid("evaluation requires a scoring judge")
	}
	if e.TeamID == "" {
		return Invalid("evaluation requires a scored team")
	}
	return nil
}
