package models

import "time"

// Update represents an incremental note published by a team member on one of
// the team's documents. Updates gate comments and evaluations.
type Update struct {
	ID         string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	TeamID     string    `gorm:"type:uuid;not null;column:team_id" json:"team_id"`
	Team       *Team     `gorm:"foreignKey:TeamID" json:"-"`
	DocumentID string    `gorm:"type:uuid;not null;column:document_id" json:"document_id"`
	Document   *Document `gorm:"foreignKey:DocumentID" json:"-"`
	AuthorID   string    `gorm:"type:uuid;not null;column:author_id" json:"author_id"`
	Author     *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate checks the creation-time invariants
func (u *Update) Validate() error {
	if err := requireNotEmpty(u.Content, "update content"); err != nil {
		return err
	}
	if u.TeamID == "" || u.DocumentID == "" {
		return Invalid("update requires an owning team and document")
	}
	return nil
}
