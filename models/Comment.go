package models

import "time"

// Comment represents a judge's remark on a team document
type Comment struct {
	ID         string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	DocumentID string    `gorm:"type:uuid;not null;column:document_id" json:"document_id"`
	Document   *Document `gorm:"foreignKey:DocumentID" json:"-"`
	JudgeID    string    `gorm:"type:uuid;not null;column:judge_id" json:"judge_id"`
	Judge      *User     `gorm:"foreignKey:JudgeID" json:"judge,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate checks the creation-time invariants
func (c *Comment) Validate() error {
	if err := requireNotEmpty(c.Text, "comment text"); err != nil {
		return err
	}
	if c.DocumentID == "" {
		return Invalid("comment requires a document")
	}
	if c.JudgeID == "" {
		return Invalid("comment requires an authoring judge")
	}
	return nil
}
