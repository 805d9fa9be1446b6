package models

import "time"

// Document represents a deliverable submitted by a team. It holds the ordered
// updates and judge comments attached to it.
type Document struct {
	ID          string     `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Title       string     `gorm:"type:varchar(100);not null" json:"title"`
	Description string     `gorm:"type:varchar(255)" json:"description"`
	Format      string     `gorm:"type:varchar(20)" json:"format"`
	SizeMB      float64    `gorm:"type:numeric(10,2);column:size_mb" json:"size_mb"`
	Type        string     `gorm:"type:varchar(50)" json:"type"`
	TeamID      string     `gorm:"type:uuid;not null;column:team_id" json:"team_id"`
	Team        *Team      `gorm:"foreignKey:TeamID" json:"-"`
	Updates     []*Update  `gorm:"foreignKey:DocumentID" json:"updates,omitempty"`
	Comments    []*Comment `gorm:"foreignKey:DocumentID" json:"comments,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Validate checks the creation-time invariants
func (d *Document) Validate() error {
	if err := requireNotEmpty(d.Title, "document title"); err != nil {
		return err
	}
	if d.SizeMB < 0 {
		return Invalid("document size cannot be negative")
	}
	if d.TeamID == "" {
		return Invalid("document requires an owning team")
	}
	return nil
}

// HasUpdates reports whether at least one update was published on the document
func (d *Document) HasUpdates() bool {
	return len(d.Updates) > 0
}

// AddUpdate appends an update to the document, duplicate-safe by id
func (d *Document) AddUpdate(update *Update) {
	if update == nil {
		return
	}
	for _, u := range d.Updates {
		if u.ID == update.ID {
			return
		}
	}
	d.Updates = append(d.Updates, update)
	update.DocumentID = d.ID
}

// AddComment appends a judge comment. A document with no updates yet cannot
// be commented.
func (d *Document) AddComment(comment *Comment) error {
	if comment == nil {
		return Invalid("comment must not be nil")
	}
	if !d.HasUpdates() {
		return NewError(KindUpdateRequired,
			"document has no updates yet and cannot be commented")
	}
	for _, c := range d.Comments {
		if c.ID == comment.ID {
			return nil
		}
	}
	d.Comments = append(d.Comments, comment)
	comment.DocumentID = d.ID
	return nil
}
