package services

import (
	"errors"

	"api/models"
	"api/rules"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Documents manages team deliverables and their update/comment workflow
type Documents struct {
	DB *gorm.DB
}

func NewDocuments(db *gorm.DB) *Documents {
	return &Documents{DB: db}
}

// Create stores a new deliverable for the team. Teams without an assigned
// problem cannot submit documents yet.
func (s *Documents) Create(doc *models.Document, teamID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		team, err := lockTeamWithProblem(tx, teamID)
		if err != nil {
			return err
		}

		if err := rules.CreateDocument(doc, team); err != nil {
			return err
		}

		// The rule engine wires pointer back-references; persist the row alone
		return tx.Omit(clause.Associations).Create(doc).Error
	})
}

// ListByTeam returns the team's documents with updates and comments
func (s *Documents) ListByTeam(teamID string) ([]models.Document, error) {
	var documents []models.Document
	err := s.DB.
		Preload("Updates").
		Preload("Comments").
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

// Get returns one document with its updates and comments
func (s *Documents) Get(id string) (*models.Document, error) {
	var doc models.Document
	err := s.DB.
		Preload("Updates").
		Preload("Comments").
		First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewError(models.KindNotFound, "document not found")
		}
		return nil, err
	}
	return &doc, nil
}

// AddUpdate publishes an update on the document, authored by a team member
func (s *Documents) AddUpdate(documentID string, author *models.User, content string) (*models.Update, error) {
	update := &models.Update{ID: uuid.NewString(), Content: content}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		doc, err := s.lockDocument(tx, documentID)
		if err != nil {
			return err
		}
		team, err := lockTeamWithProblem(tx, doc.TeamID)
		if err != nil {
			return err
		}
		if err := tx.Model(team).Association("Competitors").Find(&team.Competitors); err != nil {
			return err
		}

		if author != nil {
			update.AuthorID = author.ID
		}
		if err := rules.CreateUpdate(update, doc, team, author); err != nil {
			return err
		}

		return tx.Create(update).Error
	})
	if err != nil {
		return nil, err
	}
	return update, nil
}

// AddComment records a judge's comment on the document. A document with no
// updates yet cannot be commented.
func (s *Documents) AddComment(documentID string, judge *models.User, text string) (*models.Comment, error) {
	comment := &models.Comment{ID: uuid.NewString(), Text: text}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		doc, err := s.lockDocument(tx, documentID)
		if err != nil {
			return err
		}
		team, err := lockTeamWithProblem(tx, doc.TeamID)
		if err != nil {
			return err
		}

		if judge != nil {
			comment.JudgeID = judge.ID
		}
		if err := rules.CreateComment(comment, doc, team, judge); err != nil {
			return err
		}

		return tx.Create(comment).Error
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns the judge comments recorded on the document
func (s *Documents) ListComments(documentID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.DB.
		Preload("Judge").
		Where("document_id = ?", documentID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Documents) lockDocument(tx *gorm.DB, documentID string) (*models.Document, error) {
	var doc models.Document
	if err := tx.First(&doc, "id = ?", documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewError(models.KindNotFound, "document not found")
		}
		return nil, err
	}
	if err := tx.Where("document_id = ?", documentID).Find(&doc.Updates).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}
