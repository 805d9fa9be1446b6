package services

import (
	"errors"
	"time"

	"api/models"
	"api/rules"

	"gorm.io/gorm"
)

// Hackathons manages the lifecycle of events
type Hackathons struct {
	DB     *gorm.DB
	Policy rules.Policy
}

func NewHackathons(db *gorm.DB, policy rules.Policy) *Hackathons {
	return &Hackathons{DB: db, Policy: policy}
}

// Create validates and persists a new hackathon owned by the organizer
func (s *Hackathons) Create(hackathon *models.Hackathon, organizer *models.User) error {
	if !organizer.IsOrganizer() {
		return models.Invalid("only organizers can create hackathons")
	}
	hackathon.OrganizerID = organizer.ID
	if err := hackathon.Validate(); err != nil {
		return err
	}
	return s.DB.Create(hackathon).Error
}

// List returns all hackathons, newest first
func (s *Hackathons) List() ([]models.Hackathon, error) {
	var hackathons []models.Hackathon
	if err := s.DB.Order("start_date DESC").Find(&hackathons).Error; err != nil {
		return nil, err
	}
	return hackathons, nil
}

// ListOpen returns the hackathons whose registration window is still open
func (s *Hackathons) ListOpen(today time.Time) ([]models.Hackathon, error) {
	hackathons, err := s.List()
	if err != nil {
		return nil, err
	}
	open := make([]models.Hackathon, 0, len(hackathons))
	for i := range hackathons {
		if rules.RegistrationOpen(&hackathons[i], today, s.Policy) {
			open = append(open, hackathons[i])
		}
	}
	return open, nil
}

// Get returns one hackathon with its organizer and teams preloaded
func (s *Hackathons) Get(id string) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	err := s.DB.
		Preload("Organizer").
		Preload("Teams", func(db *gorm.DB) *gorm.DB { return db.Order("teams.created_at ASC") }).
		First(&hackathon, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewError(models.KindNotFound, "hackathon not found")
		}
		return nil, err
	}
	return &hackathon, nil
}

// Delete removes a hackathon. Only its owning organizer may do so. Registered
// users are detached first, then the teams and everything hanging off them go
// before the event row so the foreign keys never dangle.
func (s *Hackathons) Delete(id string, organizer *models.User) error {
	hackathon, err := s.Get(id)
	if err != nil {
		return err
	}
	if hackathon.OrganizerID != organizer.ID {
		return models.Invalid("only the owning organizer can delete a hackathon")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		teamIDs := tx.Model(&models.Team{}).Select("id").Where("hackathon_id = ?", id)
		documentIDs := tx.Model(&models.Document{}).Select("id").Where("team_id IN (?)", teamIDs)

		if err := tx.Model(&models.User{}).Where("hackathon_id = ?", id).
			Updates(map[string]interface{}{"team_id": nil, "hackathon_id": nil}).Error; err != nil {
			return err
		}
		if err := tx.Where("document_id IN (?)", documentIDs).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id IN (?)", teamIDs).Delete(&models.Update{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id IN (?)", teamIDs).Delete(&models.Evaluation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id IN (?)", teamIDs).Delete(&models.Document{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id IN (?)", teamIDs).Delete(&models.Problem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hackathon_id = ?", id).Delete(&models.Team{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Hackathon{}, "id = ?", id).Error
	})
}

// TeamsInCreationOrder returns the hackathon's teams with their evaluations,
// ordered by creation time. The leaderboard tiebreak depends on this order.
func (s *Hackathons) TeamsInCreationOrder(hackathonID string) ([]*models.Team, error) {
	var teams []*models.Team
	err := s.DB.
		Preload("Evaluations").
		Where("hackathon_id = ?", hackathonID).
		Order("created_at ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}
