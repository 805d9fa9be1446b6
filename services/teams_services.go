package services

import (
	"errors"
	"time"

	"api/metrics"
	"api/models"
	"api/rules"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Teams manages team membership under concurrent joins
type Teams struct {
	DB *gorm.DB
}

func NewTeams(db *gorm.DB) *Teams {
	return &Teams{DB: db}
}

// Create validates and persists a new team inside a hackathon
func (s *Teams) Create(team *models.Team, hackathonID string) error {
	var hackathon models.Hackathon
	if err := s.DB.First(&hackathon, "id = ?", hackathonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewError(models.KindNotFound, "hackathon not found")
		}
		return err
	}
	team.HackathonID = hackathonID
	if err := team.Validate(); err != nil {
		return err
	}
	start := time.Now()
	if err := s.DB.Create(team).Error; err != nil {
		return err
	}
	metrics.RecordDBOperation("create", "teams", start)
	return nil
}

// List returns all teams of a hackathon with their competitors
func (s *Teams) List(hackathonID string) ([]models.Team, error) {
	var teams []models.Team
	err := s.DB.
		Preload("Competitors").
		Preload("Problem").
		Where("hackathon_id = ?", hackathonID).
		Order("created_at ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// ListAvailable returns the hackathon's teams that still have room
func (s *Teams) ListAvailable(hackathonID string) ([]models.Team, error) {
	teams, err := s.List(hackathonID)
	if err != nil {
		return nil, err
	}
	available := make([]models.Team, 0, len(teams))
	for _, team := range teams {
		if len(team.Competitors) < models.MaxTeamSize {
			available = append(available, team)
		}
	}
	return available, nil
}

// Get returns one team with its associations preloaded
func (s *Teams) Get(id string) (*models.Team, error) {
	var team models.Team
	err := s.DB.
		Preload("Competitors").
		Preload("Problem").
		Preload("Documents").
		Preload("Updates").
		Preload("Evaluations").
		First(&team, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewError(models.KindNotFound, "team not found")
		}
		return nil, err
	}
	return &team, nil
}

// Join adds the competitor to the team. The team row is locked for the
// duration of the transaction so two concurrent joins cannot both pass the
// capacity check.
func (s *Teams) Join(teamID string, competitor *models.User) (*models.Team, error) {
	var team models.Team
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&team, "id = ?", teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewError(models.KindNotFound, "team not found")
			}
			return err
		}
		if err := tx.Model(&team).Association("Competitors").Find(&team.Competitors); err != nil {
			return err
		}

		if err := rules.Join(&team, competitor); err != nil {
			return err
		}

		return tx.Model(competitor).Update("team_id", team.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Leave removes the competitor from the team. Leaving a team the user is not
// in is a no-op.
func (s *Teams) Leave(teamID string, competitor *models.User) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&team, "id = ?", teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewError(models.KindNotFound, "team not found")
			}
			return err
		}
		if err := tx.Model(&team).Association("Competitors").Find(&team.Competitors); err != nil {
			return err
		}

		if !rules.Leave(&team, competitor) {
			return nil
		}

		return tx.Model(competitor).Update("team_id", nil).Error
	})
}

// Delete removes a team and detaches its members
func (s *Teams) Delete(teamID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.First(&team, "id = ?", teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewError(models.KindNotFound, "team not found")
			}
			return err
		}
		if err := tx.Model(&models.User{}).Where("team_id = ?", teamID).
			Update("team_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&team).Error
	})
}
