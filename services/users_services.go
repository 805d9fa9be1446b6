package services

import (
	"errors"
	"time"

	"api/metrics"
	"api/models"
	"api/rules"
	"api/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Users manages account creation and lookup
type Users struct {
	DB     *gorm.DB
	Policy rules.Policy
}

func NewUsers(db *gorm.DB, policy rules.Policy) *Users {
	return &Users{DB: db, Policy: policy}
}

// Register validates and persists a new account. Competitors and judges may
// pick a hackathon at registration time; the window is enforced here.
func (s *Users) Register(user *models.User, plainPassword string, hackathonID *string, today time.Time) error {
	user.NormalizeEmail()
	user.RegisteredAt = today

	if plainPassword == "" {
		return models.Invalid("password is required")
	}
	if err := user.Validate(today); err != nil {
		return err
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return models.Invalid("email already in use")
	}

	if hackathonID != nil {
		hackathon, err := s.findHackathon(*hackathonID)
		if err != nil {
			return err
		}
		if err := rules.ChooseHackathon(user, hackathon, today, s.Policy); err != nil {
			return err
		}
	}

	hashed, err := utils.HashPassword(plainPassword)
	if err != nil {
		return err
	}
	user.Password = hashed

	start := time.Now()
	if err := s.DB.Omit(clause.Associations).Create(user).Error; err != nil {
		return err
	}
	metrics.RecordDBOperation("create", "users", start)
	return nil
}

// FindByEmail returns the account with the given address
func (s *Users) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewError(models.KindNotFound, "user not found")
		}
		return nil, err
	}
	return &user, nil
}

// Find returns the account with the given ID
func (s *Users) Find(id string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewError(models.KindNotFound, "user not found")
		}
		return nil, err
	}
	return &user, nil
}

// ChooseHackathon registers an existing competitor or judge for a hackathon,
// enforcing the registration window.
func (s *Users) ChooseHackathon(user *models.User, hackathonID string, today time.Time) error {
	hackathon, err := s.findHackathon(hackathonID)
	if err != nil {
		return err
	}
	if err := rules.ChooseHackathon(user, hackathon, today, s.Policy); err != nil {
		return err
	}
	return s.DB.Model(user).Update("hackathon_id", hackathonID).Error
}

func (s *Users) findHackathon(id string) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	if err := s.DB.First(&hackathon, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewError(models.KindNotFound, "hackathon not found")
		}
		return nil, err
	}
	return &hackathon, nil
}
