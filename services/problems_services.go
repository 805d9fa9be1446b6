package services

import (
	"errors"

	"api/models"
	"api/rules"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Problems manages problem statements and their exclusive assignment
type Problems struct {
	DB *gorm.DB
}

func NewProblems(db *gorm.DB) *Problems {
	return &Problems{DB: db}
}

// Assign creates a problem authored by the judge and attaches it to the team.
// The team row is locked so a concurrent assignment cannot slip past the
// one-problem-per-team check.
func (s *Problems) Assign(teamID string, judge *models.User, spec rules.ProblemSpec) (*models.Problem, error) {
	var problem *models.Problem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		team, err := lockTeamWithProblem(tx, teamID)
		if err != nil {
			return err
		}

		problem, err = rules.AssignProblem(spec, team, judge)
		if err != nil {
			return err
		}

		// The rule engine wires pointer back-references; persist the row alone
		return tx.Omit(clause.Associations).Create(problem).Error
	})
	if err != nil {
		return nil, err
	}
	return problem, nil
}

// ListByJudge returns all problems authored by the judge
func (s *Problems) ListByJudge(judgeID string) ([]models.Problem, error) {
	var problems []models.Problem
	if err := s.DB.Where("judge_id = ?", judgeID).Order("created_at ASC").Find(&problems).Error; err != nil {
		return nil, err
	}
	return problems, nil
}

// Get returns one problem
func (s *Problems) Get(id string) (*models.Problem, error) {
	var problem models.Problem
	if err := s.DB.Preload("Judge").First(&problem, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewError(models.KindNotFound, "problem not found")
		}
		return nil, err
	}
	return &problem, nil
}
