package services

import (
	"errors"

	"api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockTeamWithProblem loads the team under a row lock together with its
// problem. Association preloads run after the lock is taken, so the guarded
// invariants are checked against current data.
func lockTeamWithProblem(tx *gorm.DB, teamID string) (*models.Team, error) {
	var team models.Team
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewError(models.KindNotFound, "team not found")
		}
		return nil, err
	}

	var problem models.Problem
	err := tx.First(&problem, "team_id = ?", teamID).Error
	switch {
	case err == nil:
		team.Problem = &problem
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no problem assigned yet
	default:
		return nil, err
	}
	return &team, nil
}

// lockTeamForScoring loads the team under a row lock with the collections
// the evaluation workflow checks: updates and prior evaluations.
func lockTeamForScoring(tx *gorm.DB, teamID string) (*models.Team, error) {
	team, err := lockTeamWithProblem(tx, teamID)
	if err != nil {
		return nil, err
	}
	if err := tx.Where("team_id = ?", teamID).Find(&team.Updates).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("team_id = ?", teamID).Find(&team.Evaluations).Error; err != nil {
		return nil, err
	}
	return team, nil
}
