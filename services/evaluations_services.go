package services

import (
	"context"
	"log"

	"api/models"
	"api/realtime"
	"api/rules"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Evaluations manages judge scoring of teams
type Evaluations struct {
	DB     *gorm.DB
	Policy rules.Policy
	Hub    *realtime.Hub
	Boards *Leaderboards
}

func NewEvaluations(db *gorm.DB, policy rules.Policy, hub *realtime.Hub, boards *Leaderboards) *Evaluations {
	return &Evaluations{DB: db, Policy: policy, Hub: hub, Boards: boards}
}

// Create records the judge's score for the team. The team row is locked so
// the repeat-evaluation check cannot race with a concurrent submission.
// Connected leaderboard watchers are notified and the cached board for the
// hackathon is invalidated.
func (s *Evaluations) Create(ctx context.Context, teamID string, judge *models.User, score int, feedback string) (*models.Evaluation, error) {
	eval := &models.Evaluation{ID: uuid.NewString(), Score: score, Feedback: feedback}
	var team *models.Team

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		team, err = lockTeamForScoring(tx, teamID)
		if err != nil {
			return err
		}

		if judge != nil {
			eval.JudgeID = judge.ID
		}
		if err := rules.CreateEvaluation(eval, team, judge, s.Policy); err != nil {
			return err
		}

		return tx.Create(eval).Error
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, team, eval)
	return eval, nil
}

// ListByTeam returns all evaluations recorded for the team
func (s *Evaluations) ListByTeam(teamID string) ([]models.Evaluation, error) {
	var evaluations []models.Evaluation
	err := s.DB.
		Preload("Judge").
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Find(&evaluations).Error
	if err != nil {
		return nil, err
	}
	return evaluations, nil
}

func (s *Evaluations) notify(ctx context.Context, team *models.Team, eval *models.Evaluation) {
	if s.Boards != nil {
		if err := s.Boards.Invalidate(ctx, team.HackathonID); err != nil {
			log.Printf("Failed to invalidate leaderboard cache for hackathon %s: %v", team.HackathonID, err)
		}
	}

	if s.Hub == nil {
		return
	}
	sum := 0
	for _, e := range team.Evaluations {
		sum += e.Score
	}
	mean := 0.0
	if len(team.Evaluations) > 0 {
		mean = float64(sum) / float64(len(team.Evaluations))
	}
	s.Hub.BroadcastScoreUpdate(realtime.ScoreUpdate{
		HackathonID: team.HackathonID,
		TeamID:      team.ID,
		TeamName:    team.Name,
		Score:       eval.Score,
		MeanScore:   mean,
		JudgeID:     eval.JudgeID,
		UpdateType:  "evaluation",
	})
}
