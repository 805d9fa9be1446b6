package rules

import (
	"math"
	"sort"
	"time"

	"api/models"
)

// Leaderboard status values
const (
	LeaderboardPending = "pending"
	LeaderboardEmpty   = "empty"
	LeaderboardFinal   = "final"
)

// LeaderboardEntry is one ranked team with its mean evaluation score
type LeaderboardEntry struct {
	Position     int     `json:"position"`
	TeamID       string  `json:"team_id"`
	TeamName     string  `json:"team_name"`
	AverageScore float64 `json:"average_score"`
	Evaluations  int     `json:"evaluations"`
}

// Leaderboard is the post-event ranking of a hackathon's teams
type Leaderboard struct {
	HackathonID string             `json:"hackathon_id"`
	Status      string             `json:"status"`
	Entries     []LeaderboardEntry `json:"entries"`
}

// ComputeLeaderboard ranks the hackathon's teams by the arithmetic mean of
// their evaluation scores, descending. The ranking is only available once the
// end date is reached; before that the result is pending. Teams without any
// evaluation are skipped, and if none is evaluated the result is empty.
// The sort is stable, so equal means keep the input order: callers pass teams
// in creation order, which makes the tiebreak explicit rather than incidental.
func ComputeLeaderboard(h *models.Hackathon, teams []*models.Team, today time.Time) Leaderboard {
	board := Leaderboard{Status: LeaderboardPending}
	if h != nil {
		board.HackathonID = h.ID
	}
	if h == nil || h.EndDate.IsZero() || today.Before(h.EndDate) {
		return board
	}

	for _, team := range teams {
		if team == nil || len(team.Evaluations) == 0 {
			continue
		}
		sum := 0
		for _, eval := range team.Evaluations {
			sum += eval.Score
		}
		mean := float64(sum) / float64(len(team.Evaluations))
		board.Entries = append(board.Entries, LeaderboardEntry{
			TeamID:       team.ID,
			TeamName:     team.Name,
			AverageScore: roundScore(mean),
			Evaluations:  len(team.Evaluations),
		})
	}

	if len(board.Entries) == 0 {
		board.Status = LeaderboardEmpty
		return board
	}

	sort.SliceStable(board.Entries, func(i, j int) bool {
		return board.Entries[i].AverageScore > board.Entries[j].AverageScore
	})
	for i := range board.Entries {
		board.Entries[i].Position = i + 1
	}
	board.Status = LeaderboardFinal
	return board
}

// roundScore keeps two decimal places, matching the displayed precision
func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
