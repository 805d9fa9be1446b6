package rules

import (
	"testing"
	"time"

	"api/models"
)

func evaluatedTeam(id, name string, scores ...int) *models.Team {
	team := testTeam(id, name, "h-1")
	for i, s := range scores {
		team.Evaluations = append(team.Evaluations, &models.Evaluation{
			ID:      id + "-e-" + string(rune('a'+i)),
			Score:   s,
			JudgeID: "j-" + string(rune('a'+i)),
			TeamID:  id,
		})
	}
	return team
}

func TestLeaderboardPendingBeforeEnd(t *testing.T) {
	end := date(2026, time.June, 20)
	h := testHackathon("h-1", end.AddDate(0, 0, -2), end)

	board := ComputeLeaderboard(h, []*models.Team{evaluatedTeam("t-1", "Alpha", 9)}, end.AddDate(0, 0, -1))
	if board.Status != LeaderboardPending {
		t.Errorf("expected pending before the end date, got %q", board.Status)
	}
	if len(board.Entries) != 0 {
		t.Errorf("a pending leaderboard must carry no entries, got %d", len(board.Entries))
	}
}

func TestLeaderboardAvailableFromEndDate(t *testing.T) {
	end := date(2026, time.June, 20)
	h := testHackathon("h-1", end.AddDate(0, 0, -2), end)

	board := ComputeLeaderboard(h, []*models.Team{evaluatedTeam("t-1", "Alpha", 9)}, end)
	if board.Status != LeaderboardFinal {
		t.Errorf("expected final on the end date itself, got %q", board.Status)
	}
}

func TestLeaderboardEmpty(t *testing.T) {
	end := date(2026, time.June, 20)
	h := testHackathon("h-1", end.AddDate(0, 0, -2), end)

	teams := []*models.Team{testTeam("t-1", "Alpha", "h-1"), testTeam("t-2", "Beta", "h-1")}
	board := ComputeLeaderboard(h, teams, end.AddDate(0, 0, 1))
	if board.Status != LeaderboardEmpty {
		t.Errorf("expected empty with no evaluated teams, got %q", board.Status)
	}
}

func TestLeaderboardRanking(t *testing.T) {
	end := date(2026, time.June, 20)
	h := testHackathon("h-1", end.AddDate(0, 0, -2), end)

	alpha := evaluatedTeam("t-1", "Alpha", 9, 7) // mean 8.00
	beta := evaluatedTeam("t-2", "Beta", 6)      // mean 6.00
	bare := testTeam("t-3", "Gamma", "h-1")      // no evaluations, skipped

	board := ComputeLeaderboard(h, []*models.Team{beta, alpha, bare}, end.AddDate(0, 0, 1))
	if board.Status != LeaderboardFinal {
		t.Fatalf("expected final, got %q", board.Status)
	}
	if len(board.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(board.Entries))
	}

	first, second := board.Entries[0], board.Entries[1]
	if first.TeamName != "Alpha" || first.AverageScore != 8.00 {
		t.Errorf("expected Alpha at 8.00 first, got %s at %.2f", first.TeamName, first.AverageScore)
	}
	if second.TeamName != "Beta" || second.AverageScore != 6.00 {
		t.Errorf("expected Beta at 6.00 second, got %s at %.2f", second.TeamName, second.AverageScore)
	}
	if first.Position != 1 || second.Position != 2 {
		t.Errorf("positions must be 1-based and ordered, got %d and %d", first.Position, second.Position)
	}
}

func TestLeaderboardStableTies(t *testing.T) {
	end := date(2026, time.June, 20)
	h := testHackathon("h-1", end.AddDate(0, 0, -2), end)

	// Both teams have mean 7.0; input order decides the tie.
	first := evaluatedTeam("t-1", "Alpha", 8, 6)
	second := evaluatedTeam("t-2", "Beta", 7, 7)

	board := ComputeLeaderboard(h, []*models.Team{first, second}, end.AddDate(0, 0, 1))
	if len(board.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(board.Entries))
	}
	if board.Entries[0].TeamName != "Alpha" || board.Entries[1].TeamName != "Beta" {
		t.Errorf("equal means must keep input order, got [%s, %s]",
			board.Entries[0].TeamName, board.Entries[1].TeamName)
	}
	if board.Entries[0].AverageScore != 7.0 || board.Entries[1].AverageScore != 7.0 {
		t.Errorf("expected both means at 7.0, got %.2f and %.2f",
			board.Entries[0].AverageScore, board.Entries[1].AverageScore)
	}
}

func TestLeaderboardRounding(t *testing.T) {
	end := date(2026, time.June, 20)
	h := testHackathon("h-1", end.AddDate(0, 0, -2), end)

	// 8 + 7 + 7 over three judges: 7.333... rounds to 7.33
	team := evaluatedTeam("t-1", "Alpha", 8, 7, 7)
	board := ComputeLeaderboard(h, []*models.Team{team}, end.AddDate(0, 0, 1))
	if got := board.Entries[0].AverageScore; got != 7.33 {
		t.Errorf("expected mean rounded to 7.33, got %v", got)
	}
}
