package rules

import (
	"testing"

	"api/models"
)

func TestAssignProblem(t *testing.T) {
	team := testTeam("t-1", "Alpha", "h-1")
	judge := testJudge("j-1", "h-1")

	problem, err := AssignProblem(ProblemSpec{
		Title:       "Routing at scale",
		Description: "Design a delivery routing engine",
	}, team, judge)
	if err != nil {
		t.Fatalf("AssignProblem: %v", err)
	}
	if team.Problem == nil || team.Problem.ID != problem.ID {
		t.Error("problem was not attached to the team")
	}
	if problem.TeamID == nil || *problem.TeamID != team.ID {
		t.Error("problem back-reference to the team was not set")
	}
	if problem.JudgeID != judge.ID {
		t.Error("problem must record its authoring judge")
	}
}

func TestAssignProblemExclusive(t *testing.T) {
	team := testTeam("t-1", "Alpha", "h-1")
	judge := testJudge("j-1", "h-1")

	first, err := AssignProblem(ProblemSpec{Title: "First", Description: "one"}, team, judge)
	if err != nil {
		t.Fatalf("first assignment: %v", err)
	}

	_, err = AssignProblem(ProblemSpec{Title: "Second", Description: "two"}, team, judge)
	if models.KindOf(err) != models.KindTeamAlreadyHasProblem {
		t.Errorf("expected TeamAlreadyHasProblem, got %v", err)
	}
	if team.Problem.Title != first.Title {
		t.Error("the original problem must never be overwritten")
	}
}

func TestAssignProblemCrossEvent(t *testing.T) {
	team := testTeam("t-1", "Alpha", "h-1")
	judge := testJudge("j-1", "h-2")

	_, err := AssignProblem(ProblemSpec{Title: "T", Description: "D"}, team, judge)
	if models.KindOf(err) != models.KindCrossEventAssignment {
		t.Errorf("expected CrossEventAssignment, got %v", err)
	}
	if team.Problem != nil {
		t.Error("a rejected assignment must leave the team without a problem")
	}
}

func TestAssignProblemValidation(t *testing.T) {
	team := testTeam("t-1", "Alpha", "h-1")
	judge := testJudge("j-1", "h-1")

	if _, err := AssignProblem(ProblemSpec{Title: "", Description: "D"}, team, judge); models.KindOf(err) != models.KindValidation {
		t.Errorf("empty title must fail validation, got %v", err)
	}
	if team.Problem != nil {
		t.Error("a rejected assignment must leave the team without a problem")
	}

	comp := testCompetitor("c-1", "h-1")
	if _, err := AssignProblem(ProblemSpec{Title: "T", Description: "D"}, team, comp); models.KindOf(err) != models.KindValidation {
		t.Errorf("a competitor must not assign problems, got %v", err)
	}
}
