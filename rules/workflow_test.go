package rules

import (
	"testing"

	"api/models"
)

// buildAssignedTeam returns a team with a problem already assigned and the
// judge who assigned it.
func buildAssignedTeam(t *testing.T) (*models.Team, *models.User) {
	t.Helper()
	team := testTeam("t-1", "Alpha", "h-1")
	judge := testJudge("j-1", "h-1")
	if _, err := AssignProblem(ProblemSpec{Title: "T", Description: "D"}, team, judge); err != nil {
		t.Fatalf("assign problem: %v", err)
	}
	return team, judge
}

func TestCreateDocumentRequiresProblem(t *testing.T) {
	team := testTeam("t-1", "Alpha", "h-1")
	doc := &models.Document{ID: "d-1", Title: "Report"}

	err := CreateDocument(doc, team)
	if models.KindOf(err) != models.KindProblemRequired {
		t.Fatalf("expected ProblemRequired, got %v", err)
	}

	judge := testJudge("j-1", "h-1")
	if _, err := AssignProblem(ProblemSpec{Title: "T", Description: "D"}, team, judge); err != nil {
		t.Fatalf("assign problem: %v", err)
	}

	if err := CreateDocument(doc, team); err != nil {
		t.Fatalf("the same call must succeed once a problem is assigned: %v", err)
	}
	if len(team.Documents) != 1 {
		t.Errorf("expected 1 document on the team, got %d", len(team.Documents))
	}
}

func TestCreateDocumentValidation(t *testing.T) {
	team, _ := buildAssignedTeam(t)

	if err := CreateDocument(&models.Document{ID: "d-1"}, team); models.KindOf(err) != models.KindValidation {
		t.Errorf("empty title must fail validation, got %v", err)
	}
	if err := CreateDocument(&models.Document{ID: "d-2", Title: "R", SizeMB: -1}, team); models.KindOf(err) != models.KindValidation {
		t.Errorf("negative size must fail validation, got %v", err)
	}
}

func TestCreateUpdate(t *testing.T) {
	team, _ := buildAssignedTeam(t)
	author := testCompetitor("c-1", "h-1")
	if err := Join(team, author); err != nil {
		t.Fatalf("join: %v", err)
	}

	doc := &models.Document{ID: "d-1", Title: "Report"}
	if err := CreateDocument(doc, team); err != nil {
		t.Fatalf("create document: %v", err)
	}

	update := &models.Update{ID: "u-1", Content: "first draft"}
	if err := CreateUpdate(update, doc, team, author); err != nil {
		t.Fatalf("create update: %v", err)
	}
	if len(doc.Updates) != 1 || len(team.Updates) != 1 {
		t.Errorf("update must land in both collections, got doc=%d team=%d",
			len(doc.Updates), len(team.Updates))
	}

	// Re-inserting the same update is duplicate-safe on both sides.
	if err := CreateUpdate(update, doc, team, author); err != nil {
		t.Fatalf("re-inserting the same update: %v", err)
	}
	if len(doc.Updates) != 1 || len(team.Updates) != 1 {
		t.Errorf("duplicate insert changed the collections: doc=%d team=%d",
			len(doc.Updates), len(team.Updates))
	}
}

func TestCreateUpdateWrongTeam(t *testing.T) {
	team, _ := buildAssignedTeam(t)
	doc := &models.Document{ID: "d-1", Title: "Report"}
	if err := CreateDocument(doc, team); err != nil {
		t.Fatalf("create document: %v", err)
	}

	other := testTeam("t-2", "Beta", "h-1")
	update := &models.Update{ID: "u-1", Content: "draft"}
	if err := CreateUpdate(update, doc, other, nil); models.KindOf(err) != models.KindValidation {
		t.Errorf("update against a foreign document must be rejected, got %v", err)
	}
}

func TestCreateUpdateNonMemberAuthor(t *testing.T) {
	team, _ := buildAssignedTeam(t)
	doc := &models.Document{ID: "d-1", Title: "Report"}
	if err := CreateDocument(doc, team); err != nil {
		t.Fatalf("create document: %v", err)
	}

	outsider := testCompetitor("c-9", "h-1")
	update := &models.Update{ID: "u-1", Content: "draft"}
	if err := CreateUpdate(update, doc, team, outsider); models.KindOf(err) != models.KindValidation {
		t.Errorf("a non-member author must be rejected, got %v", err)
	}
}

func TestCreateCommentRequiresUpdate(t *testing.T) {
	team, judge := buildAssignedTeam(t)
	doc := &models.Document{ID: "d-1", Title: "Report"}
	if err := CreateDocument(doc, team); err != nil {
		t.Fatalf("create document: %v", err)
	}

	comment := &models.Comment{ID: "cm-1", Text: "looks thin"}
	err := CreateComment(comment, doc, team, judge)
	if models.KindOf(err) != models.KindUpdateRequired {
		t.Fatalf("expected UpdateRequired on a document with no updates, got %v", err)
	}

	if err := CreateUpdate(&models.Update{ID: "u-1", Content: "draft"}, doc, team, nil); err != nil {
		t.Fatalf("create update: %v", err)
	}
	if err := CreateComment(comment, doc, team, judge); err != nil {
		t.Fatalf("the same comment must succeed after an update exists: %v", err)
	}
	if len(doc.Comments) != 1 {
		t.Errorf("expected 1 comment, got %d", len(doc.Comments))
	}
}

func TestCreateCommentCrossEvent(t *testing.T) {
	team, _ := buildAssignedTeam(t)
	doc := &models.Document{ID: "d-1", Title: "Report"}
	if err := CreateDocument(doc, team); err != nil {
		t.Fatalf("create document: %v", err)
	}
	if err := CreateUpdate(&models.Update{ID: "u-1", Content: "draft"}, doc, team, nil); err != nil {
		t.Fatalf("create update: %v", err)
	}

	foreign := testJudge("j-9", "h-2")
	err := CreateComment(&models.Comment{ID: "cm-1", Text: "hi"}, doc, team, foreign)
	if models.KindOf(err) != models.KindCrossEventComment {
		t.Errorf("expected CrossEventComment, got %v", err)
	}
}

func TestCreateEvaluation(t *testing.T) {
	team, judge := buildAssignedTeam(t)
	doc := &models.Document{ID: "d-1", Title: "Report"}
	if err := CreateDocument(doc, team); err != nil {
		t.Fatalf("create document: %v", err)
	}

	eval := &models.Evaluation{ID: "e-1", Score: 8}
	err := CreateEvaluation(eval, team, judge, DefaultPolicy)
	if models.KindOf(err) != models.KindUpdateRequired {
		t.Fatalf("expected UpdateRequired before any update, got %v", err)
	}

	if err := CreateUpdate(&models.Update{ID: "u-1", Content: "draft"}, doc, team, nil); err != nil {
		t.Fatalf("create update: %v", err)
	}
	if err := CreateEvaluation(eval, team, judge, DefaultPolicy); err != nil {
		t.Fatalf("evaluation after an update: %v", err)
	}
	if len(team.Evaluations) != 1 {
		t.Errorf("expected 1 evaluation, got %d", len(team.Evaluations))
	}
}

func TestCreateEvaluationCrossEvent(t *testing.T) {
	team, _ := buildAssignedTeam(t)
	doc := &models.Document{ID: "d-1", Title: "Report"}
	if err := CreateDocument(doc, team); err != nil {
		t.Fatalf("create document: %v", err)
	}
	if err := CreateUpdate(&models.Update{ID: "u-1", Content: "draft"}, doc, team, nil); err != nil {
		t.Fatalf("create update: %v", err)
	}

	foreign := testJudge("j-9", "h-2")
	err := CreateEvaluation(&models.Evaluation{ID: "e-1", Score: 5}, team, foreign, DefaultPolicy)
	if models.KindOf(err) != models.KindCrossEventEvaluation {
		t.Errorf("expected CrossEventEvaluation, got %v", err)
	}
}

func TestCreateEvaluationRepeatPolicy(t *testing.T) {
	team, judge := buildAssignedTeam(t)
	doc := &models.Document{ID: "d-1", Title: "Report"}
	if err := CreateDocument(doc, team); err != nil {
		t.Fatalf("create document: %v", err)
	}
	if err := CreateUpdate(&models.Update{ID: "u-1", Content: "draft"}, doc, team, nil); err != nil {
		t.Fatalf("create update: %v", err)
	}

	if err := CreateEvaluation(&models.Evaluation{ID: "e-1", Score: 8}, team, judge, DefaultPolicy); err != nil {
		t.Fatalf("first evaluation: %v", err)
	}

	err := CreateEvaluation(&models.Evaluation{ID: "e-2", Score: 6}, team, judge, DefaultPolicy)
	if models.KindOf(err) != models.KindValidation {
		t.Errorf("repeat evaluation must be rejected under the default policy, got %v", err)
	}

	relaxed := Policy{RegistrationLeadDays: 2, AllowRepeatEvaluations: true}
	if err := CreateEvaluation(&models.Evaluation{ID: "e-2", Score: 6}, team, judge, relaxed); err != nil {
		t.Fatalf("repeat evaluation under the relaxed policy: %v", err)
	}
	if len(team.Evaluations) != 2 {
		t.Errorf("expected 2 evaluations under the relaxed policy, got %d", len(team.Evaluations))
	}
}

func TestCreateEvaluationScoreRange(t *testing.T) {
	team, judge := buildAssignedTeam(t)
	doc := &models.Document{ID: "d-1", Title: "Report"}
	if err := CreateDocument(doc, team); err != nil {
		t.Fatalf("create document: %v", err)
	}
	if err := CreateUpdate(&models.Update{ID: "u-1", Content: "draft"}, doc, team, nil); err != nil {
		t.Fatalf("create update: %v", err)
	}

	for _, score := range []int{-1, 11} {
		err := CreateEvaluation(&models.Evaluation{ID: "e-bad", Score: score}, team, judge, DefaultPolicy)
		if models.KindOf(err) != models.KindValidation {
			t.Errorf("score %d must fail validation, got %v", score, err)
		}
	}
}
