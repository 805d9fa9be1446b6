package rules

import (
	"api/models"
)

// The document workflow progresses per team as
// no problem -> problem assigned -> document created -> updated,
// after which the team's documents become commentable and the team evaluable.
// Each constructor below validates one transition of that chain.

// CreateDocument attaches a new deliverable to a team. A team without an
// assigned problem cannot submit documents yet.
func CreateDocument(doc *models.Document, team *models.Team) error {
	if team == nil {
		return models.Invalid("team must not be nil")
	}
	if doc == nil {
		return models.Invalid("document must not be nil")
	}
	if team.Problem == nil {
		return models.NewError(models.KindProblemRequired,
			"team \""+team.Name+"\" has no problem assigned and cannot submit documents")
	}
	doc.TeamID = team.ID
	if err := doc.Validate(); err != nil {
		return err
	}
	team.AddDocument(doc)
	return nil
}

// CreateUpdate publishes an update on a document. The document must belong to
// the team, and the author must be one of the team's competitors. The update
// lands in both the document and the team-wide collections; re-inserting the
// same update is a no-op.
func CreateUpdate(update *models.Update, doc *models.Document, team *models.Team, author *models.User) error {
	if team == nil || doc == nil {
		return models.Invalid("team and document must not be nil")
	}
	if update == nil {
		return models.Invalid("update must not be nil")
	}
	if doc.TeamID != team.ID {
		return models.Invalid("document does not belong to this team")
	}
	if author != nil && !team.HasMember(author.ID) {
		return models.Invalid("updates can only be published by a member of the team")
	}
	update.TeamID = team.ID
	update.DocumentID = doc.ID
	if author != nil {
		update.AuthorID = author.ID
	}
	if err := update.Validate(); err != nil {
		return err
	}
	doc.AddUpdate(update)
	team.AddUpdate(update)
	return nil
}

// CreateComment records a judge's comment on a document. Commenting requires
// at least one published update, and the judge must belong to the same
// hackathon as the document's team.
func CreateComment(comment *models.Comment, doc *models.Document, team *models.Team, judge *models.User) error {
	if doc == nil || team == nil {
		return models.Invalid("document and team must not be nil")
	}
	if comment == nil {
		return models.Invalid("comment must not be nil")
	}
	if judge == nil || !judge.IsJudge() {
		return models.Invalid("comments can only be written by judges")
	}
	if !doc.HasUpdates() {
		return models.NewError(models.KindUpdateRequired,
			"document has no updates yet and cannot be commented")
	}
	if !judge.SameHackathon(team.HackathonID) {
		return models.NewError(models.KindCrossEventComment,
			"judge and document's team belong to different hackathons")
	}
	comment.DocumentID = doc.ID
	comment.JudgeID = judge.ID
	if err := comment.Validate(); err != nil {
		return err
	}
	return doc.AddComment(comment)
}

// CreateEvaluation records a judge's score for a team. Scoring requires the
// team to have at least one update across any of its documents, and the judge
// must belong to the team's hackathon. Whether a judge may score the same
// team more than once is a policy choice.
func CreateEvaluation(eval *models.Evaluation, team *models.Team, judge *models.User, policy Policy) error {
	if team == nil {
		return models.Invalid("team must not be nil")
	}
	if eval == nil {
		return models.Invalid("evaluation must not be nil")
	}
	if judge == nil || !judge.IsJudge() {
		return models.Invalid("evaluations can only be recorded by judges")
	}
	if !team.HasUpdates() {
		return models.NewError(models.KindUpdateRequired,
			"team \""+team.Name+"\" has no updates yet and cannot be evaluated")
	}
	if !judge.SameHackathon(team.HackathonID) {
		return models.NewError(models.KindCrossEventEvaluation,
			"judge and team belong to different hackathons")
	}
	if !policy.AllowRepeatEvaluations && team.EvaluatedBy(judge.ID) {
		return models.Invalid("judge already evaluated team \"" + team.Name + "\"")
	}
	eval.TeamID = team.ID
	eval.JudgeID = judge.ID
	if err := eval.Validate(); err != nil {
		return err
	}
	team.AddEvaluation(eval)
	return nil
}
