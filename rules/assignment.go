package rules

import (
	"api/models"
)

// ProblemSpec carries the fields of a problem created during assignment
type ProblemSpec struct {
	Title       string
	Description string
}

// AssignProblem creates a problem authored by the judge and attaches it to the
// team. A team holds at most one problem for its whole lifetime: re-assignment
// is rejected and the original problem is left untouched. The judge and the
// team must belong to the same hackathon.
func AssignProblem(spec ProblemSpec, team *models.Team, judge *models.User) (*models.Problem, error) {
	if team == nil {
		return nil, models.Invalid("team must not be nil")
	}
	if judge == nil {
		return nil, models.Invalid("judge must not be nil")
	}
	if !judge.IsJudge() {
		return nil, models.Invalid("only judges can assign problems")
	}
	if team.Problem != nil {
		return nil, models.NewError(models.KindTeamAlreadyHasProblem,
			"team \""+team.Name+"\" already has a problem assigned")
	}
	if !judge.SameHackathon(team.HackathonID) {
		return nil, models.NewError(models.KindCrossEventAssignment,
			"judge and team belong to different hackathons")
	}

	problem := &models.Problem{
		Title:       spec.Title,
		Description: spec.Description,
		JudgeID:     judge.ID,
		Judge:       judge,
	}
	if err := problem.Validate(); err != nil {
		return nil, err
	}
	if err := team.AttachProblem(problem); err != nil {
		return nil, err
	}
	return problem, nil
}
