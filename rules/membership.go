package rules

import (
	"fmt"

	"api/models"
)

// Join adds a competitor to a team. Beyond the team's own capacity check it
// enforces the caller-side preconditions: only competitors join teams, a
// competitor belongs to at most one team globally, and the team must be part
// of the hackathon the competitor registered for. Joining a team the
// competitor is already a member of is a successful no-op.
func Join(team *models.Team, competitor *models.User) error {
	if team == nil {
		return models.Invalid("team must not be nil")
	}
	if competitor == nil {
		return models.Invalid("competitor must not be nil")
	}
	if !competitor.IsCompetitor() {
		return models.Invalid("only competitors can join a team")
	}
	if team.HasMember(competitor.ID) {
		return nil
	}
	if competitor.TeamID != nil {
		return models.Invalid(fmt.Sprintf(
			"user %s %s already belongs to another team", competitor.Firstname, competitor.Lastname))
	}
	if !competitor.SameHackathon(team.HackathonID) {
		return models.NewError(models.KindCrossEventMembership,
			"competitor is not registered for this team's hackathon")
	}
	return team.AddCompetitor(competitor)
}

// Leave removes a competitor from a team, clearing the back-reference. It
// reports whether a removal happened; leaving a team the user is not part of
// is not an error.
func Leave(team *models.Team, competitor *models.User) bool {
	if team == nil || competitor == nil {
		return false
	}
	return team.RemoveCompetitor(competitor)
}
