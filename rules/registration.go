package rules

import (
	"fmt"
	"time"

	"api/models"
)

// RegistrationOpen reports whether a user can still register for the hackathon
// on the given day. The window closes strictly RegistrationLeadDays before the
// start date: with the default lead of 2 days, exactly two days before start is
// already closed. A hackathon with no start date is never open.
func RegistrationOpen(h *models.Hackathon, today time.Time, policy Policy) bool {
	if h == nil || h.StartDate.IsZero() {
		return false
	}
	deadline := h.StartDate.AddDate(0, 0, -policy.RegistrationLeadDays)
	return today.Before(deadline)
}

// ChooseHackathon associates a competitor or judge with the hackathon they
// will take part in. Organizers never hold a chosen hackathon, and the
// association is only legal while the registration window is open. A user who
// is on a team stays bound to that team's event: switching to a different
// hackathon is rejected until they leave the team. Re-choosing the current
// hackathon is a no-op.
func ChooseHackathon(user *models.User, h *models.Hackathon, today time.Time, policy Policy) error {
	if user == nil {
		return models.Invalid("user must not be nil")
	}
	if h == nil {
		return models.Invalid("hackathon must not be nil")
	}
	if user.IsOrganizer() {
		return models.Invalid("an organizer cannot register for a hackathon")
	}
	if user.TeamID != nil && !user.SameHackathon(h.ID) {
		return models.Invalid("cannot switch hackathons while a member of a team")
	}
	if !RegistrationOpen(h, today, policy) {
		return models.NewError(models.KindRegistrationClosed,
			fmt.Sprintf("registrations for hackathon %q are closed", h.Name))
	}
	user.HackathonID = &h.ID
	user.Hackathon = h
	return nil
}
