package rules

import (
	"fmt"
	"time"

	"api/models"
)

// Shared fixtures for the rule engine tests. IDs are fixed strings so that
// identity-based checks are easy to follow.

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testHackathon(id string, start, end time.Time) *models.Hackathon {
	return &models.Hackathon{
		ID:          id,
		Name:        "Hack " + id,
		Location:    "Naples",
		StartDate:   start,
		EndDate:     end,
		OrganizerID: "org-1",
	}
}

func testTeam(id, name, hackathonID string) *models.Team {
	return &models.Team{ID: id, Name: name, HackathonID: hackathonID}
}

func testCompetitor(id, hackathonID string) *models.User {
	u := &models.User{
		ID:        id,
		Firstname: "Comp",
		Lastname:  id,
		Email:     fmt.Sprintf("%s@example.com", id),
		Role:      models.RoleCompetitor,
	}
	if hackathonID != "" {
		u.HackathonID = &hackathonID
	}
	return u
}

func testJudge(id, hackathonID string) *models.User {
	u := &models.User{
		ID:        id,
		Firstname: "Judge",
		Lastname:  id,
		Email:     fmt.Sprintf("%s@example.com", id),
		Role:      models.RoleJudge,
	}
	if hackathonID != "" {
		u.HackathonID = &hackathonID
	}
	return u
}
