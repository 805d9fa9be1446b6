package rules

import (
	"testing"
	"time"

	"api/models"
)

func TestRegistrationOpen(t *testing.T) {
	start := date(2026, time.June, 10)
	h := testHackathon("h-1", start, start.AddDate(0, 0, 2))

	tests := []struct {
		name  string
		today time.Time
		want  bool
	}{
		{"three days before start", start.AddDate(0, 0, -3), true},
		{"exactly two days before start", start.AddDate(0, 0, -2), false},
		{"one day before start", start.AddDate(0, 0, -1), false},
		{"start day", start, false},
		{"well before start", start.AddDate(0, -1, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RegistrationOpen(h, tt.today, DefaultPolicy); got != tt.want {
				t.Errorf("RegistrationOpen(%s) = %v, want %v", tt.today.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestRegistrationOpenNoStartDate(t *testing.T) {
	h := &models.Hackathon{ID: "h-1", Name: "No dates"}
	if RegistrationOpen(h, date(2026, time.January, 1), DefaultPolicy) {
		t.Error("a hackathon with no start date must never be open")
	}
	if RegistrationOpen(nil, date(2026, time.January, 1), DefaultPolicy) {
		t.Error("a nil hackathon must never be open")
	}
}

func TestChooseHackathon(t *testing.T) {
	start := date(2026, time.June, 10)
	h := testHackathon("h-1", start, start.AddDate(0, 0, 2))

	comp := testCompetitor("c-1", "")
	if err := ChooseHackathon(comp, h, start.AddDate(0, 0, -10), DefaultPolicy); err != nil {
		t.Fatalf("ChooseHackathon inside the window: %v", err)
	}
	if comp.HackathonID == nil || *comp.HackathonID != h.ID {
		t.Error("competitor's chosen hackathon was not set")
	}

	late := testCompetitor("c-2", "")
	err := ChooseHackathon(late, h, start.AddDate(0, 0, -2), DefaultPolicy)
	if models.KindOf(err) != models.KindRegistrationClosed {
		t.Errorf("expected RegistrationClosed two days before start, got %v", err)
	}
	if late.HackathonID != nil {
		t.Error("a rejected registration must not set the hackathon reference")
	}

	org := &models.User{ID: "o-1", Firstname: "Org", Lastname: "One",
		Email: "org@example.com", Role: models.RoleOrganizer}
	if err := ChooseHackathon(org, h, start.AddDate(0, 0, -10), DefaultPolicy); models.KindOf(err) != models.KindValidation {
		t.Errorf("organizers must never register for a hackathon, got %v", err)
	}
}

func TestChooseHackathonLockedWhileOnTeam(t *testing.T) {
	start := date(2026, time.June, 10)
	h1 := testHackathon("h-1", start, start.AddDate(0, 0, 2))
	h2 := testHackathon("h-2", start, start.AddDate(0, 0, 2))
	today := start.AddDate(0, 0, -10)

	comp := testCompetitor("c-1", "h-1")
	team := testTeam("t-1", "Alpha", "h-1")
	if err := Join(team, comp); err != nil {
		t.Fatalf("setup join: %v", err)
	}

	err := ChooseHackathon(comp, h2, today, DefaultPolicy)
	if models.KindOf(err) != models.KindValidation {
		t.Errorf("switching events while on a team must be rejected, got %v", err)
	}
	if comp.HackathonID == nil || *comp.HackathonID != h1.ID {
		t.Error("a rejected switch must leave the registration untouched")
	}

	if err := ChooseHackathon(comp, h1, today, DefaultPolicy); err != nil {
		t.Errorf("re-choosing the current event must stay a no-op, got %v", err)
	}

	if !Leave(team, comp) {
		t.Fatal("setup leave: no removal reported")
	}
	if err := ChooseHackathon(comp, h2, today, DefaultPolicy); err != nil {
		t.Errorf("switching after leaving the team must be allowed, got %v", err)
	}
	if comp.HackathonID == nil || *comp.HackathonID != h2.ID {
		t.Error("competitor's new hackathon was not set")
	}
}
