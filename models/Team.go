package models

import (
	"fmt"
	"time"
)

// MaxTeamSize is the maximum number of competitors a team can hold
const MaxTeamSize = 6

// Team represents a group of competitors working on one assigned problem
// within a hackathon. A team may exist without a problem (pre-assignment state).
type Team struct {
	ID          string        `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Name        string        `gorm:"type:varchar(100);not null" json:"name"`
	HackathonID string        `gorm:"type:uuid;not null;column:hackathon_id" json:"hackathon_id"`
	Hackathon   *Hackathon    `gorm:"foreignKey:HackathonID" json:"-"`
	Problem     *Problem      `gorm:"foreignKey:TeamID" json:"problem,omitempty"`
	Competitors []*User       `gorm:"foreignKey:TeamID" json:"competitors,omitempty"`
	Documents   []*Document   `gorm:"foreignKey:TeamID" json:"documents,omitempty"`
	Updates     []*Update     `gorm:"foreignKey:TeamID" json:"updates,omitempty"`
	Evaluations []*Evaluation `gorm:"foreignKey:TeamID" json:"evaluations,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Validate checks the creation-time invariants
func (t *Team) Validate() error {
	if err := requireNotEmpty(t.Name, "team name"); err != nil {
		return err
	}
	if t.HackathonID == "" {
		return Invalid("team requires a hackathon")
	}
	if len(t.Competitors) > MaxTeamSize {
		return NewError(KindCapacityExceeded,
			fmt.Sprintf("team %q exceeds the maximum of %d competitors", t.Name, MaxTeamSize))
	}
	return nil
}

// HasMember reports whether the user is already one of the team's competitors
func (t *Team) HasMember(userID string) bool {
	for _, c := range t.Competitors {
		if c.ID == userID {
			return true
		}
	}
	return false
}

// AddCompetitor appends a competitor and sets its back-reference. Re-adding a
// member is a successful no-op; a full team rejects with CapacityExceeded.
func (t *Team) AddCompetitor(user *User) error {
	if user == nil {
		return Invalid("competitor must not be nil")
	}
	if t.HasMember(user.ID) {
		return nil
	}
	if len(t.Competitors) >= MaxTeamSize {
		return NewError(KindCapacityExceeded,
			fmt.Sprintf("team %q already has %d competitors", t.Name, MaxTeamSize))
	}
	t.Competitors = append(t.Competitors, user)
	user.TeamID = &t.ID
	user.Team = t
	return nil
}

// RemoveCompetitor drops the user from the team and clears the back-reference.
// It reports whether a removal occurred; removing a non-member is not an error.
func (t *Team) RemoveCompetitor(user *User) bool {
	for i, c := range t.Competitors {
		if c.ID == user.ID {
			t.Competitors = append(t.Competitors[:i], t.Competitors[i+1:]...)
			user.TeamID = nil
			user.Team = nil
			return true
		}
	}
	return false
}

// AttachProblem wires the one-and-only problem of the team bidirectionally.
// A team that already has a problem keeps it; the attempt is rejected.
func (t *Team) AttachProblem(problem *Problem) error {
	if problem == nil {
		return Invalid("problem must not be nil")
	}
	if t.Problem != nil {
		return NewError(KindTeamAlreadyHasProblem,
			fmt.Sprintf("team %q already has a problem assigned", t.Name))
	}
	t.Problem = problem
	problem.TeamID = &t.ID
	problem.Team = t
	return nil
}

// AddDocument records a deliverable on the team, duplicate-safe by id
func (t *Team) AddDocument(doc *Document) {
	if doc == nil {
		return
	}
	for _, d := range t.Documents {
		if d.ID == doc.ID {
			return
		}
	}
	t.Documents = append(t.Documents, doc)
	doc.TeamID = t.ID
	doc.Team = t
}

// AddUpdate records an update in the team-wide collection, duplicate-safe by id
func (t *Team) AddUpdate(update *Update) {
	if update == nil {
		return
	}
	for _, u := range t.Updates {
		if u.ID == update.ID {
			return
		}
	}
	t.Updates = append(t.Updates, update)
	update.TeamID = t.ID
}

// AddEvaluation records a judge's evaluation, duplicate-safe by id
func (t *Team) AddEvaluation(eval *Evaluation) {
	if eval == nil {
		return
	}
	for _, e := range t.Evaluations {
		if e.ID == eval.ID {
			return
		}
	}
	t.Evaluations = append(t.Evaluations, eval)
	eval.TeamID = t.ID
}

// HasUpdates reports whether the team published at least one update across
// any of its documents
func (t *Team) HasUpdates() bool {
	return len(t.Updates) > 0
}

// EvaluatedBy reports whether the judge already recorded an evaluation for
// this team
func (t *Team) EvaluatedBy(judgeID string) bool {
	for _, e := range t.Evaluations {
		if e.JudgeID == judgeID {
			return true
		}
	}
	return false
}
