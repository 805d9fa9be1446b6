package services

import (
	"testing"

	"api/models"
	"api/rules"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db, mock
}

// The hackathon lookup runs one First plus the Organizer and Teams preloads.
// The preload order is an implementation detail, so both expectations accept
// either table.
func expectHackathonLookup(mock sqlmock.Sqlmock, id, organizerID string) {
	mock.ExpectQuery(`SELECT \* FROM "hackathons"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organizer_id"}).AddRow(id, organizerID))
	mock.ExpectQuery(`SELECT \* FROM "(users|teams)"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "(users|teams)"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
}

func TestHackathonsDeleteDetachesBeforeRemoving(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewHackathons(db, rules.DefaultPolicy)

	expectHackathonLookup(mock, "h-1", "org-1")

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "comments"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "updates"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "evaluations"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "documents"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "problems"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "teams"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "hackathons"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	owner := &models.User{ID: "org-1", Role: models.RoleOrganizer}
	if err := s.Delete("h-1", owner); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("users and teams must be detached and removed before the event row: %v", err)
	}
}

func TestHackathonsDeleteRejectsNonOwner(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewHackathons(db, rules.DefaultPolicy)

	expectHackathonLookup(mock, "h-1", "org-1")

	intruder := &models.User{ID: "org-2", Role: models.RoleOrganizer}
	err := s.Delete("h-1", intruder)
	if models.KindOf(err) != models.KindValidation {
		t.Errorf("a non-owning organizer must be rejected, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("a rejected delete must not touch any row: %v", err)
	}
}
