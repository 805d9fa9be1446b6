package models

import "errors"

// ErrorKind classifies a rule violation so handlers can map it to a status code
type ErrorKind string

const (
	KindValidation            ErrorKind = "validation"
	KindCapacityExceeded      ErrorKind = "capacity_exceeded"
	KindRegistrationClosed    ErrorKind = "registration_closed"
	KindTeamAlreadyHasProblem ErrorKind = "team_already_has_problem"
	KindProblemRequired       ErrorKind = "problem_required"
	KindUpdateRequired        ErrorKind = "update_required"
	KindCrossEventMembership  ErrorKind = "cross_event_membership"
	KindCrossEventAssignment  ErrorKind = "cross_event_assignment"
	KindCrossEventComment     ErrorKind = "cross_event_comment"
	KindCrossEventEvaluation  ErrorKind = "cross_event_evaluation"
	KindNotFound              ErrorKind = "not_found"
)

// Error is a typed rule-engine failure. Persistence errors are never wrapped
// into an Error; they propagate unchanged.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds a typed failure with the given kind
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Invalid builds a validation failure
func Invalid(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf returns the kind of a rule-engine failure, or "" for any other error
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
