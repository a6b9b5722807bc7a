package interview

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFollowUpLimit is returned when a follow-up is requested for a question
// that already reached its follow-up cap.
var ErrFollowUpLimit = errors.New("follow-up limit reached")

// InvalidInputError reports a lookup key that matched no known identifier.
// Valid carries the full list of accepted identifiers.
type InvalidInputError struct {
	Field string
	Value string
	Valid []string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q, valid options: %s", e.Field, e.Value, strings.Join(e.Valid, ", "))
}

// SessionNotFoundError reports an unknown session id.
type SessionNotFoundError struct {
	ID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session %q not found", e.ID)
}

// InvalidStateTransitionError reports an action attempted from a lifecycle
// state that forbids it.
type InvalidStateTransitionError struct {
	SessionID string
	Current   SessionStatus
	Action    string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("session %s: cannot %s from state %q", e.SessionID, e.Action, e.Current)
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// IsSessionNotFound reports whether err is a SessionNotFoundError.
func IsSessionNotFound(err error) bool {
	var target *SessionNotFoundError
	return errors.As(err, &target)
}

// IsInvalidStateTransition reports whether err is an InvalidStateTransitionError.
func IsInvalidStateTransition(err error) bool {
	var target *InvalidStateTransitionError
	return errors.As(err, &target)
}
