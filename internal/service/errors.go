package service

import (
	"errors"
	"fmt"
)

// ValidationError covers locally detectable problems with a submission.
// It is reported straight back to the user and never triggers I/O.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// UpstreamError wraps a failure of a collaborator (database, file storage).
// These are retryable from the user's point of view: nothing partial was
// committed.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionNotOwned   = errors.New("session belongs to another user")
	ErrSessionIncomplete = errors.New("session is not completed")
	ErrExerciseNotFound  = errors.New("exercise not found")
)

// IsValidation reports whether err is a user-input problem rather than a
// system failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
