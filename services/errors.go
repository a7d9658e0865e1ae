package services

import (
	"errors"
	"fmt"
)

// Error kinds returned by the hearing engine. Callers match them with
// errors.Is; the concrete errors below wrap one of these.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidSchedule = errors.New("invalid schedule")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
)

// Hearing-related errors
var (
	ErrCaseNotFound    = fmt.Errorf("case %w", ErrNotFound)
	ErrCaseNumberTaken = fmt.Errorf("%w: case number already exists", ErrConflict)
	ErrHearingNotFound = fmt.Errorf("hearing %w", ErrNotFound)
	ErrOutcomeNotFound = fmt.Errorf("outcome %w", ErrNotFound)
	ErrOutcomeExists   = fmt.Errorf("%w: hearing already has an outcome", ErrConflict)
)

// Storage errors
var (
	ErrExportNotFound  = fmt.Errorf("export %w", ErrNotFound)
	ErrStorageDisabled = errors.New("storage is not configured")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
