package visit

import "fmt"

// ConflictError signals that a requested interval cannot be booked. The
// engine deliberately reports no diagnosis split (salon closed vs. off-day
// vs. double-booked); callers who need one re-run the individual checks.
type ConflictError struct {
	SpecialistID string
	Message      string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("bookingConflict: %s", e.Message)
}

func NewConflictError(specialistID, msg string) error {
	return &ConflictError{
		SpecialistID: specialistID,
		Message:      msg,
	}
}

// ValidationError signals a malformed visit payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalidVisit: %s", e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
