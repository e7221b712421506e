// Package apperrors holds the business-rule error values shared by the
// repository and service layers. All of them are recoverable by the caller
// correcting the request; none are fatal.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrBedUnavailable is returned when the bed requested for an
	// admission is not AVAILABLE at reservation time.
	ErrBedUnavailable = errors.New("bed is not available")

	// ErrBedInUse is returned when a manual status override tries to free
	// a bed still held by an active admission.
	ErrBedInUse = errors.New("bed is held by an active admission")

	// ErrAdmissionClosed is returned on any transition attempt out of a
	// DISCHARGED or TRANSFERRED admission.
	ErrAdmissionClosed = errors.New("admission is already closed")

	// ErrPastAppointment is returned when booking an appointment at a
	// date that has already passed.
	ErrPastAppointment = errors.New("cannot book an appointment in the past")

	// ErrInvalidDateRange is returned when a discharge date would precede
	// the admit date.
	ErrInvalidDateRange = errors.New("discharge date cannot be earlier than admit date")
)

// UnclearedBillingError blocks a discharge while unpaid bills remain linked
// to the admission. It carries the offending bill IDs so the caller can name
// them to the user.
type UnclearedBillingError struct {
	AdmissionID uint
	BillIDs     []uint
}

func (e *UnclearedBillingError) Error() string {
	return fmt.Sprintf("admission %d has unpaid bills %v; settle billing before discharge", e.AdmissionID, e.BillIDs)
}
