package booking

import "github.com/WhiteWolfWCY/Trimly/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
	StatusPast      Status = "past"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusBooked, StatusCancelled, StatusPast:
		return true
	}
	return false
}

// ===============================
// Transition guards
// ===============================

// CanCancel: cancelled is terminal, everything else may still be cancelled.
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness("already_cancelled")
	}
	return nil
}

// CanReschedule: a cancelled booking can never come back.
func CanReschedule(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness("cannot_reschedule_cancelled")
	}
	return nil
}

func InitialStatus() Status {
	return StatusBooked
}
