package booking

import (
	"time"

	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
	"github.com/WhiteWolfWCY/Trimly/internal/models"
)

// ===============================
// Caller identity
// ===============================

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// CallerContext carries the authenticated caller into every lifecycle
// operation instead of reading ambient session state.
type CallerContext struct {
	UserID uint
	Role   string
}

func (c CallerContext) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// MayModify allows the booking owner and any admin.
func (c CallerContext) MayModify(b *models.Booking) bool {
	return c.IsAdmin() || c.UserID == b.UserID
}

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, reason string, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancellationReason = reason
	b.UpdatedAt = now
	return nil
}

// Reschedule mutates schedule fields in place; the status stays booked.
// Conflict checking against the new interval happens in the repository,
// excluding this booking's own prior occupancy.
func Reschedule(
	b *models.Booking,
	newDate time.Time,
	newServiceID uint,
	newHairdresserID uint,
	reason string,
	now time.Time,
) error {

	if err := CanReschedule(Status(b.Status)); err != nil {
		return err
	}

	if newDate.Before(now) {
		return httperr.ErrBusiness("past_date")
	}

	b.AppointmentDate = newDate
	b.ServiceID = newServiceID
	b.HairdresserID = newHairdresserID
	b.RescheduleReason = reason
	b.UpdatedAt = now
	return nil
}
