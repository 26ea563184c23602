package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/WhiteWolfWCY/Trimly/internal/cache"
	"github.com/WhiteWolfWCY/Trimly/internal/calendar"
	"github.com/WhiteWolfWCY/Trimly/internal/clock"
	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
	"github.com/WhiteWolfWCY/Trimly/internal/metrics"
	"github.com/WhiteWolfWCY/Trimly/internal/models"
)

// ===============================
// Create Booking
// ===============================

type CreateBookingUseCase struct {
	repo     domain.Repository
	cache    *cache.SlotCache
	dispatch *calendar.Dispatcher
	clock    clock.Clock
}

func NewCreateBookingUseCase(
	repo domain.Repository,
	slotCache *cache.SlotCache,
	dispatch *calendar.Dispatcher,
	clk clock.Clock,
) *CreateBookingUseCase {
	return &CreateBookingUseCase{
		repo:     repo,
		cache:    slotCache,
		dispatch: dispatch,
		clock:    clk,
	}
}

// Execute books an appointment. The overlap check and the insert run
// atomically in the repository; losing a race surfaces as the same
// slot_unavailable the loser would have seen on a stale slot grid.
// Calendar sync runs after commit and cannot fail the booking.
func (u *CreateBookingUseCase) Execute(
	ctx context.Context,
	b *models.Booking,
) (*models.Booking, error) {

	now := u.clock.Now()

	if b.AppointmentDate.IsZero() || b.UserID == 0 ||
		b.HairdresserID == 0 || b.ServiceID == 0 {
		return nil, httperr.ErrBusiness("validation_error")
	}

	if b.AppointmentDate.Before(now) {
		return nil, httperr.ErrBusiness("past_date")
	}

	svc, err := u.repo.GetServiceByID(ctx, b.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_found")
		}
		return nil, err
	}

	offers, err := u.repo.HairdresserOffersService(ctx, b.HairdresserID, b.ServiceID)
	if err != nil {
		return nil, err
	}
	if !offers {
		return nil, httperr.ErrBusiness("service_not_offered")
	}

	b.Status = string(domain.InitialStatus())
	b.CreatedAt = now
	b.UpdatedAt = now

	if err := u.repo.CreateBooking(ctx, b, svc.TimeRequired); err != nil {
		if httperr.IsBusiness(err, "slot_unavailable") {
			metrics.SlotConflicts.Inc()
		}
		return nil, err
	}

	metrics.BookingsCreated.Inc()
	u.cache.InvalidateDay(ctx, b.AppointmentDate)

	if u.dispatch != nil {
		u.dispatch.Dispatch(calendar.Task{
			Kind:      calendar.TaskUpsert,
			BookingID: b.ID,
		})
	}

	return b, nil
}
