package booking

import (
	"context"
	"errors"
	"time"

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
// Reschedule Booking
// ===============================

type RescheduleInput struct {
	BookingID uint
	NewDate   time.Time

	// Zero values keep the booking's current service / hairdresser.
	NewServiceID     uint
	NewHairdresserID uint

	Reason string
}

type RescheduleBookingUseCase struct {
	repo     domain.Repository
	cache    *cache.SlotCache
	dispatch *calendar.Dispatcher
	clock    clock.Clock
}

func NewRescheduleBookingUseCase(
	repo domain.Repository,
	slotCache *cache.SlotCache,
	dispatch *calendar.Dispatcher,
	clk clock.Clock,
) *RescheduleBookingUseCase {
	return &RescheduleBookingUseCase{
		repo:     repo,
		cache:    slotCache,
		dispatch: dispatch,
		clock:    clk,
	}
}

// Execute moves a booking to a new slot. The new interval goes through
// the same atomic overlap check as a fresh booking, except the booking's
// own prior occupancy is excluded so moving within one's own slot (or to
// an adjacent one) is never self-blocking.
func (u *RescheduleBookingUseCase) Execute(
	ctx context.Context,
	caller domain.CallerContext,
	in RescheduleInput,
) (*models.Booking, error) {

	if in.NewDate.IsZero() {
		return nil, httperr.ErrBusiness("validation_error")
	}

	b, err := u.repo.GetBookingByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_found")
		}
		return nil, err
	}

	if !caller.MayModify(b) {
		return nil, httperr.ErrBusiness("unauthorized")
	}

	serviceID := in.NewServiceID
	if serviceID == 0 {
		serviceID = b.ServiceID
	}
	hairdresserID := in.NewHairdresserID
	if hairdresserID == 0 {
		hairdresserID = b.HairdresserID
	}

	svc, err := u.repo.GetServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_found")
		}
		return nil, err
	}

	offers, err := u.repo.HairdresserOffersService(ctx, hairdresserID, serviceID)
	if err != nil {
		return nil, err
	}
	if !offers {
		return nil, httperr.ErrBusiness("service_not_offered")
	}

	oldDate := b.AppointmentDate

	if err := domain.Reschedule(
		b, in.NewDate, serviceID, hairdresserID, in.Reason, u.clock.Now(),
	); err != nil {
		return nil, err
	}

	if err := u.repo.UpdateBookingSchedule(ctx, b, svc.TimeRequired); err != nil {
		if httperr.IsBusiness(err, "slot_unavailable") {
			metrics.SlotConflicts.Inc()
		}
		return nil, err
	}

	metrics.BookingsRescheduled.Inc()
	u.cache.InvalidateDay(ctx, oldDate)
	u.cache.InvalidateDay(ctx, b.AppointmentDate)

	if u.dispatch != nil {
		u.dispatch.Dispatch(calendar.Task{
			Kind:      calendar.TaskUpsert,
			BookingID: b.ID,
		})
	}

	return b, nil
}
