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
// Cancel Booking
// ===============================

type CancelBookingUseCase struct {
	repo     domain.Repository
	cache    *cache.SlotCache
	dispatch *calendar.Dispatcher
	clock    clock.Clock
}

func NewCancelBookingUseCase(
	repo domain.Repository,
	slotCache *cache.SlotCache,
	dispatch *calendar.Dispatcher,
	clk clock.Clock,
) *CancelBookingUseCase {
	return &CancelBookingUseCase{
		repo:     repo,
		cache:    slotCache,
		dispatch: dispatch,
		clock:    clk,
	}
}

// Execute cancels a booking for its owner or an admin. Cancelling frees
// the slot immediately; the freed interval stops blocking availability
// the moment the update commits.
func (u *CancelBookingUseCase) Execute(
	ctx context.Context,
	caller domain.CallerContext,
	bookingID uint,
	reason string,
) (*models.Booking, error) {

	b, err := u.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_found")
		}
		return nil, err
	}

	if !caller.MayModify(b) {
		return nil, httperr.ErrBusiness("unauthorized")
	}

	if err := domain.Cancel(b, reason, u.clock.Now()); err != nil {
		return nil, err
	}

	if err := u.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	metrics.BookingsCancelled.WithLabelValues(caller.Role).Inc()
	u.cache.InvalidateDay(ctx, b.AppointmentDate)

	if u.dispatch != nil && b.CalendarEventID != "" {
		u.dispatch.Dispatch(calendar.Task{
			Kind:      calendar.TaskRemove,
			BookingID: b.ID,
			EventID:   b.CalendarEventID,
		})
	}

	return b, nil
}
