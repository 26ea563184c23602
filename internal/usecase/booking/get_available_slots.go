package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/WhiteWolfWCY/Trimly/internal/cache"
	"github.com/WhiteWolfWCY/Trimly/internal/clock"
	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
	"github.com/WhiteWolfWCY/Trimly/internal/metrics"
	"github.com/WhiteWolfWCY/Trimly/internal/models"
)

// ===============================
// Get Available Slots
// ===============================

type GetAvailableSlotsUseCase struct {
	repo  domain.Repository
	cache *cache.SlotCache
	clock clock.Clock
}

func NewGetAvailableSlotsUseCase(
	repo domain.Repository,
	slotCache *cache.SlotCache,
	clk clock.Clock,
) *GetAvailableSlotsUseCase {
	return &GetAvailableSlotsUseCase{repo: repo, cache: slotCache, clock: clk}
}

// Execute computes the slot grid for one day. Slots are derived on every
// call from availability windows minus booked occupancy; nothing slot-
// shaped is ever persisted. Cached grids expire quickly and are dropped
// on any booking mutation for the same day.
func (u *GetAvailableSlotsUseCase) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	if in.Date.IsZero() {
		return nil, httperr.ErrBusiness("validation_error")
	}

	if slots, ok := u.cache.Get(ctx, in); ok {
		metrics.SlotCacheHits.WithLabelValues("hit").Inc()
		return slots, nil
	}
	metrics.SlotCacheHits.WithLabelValues("miss").Inc()

	durationMin := domain.DefaultDurationMinutes
	if in.ServiceID != 0 {
		svc, err := u.repo.GetServiceByID(ctx, in.ServiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrBusiness("not_found")
			}
			return nil, err
		}
		if svc.TimeRequired > 0 {
			durationMin = svc.TimeRequired
		}
	}

	allowed, err := u.allowedHairdressers(ctx, in)
	if err != nil {
		return nil, err
	}

	windows, err := u.repo.ListWindowsForDay(ctx, domain.DayOfWeekFor(in.Date))
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0, in.Date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	booked, err := u.repo.ListBookedForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	occupied := occupiedByHairdresser(booked)

	slots := []domain.TimeSlot{}
	for _, w := range windows {
		if allowed != nil && !allowed[w.HairdresserID] {
			continue
		}

		windowStart, ok := domain.AnchorOnDate(in.Date, w.StartTime)
		if !ok {
			continue
		}
		windowEnd, ok := domain.AnchorOnDate(in.Date, w.EndTime)
		if !ok || !windowEnd.After(windowStart) {
			continue
		}

		slots = append(slots, domain.GenerateSlots(
			w.HairdresserID,
			in.ServiceID,
			windowStart,
			windowEnd,
			durationMin,
			occupied[w.HairdresserID],
		)...)
	}

	u.cache.Set(ctx, in, slots)
	return slots, nil
}

// allowedHairdressers resolves the optional filters into a set of
// hairdresser IDs, or nil when every hairdresser qualifies.
func (u *GetAvailableSlotsUseCase) allowedHairdressers(
	ctx context.Context,
	in domain.AvailabilityInput,
) (map[uint]bool, error) {

	if in.ServiceID == 0 && in.HairdresserID == 0 {
		return nil, nil
	}

	if in.ServiceID != 0 && in.HairdresserID != 0 {
		offers, err := u.repo.HairdresserOffersService(ctx, in.HairdresserID, in.ServiceID)
		if err != nil {
			return nil, err
		}
		if !offers {
			return nil, httperr.ErrBusiness("service_not_offered")
		}
		return map[uint]bool{in.HairdresserID: true}, nil
	}

	if in.HairdresserID != 0 {
		return map[uint]bool{in.HairdresserID: true}, nil
	}

	ids, err := u.repo.ListHairdresserIDsForService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	allowed := make(map[uint]bool, len(ids))
	for _, id := range ids {
		allowed[id] = true
	}
	return allowed, nil
}

func occupiedByHairdresser(booked []models.Booking) map[uint][]domain.Interval {
	occupied := map[uint][]domain.Interval{}
	for _, b := range booked {
		duration := b.Service.TimeRequired
		if duration <= 0 {
			duration = domain.DefaultDurationMinutes
		}
		occupied[b.HairdresserID] = append(
			occupied[b.HairdresserID],
			domain.NewInterval(b.AppointmentDate, duration),
		)
	}
	return occupied
}
