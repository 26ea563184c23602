package booking

import (
	"context"
	"log"

	"github.com/WhiteWolfWCY/Trimly/internal/cache"
	"github.com/WhiteWolfWCY/Trimly/internal/clock"
	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/metrics"
)

// ===============================
// Past Sweep
// ===============================

type SweepPastBookingsUseCase struct {
	repo  domain.Repository
	cache *cache.SlotCache
	clock clock.Clock
}

func NewSweepPastBookingsUseCase(
	repo domain.Repository,
	slotCache *cache.SlotCache,
	clk clock.Clock,
) *SweepPastBookingsUseCase {
	return &SweepPastBookingsUseCase{repo: repo, cache: slotCache, clock: clk}
}

// Execute flips every booked appointment whose start time is behind the
// current clock to past, in one statement. Cancelled rows keep their
// status. Running twice is harmless; the second pass matches nothing.
func (u *SweepPastBookingsUseCase) Execute(ctx context.Context) (int64, error) {
	now := u.clock.Now()

	marked, err := u.repo.MarkPastBookings(ctx, now)
	if err != nil {
		return 0, err
	}

	if marked > 0 {
		metrics.PastSweepMarked.Add(float64(marked))
		// Today's grid may have held morning slots from flipped rows.
		u.cache.InvalidateDay(ctx, now)
		log.Printf("past sweep marked %d bookings", marked)
	}

	return marked, nil
}
