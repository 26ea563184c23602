package booking

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
	"github.com/WhiteWolfWCY/Trimly/internal/models"
)

// requireCalendarConflictFree fails if any two booked rows of the same
// hairdresser overlap.
func requireCalendarConflictFree(t *testing.T, repo *fakeRepo, step string) {
	t.Helper()

	var booked []models.Booking
	for _, b := range repo.bookings {
		if b.Status == string(domain.StatusBooked) {
			booked = append(booked, repo.withService(b))
		}
	}

	for i := range booked {
		for j := i + 1; j < len(booked); j++ {
			if booked[i].HairdresserID != booked[j].HairdresserID {
				continue
			}
			a := domain.NewInterval(booked[i].AppointmentDate, booked[i].Service.TimeRequired)
			b := domain.NewInterval(booked[j].AppointmentDate, booked[j].Service.TimeRequired)
			require.False(t, a.Overlaps(b),
				"after %s: bookings %d and %d overlap: %v vs %v",
				step, booked[i].ID, booked[j].ID, a, b)
		}
	}
}

// A randomized walk over the full lifecycle: creates, cancels and
// reschedules in arbitrary order. Each operation either succeeds or is
// rejected with a business error, and after every single one the booked
// rows must remain pairwise conflict-free.
func TestRandomLifecycleKeepsCalendarConflictFree(t *testing.T) {
	repo := seededRepo()
	ctx := context.Background()

	createUC := NewCreateBookingUseCase(repo, nil, nil, fixedClock())
	cancelUC := NewCancelBookingUseCase(repo, nil, nil, fixedClock())
	rescheduleUC := NewRescheduleBookingUseCase(repo, nil, nil, fixedClock())

	// Fixed seed so a failure replays deterministically.
	rng := rand.New(rand.NewSource(20260302))

	// Hairdresser/service pairs the seed data actually offers.
	pairs := []struct{ hairdresserID, serviceID uint }{
		{1, 1}, {1, 2}, {2, 1},
	}

	// Quarter-hour grid across Monday and Tuesday, tight enough that
	// collisions are frequent.
	randomStart := func() time.Time {
		day := time.Duration(rng.Intn(2)) * 24 * time.Hour
		return mondayAt(9, 0).Add(day + minutes(rng.Intn(32)*15))
	}

	var ids []uint
	created := 0

	for op := 0; op < 400; op++ {
		var step string

		switch n := rng.Intn(3); {
		case n == 0 || len(ids) == 0:
			pair := pairs[rng.Intn(len(pairs))]
			step = fmt.Sprintf("create (op %d)", op)

			b, err := createUC.Execute(ctx, &models.Booking{
				UserID:          uint(100 + rng.Intn(5)),
				HairdresserID:   pair.hairdresserID,
				ServiceID:       pair.serviceID,
				AppointmentDate: randomStart(),
			})
			if err != nil {
				assert.True(t, httperr.IsBusiness(err, "slot_unavailable"),
					"%s: unexpected error %v", step, err)
			} else {
				ids = append(ids, b.ID)
				created++
			}

		case n == 1:
			id := ids[rng.Intn(len(ids))]
			step = fmt.Sprintf("cancel %d (op %d)", id, op)

			if _, err := cancelUC.Execute(ctx, admin, id, "plans changed"); err != nil {
				assert.True(t, httperr.IsBusiness(err, "already_cancelled"),
					"%s: unexpected error %v", step, err)
			}

		default:
			id := ids[rng.Intn(len(ids))]
			step = fmt.Sprintf("reschedule %d (op %d)", id, op)

			in := RescheduleInput{BookingID: id, NewDate: randomStart()}
			if rng.Intn(2) == 0 {
				pair := pairs[rng.Intn(len(pairs))]
				in.NewHairdresserID = pair.hairdresserID
				in.NewServiceID = pair.serviceID
			}

			if _, err := rescheduleUC.Execute(ctx, admin, in); err != nil {
				code := httperr.BusinessCode(err)
				assert.Contains(t,
					[]string{"slot_unavailable", "cannot_reschedule_cancelled"}, code,
					"%s: unexpected error %v", step, err)
			}
		}

		requireCalendarConflictFree(t, repo, step)
	}

	assert.NotZero(t, created, "the walk must land some bookings")
}
