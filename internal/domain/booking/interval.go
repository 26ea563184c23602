package booking

import (
	"time"

	"github.com/WhiteWolfWCY/Trimly/internal/models"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start time.Time, durationMin int) Interval {
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMin) * time.Minute),
	}
}

// Overlaps uses the half-open rule: [a1,a2) and [b1,b2) intersect iff
// a1 < b2 && a2 > b1. Back-to-back appointments do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// ===============================
// Conflict Validator
// ===============================

// FindConflicts returns the bookings whose intervals intersect the
// candidate interval for the given hairdresser. Only booked-status rows
// count: cancelled and past bookings never block a slot. Each booking's
// duration comes from its preloaded service; excludeID skips the booking
// being rescheduled itself.
func FindConflicts(
	candidate Interval,
	hairdresserID uint,
	existing []models.Booking,
	excludeID uint,
) []models.Booking {

	var conflicts []models.Booking

	for _, b := range existing {
		if b.ID == excludeID && excludeID != 0 {
			continue
		}
		if b.HairdresserID != hairdresserID {
			continue
		}
		if Status(b.Status) != StatusBooked {
			continue
		}

		duration := b.Service.TimeRequired
		if duration <= 0 {
			duration = DefaultDurationMinutes
		}

		if candidate.Overlaps(NewInterval(b.AppointmentDate, duration)) {
			conflicts = append(conflicts, b)
		}
	}

	return conflicts
}
