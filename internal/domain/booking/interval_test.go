package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/WhiteWolfWCY/Trimly/internal/models"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func TestIntervalOverlaps(t *testing.T) {
	base := Interval{Start: at(10, 0), End: at(11, 0)}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"identical", Interval{at(10, 0), at(11, 0)}, true},
		{"contained", Interval{at(10, 15), at(10, 45)}, true},
		{"overlaps start", Interval{at(9, 30), at(10, 30)}, true},
		{"overlaps end", Interval{at(10, 30), at(11, 30)}, true},
		{"covers", Interval{at(9, 0), at(12, 0)}, true},
		{"back to back before", Interval{at(9, 0), at(10, 0)}, false},
		{"back to back after", Interval{at(11, 0), at(12, 0)}, false},
		{"disjoint before", Interval{at(8, 0), at(9, 0)}, false},
		{"disjoint after", Interval{at(12, 0), at(13, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestNewInterval(t *testing.T) {
	iv := NewInterval(at(9, 0), 45)
	assert.Equal(t, at(9, 0), iv.Start)
	assert.Equal(t, at(9, 45), iv.End)
}

func TestFindConflicts(t *testing.T) {
	existing := []models.Booking{
		{
			ID:              1,
			HairdresserID:   7,
			Status:          string(StatusBooked),
			AppointmentDate: at(10, 0),
			Service:         models.Service{TimeRequired: 60},
		},
		{
			ID:              2,
			HairdresserID:   7,
			Status:          string(StatusCancelled),
			AppointmentDate: at(10, 0),
			Service:         models.Service{TimeRequired: 60},
		},
		{
			ID:              3,
			HairdresserID:   8,
			Status:          string(StatusBooked),
			AppointmentDate: at(10, 0),
			Service:         models.Service{TimeRequired: 60},
		},
	}

	t.Run("overlap with booked row", func(t *testing.T) {
		got := FindConflicts(NewInterval(at(10, 30), 30), 7, existing, 0)
		assert.Len(t, got, 1)
		assert.Equal(t, uint(1), got[0].ID)
	})

	t.Run("cancelled rows never block", func(t *testing.T) {
		got := FindConflicts(NewInterval(at(10, 0), 30), 7, existing[1:2], 0)
		assert.Empty(t, got)
	})

	t.Run("other hairdresser ignored", func(t *testing.T) {
		got := FindConflicts(NewInterval(at(10, 0), 30), 9, existing, 0)
		assert.Empty(t, got)
	})

	t.Run("boundary touch is free", func(t *testing.T) {
		got := FindConflicts(NewInterval(at(11, 0), 30), 7, existing, 0)
		assert.Empty(t, got)
	})

	t.Run("exclude own id when rescheduling", func(t *testing.T) {
		got := FindConflicts(NewInterval(at(10, 15), 30), 7, existing, 1)
		assert.Empty(t, got)
	})

	t.Run("duration falls back when service missing", func(t *testing.T) {
		rows := []models.Booking{{
			ID:              4,
			HairdresserID:   7,
			Status:          string(StatusBooked),
			AppointmentDate: at(10, 0),
		}}
		// Default 30 minutes: a 10:30 candidate does not collide.
		assert.Empty(t, FindConflicts(NewInterval(at(10, 30), 30), 7, rows, 0))
		assert.Len(t, FindConflicts(NewInterval(at(10, 15), 30), 7, rows, 0), 1)
	})
}
