package booking

import "time"

const (
	// SlotStepMinutes is the fixed granularity of the candidate grid,
	// anchored to each window's start (not to a global clock).
	SlotStepMinutes = 30

	// DefaultDurationMinutes applies when no service is selected.
	DefaultDurationMinutes = 30
)

// TimeSlot is an ephemeral projection computed per request, never stored.
type TimeSlot struct {
	HairdresserID uint      `json:"hairdresser_id"`
	ServiceID     uint      `json:"service_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Available     bool      `json:"available"`
}

// GenerateSlots walks one availability window in fixed steps and emits
// every candidate [t, t+duration) that still fits inside the window; a
// trailing partial slot is never emitted. Each candidate is flagged
// against the occupied intervals using the half-open overlap rule.
// Unavailable slots are returned too so callers can render them disabled.
func GenerateSlots(
	hairdresserID uint,
	serviceID uint,
	windowStart time.Time,
	windowEnd time.Time,
	durationMin int,
	occupied []Interval,
) []TimeSlot {

	if durationMin <= 0 {
		durationMin = DefaultDurationMinutes
	}

	duration := time.Duration(durationMin) * time.Minute
	step := SlotStepMinutes * time.Minute

	var slots []TimeSlot

	for cur := windowStart; !cur.Add(duration).After(windowEnd); cur = cur.Add(step) {
		candidate := Interval{Start: cur, End: cur.Add(duration)}

		available := true
		for _, busy := range occupied {
			if candidate.Overlaps(busy) {
				available = false
				break
			}
		}

		slots = append(slots, TimeSlot{
			HairdresserID: hairdresserID,
			ServiceID:     serviceID,
			StartTime:     candidate.Start,
			EndTime:       candidate.End,
			Available:     available,
		})
	}

	return slots
}

// AnchorOnDate replaces the date component of a wall-clock "15:04" value
// with the target date, keeping hour and minute.
func AnchorOnDate(date time.Time, wallClock string) (time.Time, bool) {
	t, err := time.Parse("15:04", wallClock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), true
}
