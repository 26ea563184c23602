package booking

import "time"

// AvailabilityInput selects the day to generate slots for. ServiceID and
// HairdresserID are optional filters; a zero ServiceID falls back to the
// default 30-minute duration.
type AvailabilityInput struct {
	Date          time.Time
	ServiceID     uint
	HairdresserID uint
}
