package timezone

import "time"

// The salon runs in a single fixed local zone; all wall-clock arithmetic
// happens here.
const SalonTimezone = "Europe/Warsaw"

func Location() *time.Location {
	loc, err := time.LoadLocation(SalonTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Location())
}

func ParseDateTime(value string) (time.Time, error) {
	return time.ParseInLocation(time.RFC3339, value, Location())
}
