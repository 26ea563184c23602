package booking

import "time"

type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// Week is Monday-first (ISO), independent of locale.
var Week = []DayOfWeek{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

func IsValidDay(s string) bool {
	for _, d := range Week {
		if DayOfWeek(s) == d {
			return true
		}
	}
	return false
}

// DayOfWeekFor maps a calendar date to its ISO weekday name.
// time.Weekday is Sunday-based, so shift by six.
func DayOfWeekFor(date time.Time) DayOfWeek {
	return Week[(int(date.Weekday())+6)%7]
}
