package models

import "time"

// AvailabilityWindow is one open interval of a hairdresser's week, e.g.
// monday 09:00-17:00. Times are wall-clock "HH:mm" strings; the date part
// is resolved against the requested day when slots are generated.
// A hairdresser may have several windows on the same weekday.
type AvailabilityWindow struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	HairdresserID uint `gorm:"index;not null" json:"hairdresser_id"`

	DayOfWeek string `gorm:"size:10;not null" json:"day_of_week"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
