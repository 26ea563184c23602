package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	HairdresserID uint        `gorm:"index;not null" json:"hairdresser_id"`
	Hairdresser   Hairdresser `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"hairdresser"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Start of the appointment. The end is derived from the service duration.
	AppointmentDate time.Time `gorm:"index;not null" json:"appointment_date"`

	Status string `gorm:"size:20;default:'booked'" json:"status"`

	Notes              string `gorm:"size:255" json:"notes"`
	CancellationReason string `gorm:"size:255" json:"cancellation_reason"`
	RescheduleReason   string `gorm:"size:255" json:"reschedule_reason"`

	CalendarEventID string `gorm:"size:255" json:"calendar_event_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
