package models

import "time"

type Hairdresser struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName   string `gorm:"size:100;not null" json:"first_name"`
	LastName    string `gorm:"size:100;not null" json:"last_name"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`

	Services     []Service            `gorm:"many2many:hairdressers_services;" json:"services,omitempty"`
	Availability []AvailabilityWindow `gorm:"foreignKey:HairdresserID" json:"availability,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
