package models

import "time"

// Price is kept as a numeric string to avoid float drift on money values.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Price       string `gorm:"type:numeric;not null" json:"price"`

	// Duration of the service in minutes. Must be > 0.
	TimeRequired int `gorm:"not null" json:"time_required"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
