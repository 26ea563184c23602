package booking

import (
	"context"
	"time"

	"github.com/WhiteWolfWCY/Trimly/internal/models"
)

// AdminFilter narrows the admin booking listing. Nil/empty fields match
// everything.
type AdminFilter struct {
	Status string
	Date   *time.Time
	Search string
}

type Repository interface {
	// -------- Catalog --------
	GetHairdresserByID(
		ctx context.Context,
		id uint,
	) (*models.Hairdresser, error)

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// HairdresserOffersService checks the many-to-many association.
	HairdresserOffersService(
		ctx context.Context,
		hairdresserID uint,
		serviceID uint,
	) (bool, error)

	ListHairdresserIDsForService(
		ctx context.Context,
		serviceID uint,
	) ([]uint, error)

	// ListHairdressersWithRelations preloads services and availability
	// windows for the public browsing endpoint.
	ListHairdressersWithRelations(
		ctx context.Context,
	) ([]models.Hairdresser, error)

	// -------- Availability --------
	ListWindowsForDay(
		ctx context.Context,
		day DayOfWeek,
	) ([]models.AvailabilityWindow, error)

	// ListBookedForDay returns booked-status rows starting inside
	// [dayStart, dayEnd), services preloaded for duration resolution.
	ListBookedForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Booking, error)

	// -------- Booking (create / reschedule, conflict-free) --------

	// CreateBooking inserts the booking unless its interval overlaps an
	// existing booked row for the same hairdresser. The check and the
	// insert run in one transaction with the hairdresser's rows locked.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
		durationMin int,
	) error

	// UpdateBookingSchedule persists a rescheduled booking under the
	// same conflict discipline, ignoring the booking's own prior slot.
	UpdateBookingSchedule(
		ctx context.Context,
		b *models.Booking,
		durationMin int,
	) error

	// -------- Booking (state change) --------
	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	SetCalendarEventID(
		ctx context.Context,
		bookingID uint,
		eventID string,
	) error

	// -------- Sweep --------
	MarkPastBookings(
		ctx context.Context,
		now time.Time,
	) (int64, error)

	// -------- Listings --------
	ListBookingsByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	ListBookingsFiltered(
		ctx context.Context,
		filter AdminFilter,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)
}
