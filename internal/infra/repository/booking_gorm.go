package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
	"github.com/WhiteWolfWCY/Trimly/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetHairdresserByID(
	ctx context.Context,
	id uint,
) (*models.Hairdresser, error) {

	var h models.Hairdresser
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *BookingGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *BookingGormRepository) HairdresserOffersService(
	ctx context.Context,
	hairdresserID uint,
	serviceID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Table("hairdressers_services").
		Where("hairdresser_id = ? AND service_id = ?", hairdresserID, serviceID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) ListHairdresserIDsForService(
	ctx context.Context,
	serviceID uint,
) ([]uint, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Table("hairdressers_services").
		Where("service_id = ?", serviceID).
		Pluck("hairdresser_id", &ids).Error; err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *BookingGormRepository) ListHairdressersWithRelations(
	ctx context.Context,
) ([]models.Hairdresser, error) {

	var hairdressers []models.Hairdresser
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Preload("Availability").
		Order("last_name ASC, first_name ASC").
		Find(&hairdressers).Error; err != nil {
		return nil, err
	}

	return hairdressers, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListWindowsForDay(
	ctx context.Context,
	day domain.DayOfWeek,
) ([]models.AvailabilityWindow, error) {

	var windows []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("day_of_week = ?", string(day)).
		Order("hairdresser_id ASC, start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}

	return windows, nil
}

func (r *BookingGormRepository) ListBookedForDay(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"status = ? AND appointment_date >= ? AND appointment_date < ?",
			string(domain.StatusBooked), dayStart, dayEnd,
		).
		Order("appointment_date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Booking (create / reschedule, conflict-free)
// --------------------------------------------------

// conflictFree serializes the check-then-act section per hairdresser and
// checks the candidate interval against the booked rows. Locking the
// booked rows themselves is not enough: with zero rows nothing is locked,
// and under READ COMMITTED a waiter's re-scan never sees rows the lock
// holder inserted. So the first statement locks the hairdresser's own
// row, which always exists; the bookings read then runs in a later
// statement, after the winner committed.
func conflictFree(
	tx *gorm.DB,
	hairdresserID uint,
	candidate domain.Interval,
	excludeID uint,
) error {

	var gate models.Hairdresser
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&gate, hairdresserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("not_found")
		}
		return err
	}

	var existing []models.Booking
	if err := tx.
		Preload("Service").
		Where(
			"hairdresser_id = ? AND status = ?",
			hairdresserID, string(domain.StatusBooked),
		).
		Find(&existing).Error; err != nil {
		return err
	}

	if conflicts := domain.FindConflicts(candidate, hairdresserID, existing, excludeID); len(conflicts) > 0 {
		return httperr.ErrBusiness("slot_unavailable")
	}

	return nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
	durationMin int,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		candidate := domain.NewInterval(b.AppointmentDate, durationMin)

		if err := conflictFree(tx, b.HairdresserID, candidate, 0); err != nil {
			return err
		}

		return tx.Create(b).Error
	})

	if httperr.IsForeignKeyViolation(err) {
		return httperr.ErrBusiness("not_found")
	}
	return err
}

func (r *BookingGormRepository) UpdateBookingSchedule(
	ctx context.Context,
	b *models.Booking,
	durationMin int,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		candidate := domain.NewInterval(b.AppointmentDate, durationMin)

		if err := conflictFree(tx, b.HairdresserID, candidate, b.ID); err != nil {
			return err
		}

		return tx.Save(b).Error
	})

	if httperr.IsForeignKeyViolation(err) {
		return httperr.ErrBusiness("not_found")
	}
	return err
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&b, id).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) SetCalendarEventID(
	ctx context.Context,
	bookingID uint,
	eventID string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("calendar_event_id", eventID).Error
}

// --------------------------------------------------
// Sweep
// --------------------------------------------------

func (r *BookingGormRepository) MarkPastBookings(
	ctx context.Context,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"status = ? AND appointment_date < ?",
			string(domain.StatusBooked), now,
		).
		Updates(map[string]any{
			"status":     string(domain.StatusPast),
			"updated_at": now,
		})

	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsByUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Hairdresser").
		Where("user_id = ?", userID).
		Order("appointment_date DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsFiltered(
	ctx context.Context,
	filter domain.AdminFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Preload("Service").
		Preload("Hairdresser").
		Preload("User")

	if filter.Status != "" {
		q = q.Where("bookings.status = ?", filter.Status)
	}

	if filter.Date != nil {
		dayStart := time.Date(
			filter.Date.Year(), filter.Date.Month(), filter.Date.Day(),
			0, 0, 0, 0, filter.Date.Location(),
		)
		dayEnd := dayStart.Add(24 * time.Hour)
		q = q.Where(
			"bookings.appointment_date >= ? AND bookings.appointment_date < ?",
			dayStart, dayEnd,
		)
	}

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.
			Joins("JOIN users ON users.id = bookings.user_id").
			Where(
				"users.first_name ILIKE ? OR users.last_name ILIKE ? OR users.email ILIKE ?",
				like, like, like,
			)
	}

	var bookings []models.Booking
	if err := q.
		Order("bookings.appointment_date DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Hairdresser").
		Preload("User").
		Where("appointment_date >= ? AND appointment_date <= ?", from, to).
		Order("appointment_date DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
