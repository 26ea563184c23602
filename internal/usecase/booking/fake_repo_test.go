package booking

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
	"github.com/WhiteWolfWCY/Trimly/internal/models"
)

// fakeRepo is an in-memory stand-in with the same conflict discipline as
// the real repository: create and reschedule are atomic under one mutex.
type fakeRepo struct {
	mu sync.Mutex

	hairdressers map[uint]models.Hairdresser
	services     map[uint]models.Service
	users        map[uint]models.User
	offers       map[uint]map[uint]bool
	windows      []models.AvailabilityWindow
	bookings     map[uint]*models.Booking

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		hairdressers: map[uint]models.Hairdresser{},
		services:     map[uint]models.Service{},
		users:        map[uint]models.User{},
		offers:       map[uint]map[uint]bool{},
		bookings:     map[uint]*models.Booking{},
	}
}

func (f *fakeRepo) addHairdresser(h models.Hairdresser) {
	f.hairdressers[h.ID] = h
}

func (f *fakeRepo) addService(s models.Service) {
	f.services[s.ID] = s
}

func (f *fakeRepo) addOffer(hairdresserID, serviceID uint) {
	if f.offers[hairdresserID] == nil {
		f.offers[hairdresserID] = map[uint]bool{}
	}
	f.offers[hairdresserID][serviceID] = true
}

func (f *fakeRepo) addWindow(w models.AvailabilityWindow) {
	f.windows = append(f.windows, w)
}

// withService returns a copy of the booking with its service preloaded,
// mirroring what the gorm preloads do.
func (f *fakeRepo) withService(b *models.Booking) models.Booking {
	out := *b
	out.Service = f.services[b.ServiceID]
	out.Hairdresser = f.hairdressers[b.HairdresserID]
	out.User = f.users[b.UserID]
	return out
}

// -------- Catalog --------

func (f *fakeRepo) GetHairdresserByID(ctx context.Context, id uint) (*models.Hairdresser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	h, ok := f.hairdressers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &h, nil
}

func (f *fakeRepo) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (f *fakeRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeRepo) HairdresserOffersService(ctx context.Context, hairdresserID, serviceID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.offers[hairdresserID][serviceID], nil
}

func (f *fakeRepo) ListHairdresserIDsForService(ctx context.Context, serviceID uint) ([]uint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var ids []uint
	for hid, services := range f.offers {
		if services[serviceID] {
			ids = append(ids, hid)
		}
	}
	return ids, nil
}

func (f *fakeRepo) ListHairdressersWithRelations(ctx context.Context) ([]models.Hairdresser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Hairdresser
	for _, h := range f.hairdressers {
		out = append(out, h)
	}
	return out, nil
}

// -------- Availability --------

func (f *fakeRepo) ListWindowsForDay(ctx context.Context, day domain.DayOfWeek) ([]models.AvailabilityWindow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.AvailabilityWindow
	for _, w := range f.windows {
		if w.DayOfWeek == string(day) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookedForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status != string(domain.StatusBooked) {
			continue
		}
		if b.AppointmentDate.Before(dayStart) || !b.AppointmentDate.Before(dayEnd) {
			continue
		}
		out = append(out, f.withService(b))
	}
	return out, nil
}

// -------- Booking (create / reschedule, conflict-free) --------

func (f *fakeRepo) conflictFreeLocked(b *models.Booking, durationMin int, excludeID uint) error {
	candidate := domain.NewInterval(b.AppointmentDate, durationMin)

	existing := make([]models.Booking, 0, len(f.bookings))
	for _, row := range f.bookings {
		existing = append(existing, f.withService(row))
	}

	if conflicts := domain.FindConflicts(candidate, b.HairdresserID, existing, excludeID); len(conflicts) > 0 {
		return httperr.ErrBusiness("slot_unavailable")
	}
	return nil
}

func (f *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking, durationMin int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.conflictFreeLocked(b, durationMin, 0); err != nil {
		return err
	}

	f.nextID++
	b.ID = f.nextID
	stored := *b
	f.bookings[b.ID] = &stored
	return nil
}

func (f *fakeRepo) UpdateBookingSchedule(ctx context.Context, b *models.Booking, durationMin int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.conflictFreeLocked(b, durationMin, b.ID); err != nil {
		return err
	}

	stored := *b
	f.bookings[b.ID] = &stored
	return nil
}

// -------- Booking (state change) --------

func (f *fakeRepo) GetBookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := f.withService(b)
	return &out, nil
}

func (f *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.bookings[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *b
	f.bookings[b.ID] = &stored
	return nil
}

func (f *fakeRepo) SetCalendarEventID(ctx context.Context, bookingID uint, eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if b, ok := f.bookings[bookingID]; ok {
		b.CalendarEventID = eventID
	}
	return nil
}

// -------- Sweep --------

func (f *fakeRepo) MarkPastBookings(ctx context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var marked int64
	for _, b := range f.bookings {
		if b.Status == string(domain.StatusBooked) && b.AppointmentDate.Before(now) {
			b.Status = string(domain.StatusPast)
			b.UpdatedAt = now
			marked++
		}
	}
	return marked, nil
}

// -------- Listings --------

func (f *fakeRepo) ListBookingsByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, f.withService(b))
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsFiltered(ctx context.Context, filter domain.AdminFilter) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.Date != nil {
			dayStart := time.Date(
				filter.Date.Year(), filter.Date.Month(), filter.Date.Day(),
				0, 0, 0, 0, filter.Date.Location(),
			)
			dayEnd := dayStart.Add(24 * time.Hour)
			if b.AppointmentDate.Before(dayStart) || !b.AppointmentDate.Before(dayEnd) {
				continue
			}
		}
		out = append(out, f.withService(b))
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsForPeriod(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.bookings {
		if b.AppointmentDate.Before(from) || b.AppointmentDate.After(to) {
			continue
		}
		out = append(out, f.withService(b))
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
