package calendar

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/models"
)

type fakeClient struct {
	mu      sync.Mutex
	fail    bool
	upserts []Event
	deletes []string
	done    chan struct{}
}

func newFakeClient(fail bool) *fakeClient {
	return &fakeClient{fail: fail, done: make(chan struct{}, 10)}
}

func (f *fakeClient) UpsertEvent(ctx context.Context, existingID string, ev Event) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer func() { f.done <- struct{}{} }()

	if f.fail {
		return "", errors.New("calendar unreachable")
	}
	f.upserts = append(f.upserts, ev)
	return "evt-1", nil
}

func (f *fakeClient) DeleteEvent(ctx context.Context, eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer func() { f.done <- struct{}{} }()

	if f.fail {
		return errors.New("calendar unreachable")
	}
	f.deletes = append(f.deletes, eventID)
	return nil
}

type stubBookingRepo struct {
	domain.Repository

	mu      sync.Mutex
	booking models.Booking
	eventID string
}

func (s *stubBookingRepo) GetBookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.booking
	return &out, nil
}

func (s *stubBookingRepo) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	return &models.Service{ID: id, Name: "Haircut", TimeRequired: 30}, nil
}

func (s *stubBookingRepo) GetHairdresserByID(ctx context.Context, id uint) (*models.Hairdresser, error) {
	return &models.Hairdresser{ID: id, FirstName: "Anna", LastName: "Nowak"}, nil
}

func (s *stubBookingRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return &models.User{ID: id, FirstName: "Jan", LastName: "Kowalski", Email: "jan@example.com"}, nil
}

func (s *stubBookingRepo) SetCalendarEventID(ctx context.Context, bookingID uint, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eventID = eventID
	return nil
}

func waitDone(t *testing.T, c *fakeClient) {
	t.Helper()
	select {
	case <-c.done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker never reached the calendar client")
	}
}

func testBooking() models.Booking {
	return models.Booking{
		ID: 1, UserID: 2, HairdresserID: 3, ServiceID: 4,
		AppointmentDate: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		Status:          "booked",
		Notes:           "first visit",
	}
}

func TestDispatcherUpsert(t *testing.T) {
	client := newFakeClient(false)
	repo := &stubBookingRepo{booking: testBooking()}

	d := NewDispatcher(client, repo)
	d.Dispatch(Task{Kind: TaskUpsert, BookingID: 1})

	waitDone(t, client)

	client.mu.Lock()
	require.Len(t, client.upserts, 1)
	ev := client.upserts[0]
	client.mu.Unlock()

	assert.Equal(t, "Haircut - Jan Kowalski", ev.Summary)
	assert.Contains(t, ev.Description, "Booking: #1")
	assert.Contains(t, ev.Description, "Notes: first visit")
	assert.Equal(t, "jan@example.com", ev.Attendee)
	assert.Equal(t, 30*time.Minute, ev.End.Sub(ev.Start))

	// Give the worker a beat to persist the returned event id.
	assert.Eventually(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		return repo.eventID == "evt-1"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDispatcherRemove(t *testing.T) {
	client := newFakeClient(false)
	repo := &stubBookingRepo{booking: testBooking()}

	d := NewDispatcher(client, repo)
	d.Dispatch(Task{Kind: TaskRemove, BookingID: 1, EventID: "evt-9"})

	waitDone(t, client)

	client.mu.Lock()
	assert.Equal(t, []string{"evt-9"}, client.deletes)
	client.mu.Unlock()
}

func TestDispatcherFailureIsSwallowed(t *testing.T) {
	client := newFakeClient(true)
	repo := &stubBookingRepo{booking: testBooking()}

	d := NewDispatcher(client, repo)

	// Dispatch returns immediately and the failure stays in the worker.
	d.Dispatch(Task{Kind: TaskUpsert, BookingID: 1})
	waitDone(t, client)

	repo.mu.Lock()
	assert.Empty(t, repo.eventID)
	repo.mu.Unlock()
}

func TestDispatcherNilClientNoops(t *testing.T) {
	d := NewDispatcher(nil, &stubBookingRepo{})
	assert.NotPanics(t, func() {
		d.Dispatch(Task{Kind: TaskUpsert, BookingID: 1})
	})
}
