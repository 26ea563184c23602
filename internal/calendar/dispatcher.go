package calendar

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/models"
)

type TaskKind string

const (
	TaskUpsert TaskKind = "upsert"
	TaskRemove TaskKind = "remove"
)

type Task struct {
	Kind      TaskKind
	BookingID uint

	// EventID is carried on removals; the booking row may be gone or
	// already rewritten by then.
	EventID string
}

// Dispatcher decouples calendar sync from booking mutations: tasks go
// through a buffered queue and a single worker goroutine. A full queue
// drops the task — the API never blocks on the calendar.
type Dispatcher struct {
	client Client
	repo   domain.Repository
	queue  chan Task
}

func NewDispatcher(client Client, repo domain.Repository) *Dispatcher {
	d := &Dispatcher{
		client: client,
		repo:   repo,
		queue:  make(chan Task, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) Dispatch(task Task) {
	if d.client == nil {
		// Integration not configured.
		return
	}

	select {
	case d.queue <- task:
	default:
		log.Println("calendar queue full, dropping task")
	}
}

func (d *Dispatcher) worker() {
	for task := range d.queue {
		taskID := uuid.NewString()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := d.run(ctx, task); err != nil {
			log.Printf("calendar sync %s failed (task=%s booking=%d): %v",
				task.Kind, taskID, task.BookingID, err)
		}
		cancel()
	}
}

func (d *Dispatcher) run(ctx context.Context, task Task) error {
	if task.Kind == TaskRemove {
		if task.EventID == "" {
			return nil
		}
		if err := d.client.DeleteEvent(ctx, task.EventID); err != nil {
			return err
		}
		return d.repo.SetCalendarEventID(ctx, task.BookingID, "")
	}

	b, err := d.repo.GetBookingByID(ctx, task.BookingID)
	if err != nil {
		return err
	}

	event, err := d.buildEvent(ctx, b)
	if err != nil {
		return err
	}

	eventID, err := d.client.UpsertEvent(ctx, b.CalendarEventID, event)
	if err != nil {
		return err
	}

	if eventID != b.CalendarEventID {
		return d.repo.SetCalendarEventID(ctx, b.ID, eventID)
	}
	return nil
}

func (d *Dispatcher) buildEvent(ctx context.Context, b *models.Booking) (Event, error) {
	service, err := d.repo.GetServiceByID(ctx, b.ServiceID)
	if err != nil {
		return Event{}, err
	}

	hairdresser, err := d.repo.GetHairdresserByID(ctx, b.HairdresserID)
	if err != nil {
		return Event{}, err
	}

	user, err := d.repo.GetUserByID(ctx, b.UserID)
	if err != nil {
		return Event{}, err
	}

	interval := domain.NewInterval(b.AppointmentDate, service.TimeRequired)

	return BuildEvent(
		b.ID,
		service.Name,
		hairdresser.FirstName+" "+hairdresser.LastName,
		user.FirstName+" "+user.LastName,
		user.Email,
		b.Notes,
		interval.Start,
		interval.End,
	), nil
}
