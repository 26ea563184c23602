package report

import (
	"context"
	"math"
	"sort"
	"strconv"
	"time"

	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
)

// ===============================
// Admin Reports
// ===============================

type EntityStat struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Bookings int     `json:"bookings"`
	Income   float64 `json:"income"`
}

type WeekdayStat struct {
	Day      string `json:"day"`
	Bookings int    `json:"bookings"`
}

type Report struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	TotalBookings int `json:"total_bookings"`
	Booked        int `json:"booked"`
	Cancelled     int `json:"cancelled"`
	Past          int `json:"past"`

	// TotalIncome sums service prices of booked and past appointments;
	// cancellations contribute nothing.
	TotalIncome float64 `json:"total_income"`

	AvgBookingsPerDay float64 `json:"avg_bookings_per_day"`

	PopularHairdressers []EntityStat  `json:"popular_hairdressers"`
	PopularServices     []EntityStat  `json:"popular_services"`
	PopularWeekdays     []WeekdayStat `json:"popular_weekdays"`
}

type GenerateReportUseCase struct {
	repo domain.Repository
}

func NewGenerateReportUseCase(repo domain.Repository) *GenerateReportUseCase {
	return &GenerateReportUseCase{repo: repo}
}

func (u *GenerateReportUseCase) Execute(
	ctx context.Context,
	from time.Time,
	to time.Time,
) (*Report, error) {

	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, httperr.ErrBusiness("validation_error")
	}

	bookings, err := u.repo.ListBookingsForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	rep := &Report{From: from, To: to, TotalBookings: len(bookings)}

	hairdressers := map[uint]*EntityStat{}
	services := map[uint]*EntityStat{}
	weekdays := map[domain.DayOfWeek]int{}

	for _, b := range bookings {
		switch domain.Status(b.Status) {
		case domain.StatusBooked:
			rep.Booked++
		case domain.StatusCancelled:
			rep.Cancelled++
		case domain.StatusPast:
			rep.Past++
		}

		if domain.Status(b.Status) == domain.StatusCancelled {
			continue
		}

		price := parsePrice(b.Service.Price)
		rep.TotalIncome += price
		weekdays[domain.DayOfWeekFor(b.AppointmentDate)]++

		h, ok := hairdressers[b.HairdresserID]
		if !ok {
			h = &EntityStat{
				ID:   b.HairdresserID,
				Name: b.Hairdresser.FirstName + " " + b.Hairdresser.LastName,
			}
			hairdressers[b.HairdresserID] = h
		}
		h.Bookings++
		h.Income += price

		s, ok := services[b.ServiceID]
		if !ok {
			s = &EntityStat{ID: b.ServiceID, Name: b.Service.Name}
			services[b.ServiceID] = s
		}
		s.Bookings++
		s.Income += price
	}

	// Partial days count as whole ones; a same-instant period counts as one.
	days := math.Ceil(to.Sub(from).Hours() / 24)
	if days < 1 {
		days = 1
	}
	rep.AvgBookingsPerDay = float64(rep.TotalBookings) / days

	rep.PopularHairdressers = sortedStats(hairdressers)
	rep.PopularServices = sortedStats(services)

	for _, d := range domain.Week {
		if n := weekdays[d]; n > 0 {
			rep.PopularWeekdays = append(rep.PopularWeekdays, WeekdayStat{
				Day:      string(d),
				Bookings: n,
			})
		}
	}
	sort.SliceStable(rep.PopularWeekdays, func(i, j int) bool {
		return rep.PopularWeekdays[i].Bookings > rep.PopularWeekdays[j].Bookings
	})

	return rep, nil
}

func sortedStats(m map[uint]*EntityStat) []EntityStat {
	stats := make([]EntityStat, 0, len(m))
	for _, s := range m {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Bookings != stats[j].Bookings {
			return stats[i].Bookings > stats[j].Bookings
		}
		return stats[i].ID < stats[j].ID
	})
	return stats
}

// parsePrice reads the numeric column's string form; malformed values
// count as zero instead of failing the whole report.
func parsePrice(raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
