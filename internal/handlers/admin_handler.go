package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
	"github.com/WhiteWolfWCY/Trimly/internal/httpresp"
	"github.com/WhiteWolfWCY/Trimly/internal/timezone"
	usecase "github.com/WhiteWolfWCY/Trimly/internal/usecase/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/usecase/report"
)

type AdminHandler struct {
	bookings *usecase.ListAdminBookingsUseCase
	reports  *report.GenerateReportUseCase
}

func NewAdminHandler(
	bookings *usecase.ListAdminBookingsUseCase,
	reports *report.GenerateReportUseCase,
) *AdminHandler {
	return &AdminHandler{bookings: bookings, reports: reports}
}

// GET /api/admin/bookings?status=booked&date=2026-03-02&search=kowalski
func (h *AdminHandler) ListBookings(c *gin.Context) {
	filter := domain.AdminFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	if raw := c.Query("date"); raw != "" {
		date, err := timezone.ParseDate(raw)
		if err != nil {
			httperr.BadRequest(c, "validation_error", "date must be YYYY-MM-DD")
			return
		}
		filter.Date = &date
	}

	bookings, err := h.bookings.Execute(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

// GET /api/admin/reports?from=2026-03-01&to=2026-03-31
func (h *AdminHandler) GenerateReport(c *gin.Context) {
	from, err := timezone.ParseDate(c.Query("from"))
	if err != nil {
		httperr.BadRequest(c, "validation_error", "from must be YYYY-MM-DD")
		return
	}

	to, err := timezone.ParseDate(c.Query("to"))
	if err != nil {
		httperr.BadRequest(c, "validation_error", "to must be YYYY-MM-DD")
		return
	}

	// Include the whole closing day.
	to = to.Add(24*time.Hour - time.Nanosecond)

	rep, err := h.reports.Execute(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, rep)
}
