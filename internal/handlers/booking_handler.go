package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
	"github.com/WhiteWolfWCY/Trimly/internal/httpresp"
	"github.com/WhiteWolfWCY/Trimly/internal/timezone"
	usecase "github.com/WhiteWolfWCY/Trimly/internal/usecase/booking"
)

type BookingHandler struct {
	slots        *usecase.GetAvailableSlotsUseCase
	hairdressers *usecase.ListHairdressersUseCase
}

func NewBookingHandler(
	slots *usecase.GetAvailableSlotsUseCase,
	hairdressers *usecase.ListHairdressersUseCase,
) *BookingHandler {
	return &BookingHandler{slots: slots, hairdressers: hairdressers}
}

// GET /api/bookings/hairdressers
func (h *BookingHandler) ListHairdressers(c *gin.Context) {
	list, err := h.hairdressers.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, list)
}

// GET /api/bookings/availability?date=2026-03-02&service_id=1&hairdresser_id=2
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	date, err := timezone.ParseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "validation_error", "date must be YYYY-MM-DD")
		return
	}

	serviceID, ok := parseOptionalUintQuery(c, "service_id")
	if !ok {
		return
	}
	hairdresserID, ok := parseOptionalUintQuery(c, "hairdresser_id")
	if !ok {
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), domain.AvailabilityInput{
		Date:          date,
		ServiceID:     serviceID,
		HairdresserID: hairdresserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, slots)
}
