package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
	"github.com/WhiteWolfWCY/Trimly/internal/httpresp"
	"github.com/WhiteWolfWCY/Trimly/internal/middleware"
	"github.com/WhiteWolfWCY/Trimly/internal/models"
	"github.com/WhiteWolfWCY/Trimly/internal/timezone"
	usecase "github.com/WhiteWolfWCY/Trimly/internal/usecase/booking"
)

type VisitsHandler struct {
	create     *usecase.CreateBookingUseCase
	cancel     *usecase.CancelBookingUseCase
	reschedule *usecase.RescheduleBookingUseCase
	list       *usecase.ListUserVisitsUseCase
}

func NewVisitsHandler(
	create *usecase.CreateBookingUseCase,
	cancel *usecase.CancelBookingUseCase,
	reschedule *usecase.RescheduleBookingUseCase,
	list *usecase.ListUserVisitsUseCase,
) *VisitsHandler {
	return &VisitsHandler{
		create:     create,
		cancel:     cancel,
		reschedule: reschedule,
		list:       list,
	}
}

type createVisitRequest struct {
	HairdresserID   uint   `json:"hairdresser_id" binding:"required"`
	ServiceID       uint   `json:"service_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	Notes           string `json:"notes"`
}

// POST /api/visits
func (h *VisitsHandler) Create(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "missing caller identity")
		return
	}

	var req createVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", err.Error())
		return
	}

	date, err := timezone.ParseDateTime(req.AppointmentDate)
	if err != nil {
		httperr.BadRequest(c, "validation_error", "appointment_date must be RFC3339")
		return
	}

	booking, err := h.create.Execute(c.Request.Context(), &models.Booking{
		UserID:          caller.UserID,
		HairdresserID:   req.HairdresserID,
		ServiceID:       req.ServiceID,
		AppointmentDate: date,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GET /api/visits
func (h *VisitsHandler) List(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "missing caller identity")
		return
	}

	visits, err := h.list.Execute(c.Request.Context(), caller.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, visits)
}

type cancelVisitRequest struct {
	Reason string `json:"reason"`
}

// PATCH /api/visits/:id/cancel
func (h *VisitsHandler) Cancel(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "missing caller identity")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req cancelVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		httperr.BadRequest(c, "validation_error", err.Error())
		return
	}

	booking, err := h.cancel.Execute(c.Request.Context(), caller, id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, booking)
}

type rescheduleVisitRequest struct {
	AppointmentDate string `json:"appointment_date" binding:"required"`
	ServiceID       uint   `json:"service_id"`
	HairdresserID   uint   `json:"hairdresser_id"`
	Reason          string `json:"reason"`
}

// PATCH /api/visits/:id/reschedule
func (h *VisitsHandler) Reschedule(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "missing caller identity")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req rescheduleVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", err.Error())
		return
	}

	date, err := timezone.ParseDateTime(req.AppointmentDate)
	if err != nil {
		httperr.BadRequest(c, "validation_error", "appointment_date must be RFC3339")
		return
	}

	booking, err := h.reschedule.Execute(c.Request.Context(), caller, usecase.RescheduleInput{
		BookingID:        id,
		NewDate:          date,
		NewServiceID:     req.ServiceID,
		NewHairdresserID: req.HairdresserID,
		Reason:           req.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, booking)
}
