package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
	"github.com/WhiteWolfWCY/Trimly/internal/httpresp"
	"github.com/WhiteWolfWCY/Trimly/internal/usecase/catalog"
)

type HairdresserHandler struct {
	manage *catalog.ManageHairdressersUseCase
}

func NewHairdresserHandler(manage *catalog.ManageHairdressersUseCase) *HairdresserHandler {
	return &HairdresserHandler{manage: manage}
}

// POST /api/admin/hairdressers
func (h *HairdresserHandler) Create(c *gin.Context) {
	var in catalog.HairdresserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "validation_error", err.Error())
		return
	}

	created, err := h.manage.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// PUT /api/admin/hairdressers/:id
func (h *HairdresserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var in catalog.HairdresserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "validation_error", err.Error())
		return
	}

	updated, err := h.manage.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, updated)
}

// DELETE /api/admin/hairdressers/:id
func (h *HairdresserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.manage.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PUT /api/admin/hairdressers/:id/availability
func (h *HairdresserHandler) SetAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var windows []catalog.WindowInput
	if err := c.ShouldBindJSON(&windows); err != nil {
		httperr.BadRequest(c, "validation_error", err.Error())
		return
	}

	updated, err := h.manage.SetAvailability(c.Request.Context(), id, windows)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, updated)
}
