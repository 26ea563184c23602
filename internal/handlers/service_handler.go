package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
	"github.com/WhiteWolfWCY/Trimly/internal/httpresp"
	"github.com/WhiteWolfWCY/Trimly/internal/usecase/catalog"
)

type ServiceHandler struct {
	manage *catalog.ManageServicesUseCase
}

func NewServiceHandler(manage *catalog.ManageServicesUseCase) *ServiceHandler {
	return &ServiceHandler{manage: manage}
}

// GET /api/services
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.manage.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, services)
}

// POST /api/admin/services
func (h *ServiceHandler) Create(c *gin.Context) {
	var in catalog.ServiceInput
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

// PUT /api/admin/services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var in catalog.ServiceInput
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

// DELETE /api/admin/services/:id
func (h *ServiceHandler) Delete(c *gin.Context) {
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
