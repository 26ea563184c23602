package handlers

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
)

// respondError maps business codes onto HTTP statuses; anything without a
// code is an infrastructure failure and stays opaque to the client.
func respondError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "validation_error", "past_date", "service_not_offered":
		httperr.BadRequest(c, code, err.Error())
	case "not_found":
		httperr.NotFound(c, code, "resource not found")
	case "unauthorized":
		httperr.Forbidden(c, code, "not allowed to modify this booking")
	case "slot_unavailable", "already_cancelled", "cannot_reschedule_cancelled":
		httperr.Conflict(c, code, err.Error())
	default:
		log.Printf("internal error: %v", err)
		httperr.Internal(c, "internal_error", "something went wrong")
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "validation_error", "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func parseOptionalUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "validation_error", "invalid "+name)
		return 0, false
	}
	return uint(v), true
}
