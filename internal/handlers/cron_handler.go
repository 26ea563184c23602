package handlers

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
	"github.com/WhiteWolfWCY/Trimly/internal/httpresp"
	usecase "github.com/WhiteWolfWCY/Trimly/internal/usecase/booking"
)

type CronHandler struct {
	sweep  *usecase.SweepPastBookingsUseCase
	secret string
}

func NewCronHandler(sweep *usecase.SweepPastBookingsUseCase, secret string) *CronHandler {
	return &CronHandler{sweep: sweep, secret: secret}
}

// POST /api/cron/update-past-visits
// Guarded by a shared secret instead of a user token; the scheduler is
// not a user.
func (h *CronHandler) UpdatePastVisits(c *gin.Context) {
	if h.secret == "" {
		httperr.Forbidden(c, "unauthorized", "cron endpoint disabled")
		return
	}

	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) != 1 {
		httperr.Unauthorized(c, "unauthorized", "invalid cron secret")
		return
	}

	marked, err := h.sweep.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"updated": marked})
}
