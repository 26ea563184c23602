package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/WhiteWolfWCY/Trimly/internal/clock"
	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
	usecase "github.com/WhiteWolfWCY/Trimly/internal/usecase/booking"
)

type stubSweepRepo struct {
	domain.Repository
	marked int64
}

func (s *stubSweepRepo) MarkPastBookings(ctx context.Context, now time.Time) (int64, error) {
	return s.marked, nil
}

func cronRouter(secret string, marked int64) *gin.Engine {
	gin.SetMode(gin.TestMode)

	sweep := usecase.NewSweepPastBookingsUseCase(
		&stubSweepRepo{marked: marked},
		nil,
		clock.Fixed{T: time.Now()},
	)
	h := NewCronHandler(sweep, secret)

	r := gin.New()
	r.POST("/api/cron/update-past-visits", h.UpdatePastVisits)
	return r
}

func TestCronEndpoint(t *testing.T) {
	t.Run("valid secret", func(t *testing.T) {
		r := cronRouter("s3cret", 3)

		req := httptest.NewRequest(http.MethodPost, "/api/cron/update-past-visits", nil)
		req.Header.Set("Authorization", "Bearer s3cret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"updated":3}`, w.Body.String())
	})

	t.Run("wrong secret", func(t *testing.T) {
		r := cronRouter("s3cret", 0)

		req := httptest.NewRequest(http.MethodPost, "/api/cron/update-past-visits", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		r := cronRouter("s3cret", 0)

		req := httptest.NewRequest(http.MethodPost, "/api/cron/update-past-visits", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("disabled when unconfigured", func(t *testing.T) {
		r := cronRouter("", 0)

		req := httptest.NewRequest(http.MethodPost, "/api/cron/update-past-visits", nil)
		req.Header.Set("Authorization", "Bearer anything")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
