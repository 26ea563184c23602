package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/WhiteWolfWCY/Trimly/internal/handlers"
	"github.com/WhiteWolfWCY/Trimly/internal/middleware"
)

type Deps struct {
	Auth         *handlers.AuthHandler
	Bookings     *handlers.BookingHandler
	Visits       *handlers.VisitsHandler
	Hairdressers *handlers.HairdresserHandler
	Services     *handlers.ServiceHandler
	Admin        *handlers.AdminHandler
	Cron         *handlers.CronHandler

	JWTSecret string
}

func Setup(r *gin.Engine, d Deps) {
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// ------ Public ------
	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/login", d.Auth.Login)

	api.GET("/services", d.Services.List)
	api.GET("/bookings/hairdressers", d.Bookings.ListHairdressers)
	api.GET("/bookings/availability", d.Bookings.GetAvailability)

	// ------ Scheduler ------
	api.POST("/cron/update-past-visits", d.Cron.UpdatePastVisits)

	// ------ Authenticated ------
	authed := api.Group("")
	authed.Use(middleware.Auth(d.JWTSecret))

	authed.GET("/auth/me", d.Auth.Me)

	authed.POST("/visits", d.Visits.Create)
	authed.GET("/visits", d.Visits.List)
	authed.PATCH("/visits/:id/cancel", d.Visits.Cancel)
	authed.PATCH("/visits/:id/reschedule", d.Visits.Reschedule)

	// ------ Admin ------
	admin := authed.Group("/admin")
	admin.Use(middleware.AdminOnly())

	admin.GET("/bookings", d.Admin.ListBookings)
	admin.GET("/reports", d.Admin.GenerateReport)

	admin.POST("/hairdressers", d.Hairdressers.Create)
	admin.PUT("/hairdressers/:id", d.Hairdressers.Update)
	admin.DELETE("/hairdressers/:id", d.Hairdressers.Delete)
	admin.PUT("/hairdressers/:id/availability", d.Hairdressers.SetAvailability)

	admin.POST("/services", d.Services.Create)
	admin.PUT("/services/:id", d.Services.Update)
	admin.DELETE("/services/:id", d.Services.Delete)
}
