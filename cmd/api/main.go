package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/WhiteWolfWCY/Trimly/internal/cache"
	"github.com/WhiteWolfWCY/Trimly/internal/calendar"
	"github.com/WhiteWolfWCY/Trimly/internal/clock"
	"github.com/WhiteWolfWCY/Trimly/internal/config"
	"github.com/WhiteWolfWCY/Trimly/internal/db"
	"github.com/WhiteWolfWCY/Trimly/internal/handlers"
	"github.com/WhiteWolfWCY/Trimly/internal/infra/repository"
	"github.com/WhiteWolfWCY/Trimly/internal/routes"
	authUC "github.com/WhiteWolfWCY/Trimly/internal/usecase/auth"
	bookingUC "github.com/WhiteWolfWCY/Trimly/internal/usecase/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/usecase/catalog"
	"github.com/WhiteWolfWCY/Trimly/internal/usecase/report"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()
	gormDB := db.NewDB(cfg)
	clk := clock.Real{}

	// ------ Infra ------
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	{
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("redis unavailable, slot cache disabled: %v", err)
			rdb = nil
		}
		cancel()
	}
	slotCache := cache.NewSlotCache(rdb)

	bookingRepo := repository.NewBookingGormRepository(gormDB)
	userRepo := repository.NewUserGormRepository(gormDB)
	catalogRepo := repository.NewCatalogGormRepository(gormDB)

	var calClient calendar.Client
	if cfg.GoogleCalendarID != "" {
		gc, err := calendar.NewGoogleClient(context.Background(), cfg)
		if err != nil {
			log.Printf("calendar sync disabled: %v", err)
		} else {
			calClient = gc
		}
	}
	dispatcher := calendar.NewDispatcher(calClient, bookingRepo)

	// ------ Use cases ------
	registerUC := authUC.NewRegisterUseCase(userRepo, clk)
	loginUC := authUC.NewLoginUseCase(userRepo, cfg.JWTSecret, clk)

	slotsUC := bookingUC.NewGetAvailableSlotsUseCase(bookingRepo, slotCache, clk)
	createUC := bookingUC.NewCreateBookingUseCase(bookingRepo, slotCache, dispatcher, clk)
	cancelUC := bookingUC.NewCancelBookingUseCase(bookingRepo, slotCache, dispatcher, clk)
	rescheduleUC := bookingUC.NewRescheduleBookingUseCase(bookingRepo, slotCache, dispatcher, clk)
	listVisitsUC := bookingUC.NewListUserVisitsUseCase(bookingRepo)
	listAdminUC := bookingUC.NewListAdminBookingsUseCase(bookingRepo)
	listHairdressersUC := bookingUC.NewListHairdressersUseCase(bookingRepo)
	sweepUC := bookingUC.NewSweepPastBookingsUseCase(bookingRepo, slotCache, clk)
	reportUC := report.NewGenerateReportUseCase(bookingRepo)

	manageHairdressers := catalog.NewManageHairdressersUseCase(catalogRepo)
	manageServices := catalog.NewManageServicesUseCase(catalogRepo)

	// ------ HTTP ------
	router := gin.Default()
	routes.Setup(router, routes.Deps{
		Auth:         handlers.NewAuthHandler(registerUC, loginUC, userRepo),
		Bookings:     handlers.NewBookingHandler(slotsUC, listHairdressersUC),
		Visits:       handlers.NewVisitsHandler(createUC, cancelUC, rescheduleUC, listVisitsUC),
		Hairdressers: handlers.NewHairdresserHandler(manageHairdressers),
		Services:     handlers.NewServiceHandler(manageServices),
		Admin:        handlers.NewAdminHandler(listAdminUC, reportUC),
		Cron:         handlers.NewCronHandler(sweepUC, cfg.CronSecret),
		JWTSecret:    cfg.JWTSecret,
	})

	log.Printf("listening on %s", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
