package db

import (
	"log"
	"time"

	"github.com/WhiteWolfWCY/Trimly/internal/config"
	"github.com/WhiteWolfWCY/Trimly/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Hairdresser{},
		&models.Service{},
		&models.AvailabilityWindow{},
		&models.Booking{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        CREATE INDEX IF NOT EXISTS idx_bookings_hairdresser_status_date
        ON bookings (hairdresser_id, status, appointment_date)
    `)

	return db
}
