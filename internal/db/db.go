package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dvelezmarulanda-coder/barber-platform/internal/config"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/timezone"
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
		&models.Service{},
		&models.Schedule{},
		&models.Appointment{},
		&models.ShopSettings{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedSettings(db)

	return db
}

// La configuración es una fila única; sin ella no se puede agendar.
func seedSettings(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.ShopSettings{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to check settings: %v", err)
	}
	if count > 0 {
		return
	}

	settings := models.ShopSettings{
		Name:              "Barbería",
		Timezone:          timezone.DefaultTimezone,
		MinAdvanceMinutes: 0,
	}
	if err := db.Create(&settings).Error; err != nil {
		log.Fatalf("failed to seed settings: %v", err)
	}
}
