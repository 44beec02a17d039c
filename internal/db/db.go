package db

import (
	"log"
	"time"

	"github.com/HuongNguyenDev/beautycare-admin/internal/config"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
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
		&models.Service{},
		&models.Employee{},
		&models.Appointment{},
		&models.Review{},
		&models.DiplomaBook{},
		&models.Diploma{},
		&models.GraduationDecision{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// books from before the counter column existed start over at "not issued"
	db.Exec(`
        UPDATE diploma_books
        SET current_entry_number = 0
        WHERE current_entry_number IS NULL
    `)

	return db
}
