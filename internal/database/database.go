package database

import (
	"aimlink-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB from DSN. PreferSimpleProtocol disables prepared
// statement caching, which breaks behind transaction-mode poolers (42P05,
// "prepared statement already exists").
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

// AutoMigrate runs migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Admin{}, &models.Property{}, &models.Lead{})
}
