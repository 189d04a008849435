// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/flipbase/flipbase-backend/internal/config"
	"github.com/flipbase/flipbase-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error

	logLevel := logger.Info
	if cfg.LogLevel == "silent" {
		logLevel = logger.Silent
	}

	// TranslateError turns unique-constraint violations into
	// gorm.ErrDuplicatedKey so conflicts on customer email/phone and
	// user email/username get a distinct response instead of a 500.
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Enable UUID extension
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Bid{},
		&models.Part{},
		&models.PhonePart{},
		&models.AnalyticsSession{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Bid indexes
		"CREATE INDEX IF NOT EXISTS idx_bids_company_status ON bids(company, status)",
		"CREATE INDEX IF NOT EXISTS idx_bids_created_at ON bids(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_bids_sold_date ON bids(sold_date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_bids_for_sale ON bids(status, for_sale)",

		// Part indexes
		"CREATE INDEX IF NOT EXISTS idx_parts_created_at ON parts(created_at DESC)",
		// Closes the derivation race: two concurrent in-stock
		// transitions can both pass the name pre-check, the unique
		// index makes sure only one set of derived rows lands.
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_parts_bid_name ON parts(ordered_for, LOWER(name)) WHERE deleted_at IS NULL",

		// Catalog lookup is exact case-insensitive name match
		"CREATE INDEX IF NOT EXISTS idx_phone_parts_lower_name ON phone_parts(LOWER(name))",

		// Analytics indexes
		"CREATE INDEX IF NOT EXISTS idx_analytics_company_session ON analytics_sessions(company, session_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_analytics_session_start ON analytics_sessions(company, session_start DESC)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// SeedInitialData creates the initial admin account when no admin
// exists yet. The password comes from configuration; seeding is
// skipped when it is unset.
func SeedInitialData(db *gorm.DB, cfg config.AdminConfig) error {
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&adminCount)

	if adminCount > 0 {
		return nil
	}

	if cfg.Password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin user seed")
		return nil
	}

	admin := &models.User{
		Name:     cfg.Name,
		Company:  cfg.Company,
		Email:    cfg.Email,
		Username: cfg.Email,
		Role:     models.UserRoleAdmin,
		Status:   models.UserStatusActive,
	}

	if err := admin.SetPassword(cfg.Password); err != nil {
		return fmt.Errorf("failed to set admin password: %w", err)
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Admin user created: %s", cfg.Email)
	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
