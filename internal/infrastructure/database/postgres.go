package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/flukesan/POS-System/internal/config"
	"github.com/flukesan/POS-System/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Collaborator-owned inputs
		&entity.Product{},
		&entity.Customer{},
		&entity.BankAccount{},

		// Engine-owned entities
		&entity.Order{},
		&entity.OrderItem{},
		&entity.PaymentTransaction{},
		&entity.CreditTransaction{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds a default receiving account when none exists
func SeedDefaultData(db *gorm.DB, cfg *config.PaymentConfig) error {
	if cfg.PromptPayID == "" {
		return nil
	}

	var existing entity.BankAccount
	err := db.Where("is_default = ?", true).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	account := entity.BankAccount{
		BankName:      cfg.BankName,
		AccountName:   cfg.AccountName,
		AccountNumber: cfg.AccountNumber,
		PromptPayID:   cfg.PromptPayID,
		IsActive:      true,
		IsDefault:     true,
	}
	if err := db.Create(&account).Error; err != nil {
		return fmt.Errorf("failed to seed default bank account: %w", err)
	}

	log.Printf("Seeded default receiving account %s", cfg.AccountNumber)
	return nil
}
