package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"marketplace/internal/models"
)

// Open connects to the SQLite database at path, runs migrations and seeds
// reference data. Pass ":memory:" for an ephemeral database in tests.
func Open(path string) (*gorm.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("database: create directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		// SQLite does not get real foreign key constraints; cascades are
		// handled explicitly in the repositories.
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("database: connect sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: get underlying connection: %w", err)
	}
	// SQLite supports a single writer; see github.com/glebarez/sqlite#52
	sqlDB.SetMaxOpenConns(1)

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// AutoMigrate creates or updates the schema and seeds default categories.
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Conversation{}, "Members", &models.ConversationMember{}); err != nil {
		return fmt.Errorf("database: set up conversation members join table: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Item{},
		&models.ItemImage{},
		&models.Conversation{},
		&models.ConversationMessage{},
	)
	if err != nil {
		return fmt.Errorf("database: migrate tables: %w", err)
	}

	return seedCategories(db)
}

// seedCategories inserts the default category set when the table is empty.
// Categories are admin-managed afterwards.
func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("database: count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []models.Category{
		{Name: "Books"},
		{Name: "Clothing"},
		{Name: "Electronics"},
		{Name: "Furniture"},
		{Name: "Vehicles"},
		{Name: "Other"},
	}
	if err := db.Create(&defaults).Error; err != nil {
		return fmt.Errorf("database: seed categories: %w", err)
	}
	return nil
}
