package db

import (
	"fmt" // Error wrapping

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/gorm"               // GORM ORM library

	"trivia_backend/internal/domain" // Account model
)

// mysqlTableOptions gives usernames a binary collation so "Pooja" and "pooja"
// are distinct accounts
const mysqlTableOptions = "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin"

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == DriverMySQL {
		db = db.Set("gorm:table_options", mysqlTableOptions)
	}
	// AutoMigrate will create the accounts table and its unique username index
	if err := db.AutoMigrate(&domain.Account{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logrus.WithField("driver", db.Dialector.Name()).Info("Migration completed.") // Log successful migration
	return nil
}
