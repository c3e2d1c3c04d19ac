package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mindweave/mindweave-api/models"
)

// Database is the shared gorm handle, set by Connect.
var Database *gorm.DB

// Connect opens the database and migrates the saved-map tables. Postgres is
// used when DB_URL is set; otherwise a local sqlite file.
func Connect(environment Environment) error {
	var dialector gorm.Dialector
	if environment.DatabaseURL != "" {
		dialector = postgres.Open(environment.DatabaseURL)
	} else {
		dialector = sqlite.Open(environment.DatabasePath)
	}

	var err error
	Database, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	err = Database.AutoMigrate(
		&models.SavedMindMap{},
		&models.SavedNode{},
		&models.SavedConnection{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate database: %w", err)
	}

	return nil
}
