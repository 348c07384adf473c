package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gamestore/models"
)

// Init opens the postgres connection and migrates the schema. The two join
// relations (cart_games, owned_games) are created through the many2many
// mappings on AppUser.
func Init(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err := database.AutoMigrate(&models.AppUser{}, &models.Game{}, &models.Category{}); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return database, nil
}
