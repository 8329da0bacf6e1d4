package database

import (
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates every table used by the API
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Pizza{}, "Ingredients", &models.PizzaIngredient{}); err != nil {
		return fmt.Errorf("failed to set up pizza ingredients join table: %w", err)
	}
	err := db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Pizza{},
		&models.PizzaIngredient{},
		&models.Order{},
		&models.OrderPizza{},
		&models.OAuthClient{},
		&models.OAuthCode{},
		&models.OAuthToken{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Debug("Database schema migrated")
	return nil
}
