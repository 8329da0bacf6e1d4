package database

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedOptions controls the initial data written at startup
type SeedOptions struct {
	AdminUsername string
	AdminPassword string
	// DemoCatalog seeds ingredients and pizzas when the catalog is empty
	DemoCatalog bool
}

// Seed makes sure the admin account exists and optionally fills an empty catalog
func Seed(db *gorm.DB, opts SeedOptions) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedAdmin(tx, opts); err != nil {
			return err
		}
		if !opts.DemoCatalog {
			return nil
		}

		var count int64
		if err := tx.Model(&models.Pizza{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Info("Database already seeded with initial data")
			return nil
		}
		log.Info("Database is empty, seeding initial data")
		return seedCatalog(tx)
	})
}

func seedAdmin(tx *gorm.DB, opts SeedOptions) error {
	if opts.AdminUsername == "" || opts.AdminPassword == "" {
		log.Warn("Admin credentials not configured, skipping admin seeding")
		return nil
	}

	var existing models.User
	err := tx.Where("username = ?", opts.AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := models.User{Username: opts.AdminUsername, Role: models.RoleAdmin}
	if err := admin.SetPassword(opts.AdminPassword); err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := tx.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	log.WithField("username", admin.Username).Info("Admin user created")
	return nil
}

func seedCatalog(tx *gorm.DB) error {
	names := []string{"Tomato Sauce", "Mozzarella", "Basil", "Pepperoni", "Bell Peppers", "Olives"}
	ingredients := make(map[string]models.Ingredient, len(names))
	for _, name := range names {
		ingredient := models.Ingredient{Name: name}
		if err := tx.Create(&ingredient).Error; err != nil {
			return err
		}
		ingredients[name] = ingredient
	}

	pick := func(names ...string) []models.Ingredient {
		out := make([]models.Ingredient, 0, len(names))
		for _, name := range names {
			out = append(out, ingredients[name])
		}
		return out
	}

	pizzas := []models.Pizza{
		{Name: "Margherita", Description: "Classic tomato and mozzarella", Price: decimal.RequireFromString("10.99"), Size: models.SizeMedium,
			Ingredients: pick("Tomato Sauce", "Mozzarella", "Basil")},
		{Name: "Pepperoni", Description: "Spicy pepperoni", Price: decimal.RequireFromString("12.99"), Size: models.SizeLarge,
			Ingredients: pick("Tomato Sauce", "Mozzarella", "Pepperoni")},
		{Name: "Vegetarian", Description: "Peppers and olives", Price: decimal.RequireFromString("11.99"), Size: models.SizeMedium,
			Ingredients: pick("Tomato Sauce", "Mozzarella", "Bell Peppers", "Olives")},
	}
	for i := range pizzas {
		if err := tx.Create(&pizzas[i]).Error; err != nil {
			return err
		}
	}
	log.WithFields(logrus.Fields{
		"ingredients": len(ingredients),
		"pizzas":      len(pizzas),
	}).Info("Database seeded successfully")
	return nil
}
