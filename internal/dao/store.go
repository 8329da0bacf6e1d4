package dao

import (
	"context"

	"gorm.io/gorm"
)

// Store owns the database handle and one DAO per entity. Services receive a
// Store instead of reaching for package-level state.
type Store struct {
	db               *gorm.DB
	Pizzas           *PizzaDAO
	Ingredients      *IngredientDAO
	PizzaIngredients *PizzaIngredientDAO
	Users            *UserDAO
	Orders           *OrderDAO
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:               db,
		Pizzas:           NewPizzaDAO(db),
		Ingredients:      NewIngredientDAO(db),
		PizzaIngredients: NewPizzaIngredientDAO(db),
		Users:            NewUserDAO(db),
		Orders:           NewOrderDAO(db),
	}
}

// Transaction runs fn with a Store whose DAOs share one transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{
			db:               tx,
			Pizzas:           s.Pizzas.WithTx(tx),
			Ingredients:      s.Ingredients.WithTx(tx),
			PizzaIngredients: s.PizzaIngredients.WithTx(tx),
			Users:            s.Users.WithTx(tx),
			Orders:           s.Orders.WithTx(tx),
		})
	})
}
