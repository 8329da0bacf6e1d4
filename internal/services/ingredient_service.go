package services

import (
	"context"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/dao"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
)

type IngredientService interface {
	GetAllIngredients(ctx context.Context) ([]models.Ingredient, error)
	CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error
	// DeleteIngredient removes the ingredient; its pizza links go with it
	DeleteIngredient(ctx context.Context, id uint) error
}

type ingredientService struct {
	store *dao.Store
}

func NewIngredientService(store *dao.Store) IngredientService {
	return &ingredientService{store: store}
}

func (s *ingredientService) GetAllIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return s.store.Ingredients.FindAll(ctx)
}

func (s *ingredientService) CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error {
	ingredient.ID = 0
	return s.store.Transaction(ctx, func(tx *dao.Store) error {
		return tx.Ingredients.Create(ctx, ingredient)
	})
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id uint) error {
	return s.store.Transaction(ctx, func(tx *dao.Store) error {
		if err := tx.PizzaIngredients.DeleteByIngredientID(ctx, id); err != nil {
			return err
		}
		return tx.Ingredients.Delete(ctx, id)
	})
}
