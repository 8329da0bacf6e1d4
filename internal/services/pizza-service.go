package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/dao"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/sirupsen/logrus"
)

// PizzaService provides the catalog operations
type PizzaService interface {
	// GetAllPizzas retrieves every pizza with its ingredients
	GetAllPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(ctx context.Context, id uint) (*models.Pizza, error)
	// FindByName retrieves the pizzas named exactly name
	FindByName(ctx context.Context, name string) ([]models.Pizza, error)
	// CreatePizza stores a new pizza and links it to the given ingredients
	CreatePizza(ctx context.Context, pizza *models.Pizza, ingredientIDs []uint) (*models.Pizza, error)
	// UpdatePizza applies a patch to an existing pizza. A nil ingredientIDs keeps the current ingredients.
	UpdatePizza(ctx context.Context, id uint, patch models.DTO, ingredientIDs []uint) (*models.Pizza, error)
	// DeletePizza deletes a pizza and its ingredient links
	DeletePizza(ctx context.Context, id uint) error
}

type pizzaService struct {
	store *dao.Store
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(store *dao.Store) PizzaService {
	return &pizzaService{store: store}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	return s.store.Pizzas.FindAllWithIngredients(ctx)
}

func (s *pizzaService) GetPizzaByID(ctx context.Context, id uint) (*models.Pizza, error) {
	return s.store.Pizzas.FindByIDWithIngredients(ctx, id)
}

func (s *pizzaService) FindByName(ctx context.Context, name string) ([]models.Pizza, error) {
	return s.store.Pizzas.FindByName(ctx, name)
}

func (s *pizzaService) CreatePizza(ctx context.Context, pizza *models.Pizza, ingredientIDs []uint) (*models.Pizza, error) {
	pizza.ID = 0
	pizza.Ingredients = nil
	var created *models.Pizza
	err := s.store.Transaction(ctx, func(tx *dao.Store) error {
		if err := tx.Pizzas.Create(ctx, pizza); err != nil {
			return err
		}
		if err := linkIngredients(ctx, tx, pizza.ID, ingredientIDs); err != nil {
			return err
		}
		var err error
		created, err = tx.Pizzas.FindByIDWithIngredients(ctx, pizza.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"pizza_id": created.ID, "name": created.Name}).Info("Pizza created")
	return created, nil
}

func (s *pizzaService) UpdatePizza(ctx context.Context, id uint, patch models.DTO, ingredientIDs []uint) (*models.Pizza, error) {
	var updated *models.Pizza
	err := s.store.Transaction(ctx, func(tx *dao.Store) error {
		existing, err := tx.Pizzas.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := existing.ApplyDTO(patch); err != nil {
			return err
		}
		existing.ID = id
		if err := tx.Pizzas.Update(ctx, id, existing); err != nil {
			return err
		}
		if ingredientIDs != nil {
			if err := tx.PizzaIngredients.DeleteByPizzaID(ctx, id); err != nil {
				return err
			}
			if err := linkIngredients(ctx, tx, id, ingredientIDs); err != nil {
				return err
			}
		}
		updated, err = tx.Pizzas.FindByIDWithIngredients(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.WithField("pizza_id", id).Info("Pizza updated")
	return updated, nil
}

func (s *pizzaService) DeletePizza(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx *dao.Store) error {
		if _, err := tx.Pizzas.FindByID(ctx, id); err != nil {
			return err
		}
		if err := tx.PizzaIngredients.DeleteByPizzaID(ctx, id); err != nil {
			return err
		}
		return tx.Pizzas.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	log.WithField("pizza_id", id).Info("Pizza deleted")
	return nil
}

// linkIngredients creates one association row per distinct ingredient id.
// Every id must reference an existing ingredient.
func linkIngredients(ctx context.Context, tx *dao.Store, pizzaID uint, ingredientIDs []uint) error {
	ids := uniqueIDs(ingredientIDs)
	if len(ids) == 0 {
		return nil
	}
	found, err := tx.Ingredients.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		known := make(map[uint]bool, len(found))
		for _, ingredient := range found {
			known[ingredient.ID] = true
		}
		for _, id := range ids {
			if !known[id] {
				return models.NewIntegrityError(fmt.Sprintf("ingredient %d does not exist", id), nil)
			}
		}
	}
	for _, id := range ids {
		if err := tx.PizzaIngredients.Create(ctx, &models.PizzaIngredient{PizzaID: pizzaID, IngredientID: id}); err != nil {
			return err
		}
	}
	return nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
