package dao

import (
	"context"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"gorm.io/gorm"
)

type IngredientDAO struct {
	*GenericDAO[models.Ingredient]
}

func NewIngredientDAO(db *gorm.DB) *IngredientDAO {
	return &IngredientDAO{GenericDAO: NewGenericDAO[models.Ingredient](db)}
}

func (d *IngredientDAO) WithTx(tx *gorm.DB) *IngredientDAO {
	return &IngredientDAO{GenericDAO: d.GenericDAO.WithTx(tx)}
}

// FindByIDs returns the ingredients with the given ids; unknown ids are absent from the result
func (d *IngredientDAO) FindByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	if err := d.DB(ctx).Where("id IN ?", ids).Order("id").Find(&ingredients).Error; err != nil {
		return nil, translateError(err, "ingredient")
	}
	return ingredients, nil
}

// PizzaIngredientDAO manages the association rows between pizzas and ingredients
type PizzaIngredientDAO struct {
	*GenericDAO[models.PizzaIngredient]
}

func NewPizzaIngredientDAO(db *gorm.DB) *PizzaIngredientDAO {
	return &PizzaIngredientDAO{GenericDAO: NewGenericDAO[models.PizzaIngredient](db)}
}

func (d *PizzaIngredientDAO) WithTx(tx *gorm.DB) *PizzaIngredientDAO {
	return &PizzaIngredientDAO{GenericDAO: d.GenericDAO.WithTx(tx)}
}

func (d *PizzaIngredientDAO) FindByPizzaID(ctx context.Context, pizzaID uint) ([]models.PizzaIngredient, error) {
	var rows []models.PizzaIngredient
	if err := d.DB(ctx).Where("pizza_id = ?", pizzaID).Order("ingredient_id").Find(&rows).Error; err != nil {
		return nil, translateError(err, "pizza ingredient")
	}
	return rows, nil
}

// DeleteByPizzaID removes every association of a pizza; zero rows is not an error
func (d *PizzaIngredientDAO) DeleteByPizzaID(ctx context.Context, pizzaID uint) error {
	if err := d.DB(ctx).Where("pizza_id = ?", pizzaID).Delete(&models.PizzaIngredient{}).Error; err != nil {
		return translateError(err, "pizza ingredient")
	}
	return nil
}

// DeleteByIngredientID unlinks an ingredient from every pizza; zero rows is not an error
func (d *PizzaIngredientDAO) DeleteByIngredientID(ctx context.Context, ingredientID uint) error {
	if err := d.DB(ctx).Where("ingredient_id = ?", ingredientID).Delete(&models.PizzaIngredient{}).Error; err != nil {
		return translateError(err, "pizza ingredient")
	}
	return nil
}
