package dao

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"gorm.io/gorm"
)

// PizzaDAO adds catalog lookups to the generic pizza DAO
type PizzaDAO struct {
	*GenericDAO[models.Pizza]
}

func NewPizzaDAO(db *gorm.DB) *PizzaDAO {
	return &PizzaDAO{GenericDAO: NewGenericDAO[models.Pizza](db)}
}

func (d *PizzaDAO) WithTx(tx *gorm.DB) *PizzaDAO {
	return &PizzaDAO{GenericDAO: d.GenericDAO.WithTx(tx)}
}

// FindAllWithIngredients returns the whole catalog in id order with ingredients loaded
func (d *PizzaDAO) FindAllWithIngredients(ctx context.Context) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := d.DB(ctx).Preload("Ingredients").Order("id").Find(&pizzas).Error; err != nil {
		return nil, translateError(err, "pizza")
	}
	return pizzas, nil
}

// FindByIDWithIngredients loads one pizza together with its ingredients
func (d *PizzaDAO) FindByIDWithIngredients(ctx context.Context, id uint) (*models.Pizza, error) {
	var pizza models.Pizza
	if err := d.DB(ctx).Preload("Ingredients").First(&pizza, id).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("pizza %d", id))
	}
	return &pizza, nil
}

// FindByName returns the pizzas whose name equals name exactly (case-sensitive)
func (d *PizzaDAO) FindByName(ctx context.Context, name string) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := d.DB(ctx).Preload("Ingredients").Where("name = ?", name).Order("id").Find(&pizzas).Error; err != nil {
		return nil, translateError(err, "pizza")
	}
	return pizzas, nil
}
