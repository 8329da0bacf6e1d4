package dao

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"gorm.io/gorm"
)

type OrderDAO struct {
	*GenericDAO[models.Order]
}

func NewOrderDAO(db *gorm.DB) *OrderDAO {
	return &OrderDAO{GenericDAO: NewGenericDAO[models.Order](db)}
}

func (d *OrderDAO) WithTx(tx *gorm.DB) *OrderDAO {
	return &OrderDAO{GenericDAO: d.GenericDAO.WithTx(tx)}
}

// CreateWithPizzas inserts the order together with its pizza snapshots
func (d *OrderDAO) CreateWithPizzas(ctx context.Context, order *models.Order) error {
	if err := d.DB(ctx).Create(order).Error; err != nil {
		return translateError(err, "order")
	}
	return nil
}

func (d *OrderDAO) FindAllWithPizzas(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := d.DB(ctx).Preload("Pizzas").Order("id").Find(&orders).Error; err != nil {
		return nil, translateError(err, "order")
	}
	return orders, nil
}

func (d *OrderDAO) FindByIDWithPizzas(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := d.DB(ctx).Preload("Pizzas").First(&order, id).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("order %d", id))
	}
	return &order, nil
}

func (d *OrderDAO) FindByUsername(ctx context.Context, username string) ([]models.Order, error) {
	var orders []models.Order
	if err := d.DB(ctx).Preload("Pizzas").Where("username = ?", username).Order("id").Find(&orders).Error; err != nil {
		return nil, translateError(err, "order")
	}
	return orders, nil
}

// DeleteWithPizzas removes the order and its snapshots
func (d *OrderDAO) DeleteWithPizzas(ctx context.Context, id uint) error {
	if err := d.DB(ctx).Where("order_id = ?", id).Delete(&models.OrderPizza{}).Error; err != nil {
		return translateError(err, "order pizza")
	}
	return d.Delete(ctx, id)
}
