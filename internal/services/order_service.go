package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/dao"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// OrderService handles order placement and lifecycle
type OrderService interface {
	// CreateOrder places an order for the caller. Unknown pizza ids are skipped;
	// an order without any known pizza is rejected.
	CreateOrder(ctx context.Context, caller models.Identity, pizzaIDs []uint, deliveryAddress string) (*models.Order, error)
	// GetOrder returns an order visible to the caller (owner or admin)
	GetOrder(ctx context.Context, caller models.Identity, id uint) (*models.Order, error)
	// ListOrders returns all orders for admins and the caller's own orders otherwise
	ListOrders(ctx context.Context, caller models.Identity) ([]models.Order, error)
	// CancelOrder deletes an order that has not started preparation
	CancelOrder(ctx context.Context, caller models.Identity, id uint) error
	// UpdateStatus moves an order to a new status (admin only)
	UpdateStatus(ctx context.Context, caller models.Identity, id uint, status string) (*models.Order, error)
}

type orderService struct {
	store *dao.Store
	now   func() time.Time
}

func NewOrderService(store *dao.Store) OrderService {
	return &orderService{store: store, now: time.Now}
}

func (s *orderService) CreateOrder(ctx context.Context, caller models.Identity, pizzaIDs []uint, deliveryAddress string) (*models.Order, error) {
	var order *models.Order
	err := s.store.Transaction(ctx, func(tx *dao.Store) error {
		user, err := tx.Users.FindByUsername(ctx, caller.Username)
		if err != nil {
			return err
		}

		snapshots := make([]models.OrderPizza, 0, len(pizzaIDs))
		total := decimal.Zero
		for _, id := range pizzaIDs {
			pizza, err := tx.Pizzas.FindByID(ctx, id)
			if err != nil {
				if models.IsKind(err, models.KindNotFound) {
					continue
				}
				return err
			}
			snapshots = append(snapshots, models.SnapshotOf(*pizza))
			total = total.Add(pizza.Price)
		}
		if len(snapshots) == 0 {
			return models.NewValidationError("order must contain at least one existing pizza")
		}

		address := strings.TrimSpace(deliveryAddress)
		if address == "" {
			address = user.Address
		}

		order = &models.Order{
			UserID:          user.ID,
			Username:        user.Username,
			Pizzas:          snapshots,
			TotalPrice:      total,
			Status:          models.StatusNew,
			DeliveryAddress: address,
			// microsecond precision survives every supported store and the DTO layout
			CreatedAt: s.now().UTC().Truncate(time.Microsecond),
		}
		return tx.Orders.CreateWithPizzas(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"order_id":    order.ID,
		"username":    order.Username,
		"pizzas":      len(order.Pizzas),
		"total_price": order.TotalPrice.String(),
	}).Info("Order created")
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, caller models.Identity, id uint) (*models.Order, error) {
	order, err := s.store.Orders.FindByIDWithPizzas(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(order.Username) {
		return nil, models.NewPermissionError("you can only access your own orders")
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, caller models.Identity) ([]models.Order, error) {
	if caller.IsAdmin() {
		return s.store.Orders.FindAllWithPizzas(ctx)
	}
	return s.store.Orders.FindByUsername(ctx, caller.Username)
}

func (s *orderService) CancelOrder(ctx context.Context, caller models.Identity, id uint) error {
	err := s.store.Transaction(ctx, func(tx *dao.Store) error {
		order, err := tx.Orders.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !caller.CanAccess(order.Username) {
			return models.NewPermissionError("you can only cancel your own orders")
		}
		if !order.Status.Cancellable() {
			return models.NewInvalidStateError(fmt.Sprintf("order %d cannot be cancelled in status '%s'", id, order.Status))
		}
		return tx.Orders.DeleteWithPizzas(ctx, id)
	})
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"order_id": id, "by": caller.Username}).Info("Order cancelled")
	return nil
}

func (s *orderService) UpdateStatus(ctx context.Context, caller models.Identity, id uint, status string) (*models.Order, error) {
	if !caller.IsAdmin() {
		return nil, models.NewPermissionError("only admins can change order status")
	}
	newStatus := models.OrderStatus(strings.TrimSpace(status))
	if newStatus == "" {
		return nil, models.NewValidationError("status is required")
	}
	if !newStatus.Valid() {
		return nil, models.NewValidationError(fmt.Sprintf("unknown order status '%s'", status))
	}

	var updated *models.Order
	err := s.store.Transaction(ctx, func(tx *dao.Store) error {
		order, err := tx.Orders.FindByID(ctx, id)
		if err != nil {
			return err
		}
		previous := order.Status
		order.Status = newStatus
		if err := tx.Orders.Update(ctx, id, order); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"order_id": id,
			"from":     previous,
			"to":       newStatus,
		}).Info("Order status updated")
		updated, err = tx.Orders.FindByIDWithPizzas(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
