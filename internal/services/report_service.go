package services

import (
	"context"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/dao"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/reports"
)

// ReportService loads the full order and pizza sets and hands them to the reports package
type ReportService interface {
	OrderStats(ctx context.Context) (reports.Stats, error)
	PopularPizzas(ctx context.Context, limit int) ([]reports.PizzaCount, error)
	ActiveUsers(ctx context.Context) ([]reports.UserActivity, error)
	RecentOrders(ctx context.Context, limit int) ([]models.Order, error)
	PizzasByPrice(ctx context.Context) ([]models.Pizza, error)
}

type reportService struct {
	store *dao.Store
}

func NewReportService(store *dao.Store) ReportService {
	return &reportService{store: store}
}

func (s *reportService) OrderStats(ctx context.Context) (reports.Stats, error) {
	orders, err := s.store.Orders.FindAll(ctx)
	if err != nil {
		return reports.Stats{}, err
	}
	return reports.OrderStats(orders), nil
}

func (s *reportService) PopularPizzas(ctx context.Context, limit int) ([]reports.PizzaCount, error) {
	orders, err := s.store.Orders.FindAllWithPizzas(ctx)
	if err != nil {
		return nil, err
	}
	return reports.PopularPizzas(orders, limit), nil
}

func (s *reportService) ActiveUsers(ctx context.Context) ([]reports.UserActivity, error) {
	orders, err := s.store.Orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return reports.ActiveUsers(orders), nil
}

func (s *reportService) RecentOrders(ctx context.Context, limit int) ([]models.Order, error) {
	orders, err := s.store.Orders.FindAllWithPizzas(ctx)
	if err != nil {
		return nil, err
	}
	return reports.RecentOrders(orders, limit), nil
}

func (s *reportService) PizzasByPrice(ctx context.Context) ([]models.Pizza, error) {
	pizzas, err := s.store.Pizzas.FindAllWithIngredients(ctx)
	if err != nil {
		return nil, err
	}
	return reports.PizzasByPrice(pizzas), nil
}
