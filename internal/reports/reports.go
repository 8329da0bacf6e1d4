// Package reports computes statistics over in-memory order and pizza
// collections. Every function is pure: inputs are never modified.
package reports

import (
	"cmp"
	"slices"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/shopspring/decimal"
)

const (
	DefaultPopularLimit = 5
	DefaultRecentLimit  = 10
)

// Stats summarizes the whole order set
type Stats struct {
	TotalOrders        int                        `json:"total_orders"`
	TotalRevenue       decimal.Decimal            `json:"total_revenue"`
	StatusDistribution map[models.OrderStatus]int `json:"status_distribution"`
	AverageOrderValue  decimal.Decimal            `json:"average_order_value"`
}

// PizzaCount is a pizza together with how many times it was ordered
type PizzaCount struct {
	PizzaID uint   `json:"pizza_id"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
}

// UserActivity is the order volume of one user
type UserActivity struct {
	Username   string          `json:"username"`
	OrderCount int             `json:"order_count"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// OrderStats returns totals over all orders. The average is zero when there are no orders.
func OrderStats(orders []models.Order) Stats {
	stats := Stats{
		TotalOrders:        len(orders),
		TotalRevenue:       decimal.Zero,
		StatusDistribution: make(map[models.OrderStatus]int),
		AverageOrderValue:  decimal.Zero,
	}
	for _, order := range orders {
		stats.TotalRevenue = stats.TotalRevenue.Add(order.TotalPrice)
		stats.StatusDistribution[order.Status]++
	}
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue.
			Div(decimal.NewFromInt(int64(stats.TotalOrders))).
			Round(2)
	}
	return stats
}

// PopularPizzas counts pizza occurrences across all orders and returns the
// top limit entries, most ordered first, ties broken by pizza id.
func PopularPizzas(orders []models.Order, limit int) []PizzaCount {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}

	index := make(map[uint]int)
	counts := make([]PizzaCount, 0)
	for _, order := range orders {
		for _, pizza := range order.Pizzas {
			i, seen := index[pizza.PizzaID]
			if !seen {
				i = len(counts)
				index[pizza.PizzaID] = i
				counts = append(counts, PizzaCount{PizzaID: pizza.PizzaID, Name: pizza.Name})
			}
			counts[i].Count++
		}
	}

	slices.SortFunc(counts, func(a, b PizzaCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.PizzaID, b.PizzaID)
	})
	return counts[:min(limit, len(counts))]
}

// ActiveUsers ranks every user that placed an order by order count, then username
func ActiveUsers(orders []models.Order) []UserActivity {
	index := make(map[string]int)
	activity := make([]UserActivity, 0)
	for _, order := range orders {
		i, seen := index[order.Username]
		if !seen {
			i = len(activity)
			index[order.Username] = i
			activity = append(activity, UserActivity{Username: order.Username, TotalSpent: decimal.Zero})
		}
		activity[i].OrderCount++
		activity[i].TotalSpent = activity[i].TotalSpent.Add(order.TotalPrice)
	}

	slices.SortFunc(activity, func(a, b UserActivity) int {
		if c := cmp.Compare(b.OrderCount, a.OrderCount); c != 0 {
			return c
		}
		return cmp.Compare(a.Username, b.Username)
	})
	return activity
}

// RecentOrders returns the limit newest orders, newest first. Orders created
// at the same instant are ordered by descending id.
func RecentOrders(orders []models.Order, limit int) []models.Order {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	sorted := slices.Clone(orders)
	slices.SortFunc(sorted, func(a, b models.Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return sorted[:min(limit, len(sorted))]
}

// PizzasByPrice sorts pizzas by ascending price keeping the input order for equal prices
func PizzasByPrice(pizzas []models.Pizza) []models.Pizza {
	sorted := slices.Clone(pizzas)
	slices.SortStableFunc(sorted, func(a, b models.Pizza) int {
		return a.Price.Cmp(b.Price)
	})
	return sorted
}
