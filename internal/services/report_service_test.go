package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportsOverStoredOrders(t *testing.T) {
	store := newTestStore(t)
	seedUsers(t, store)
	margherita := createPizza(t, store, "Margherita", "10.00")
	pepperoni := createPizza(t, store, "Pepperoni", "5.00")
	ctx := context.Background()
	orders := NewOrderService(store)

	_, err := orders.CreateOrder(ctx, mario, []uint{margherita.ID, pepperoni.ID}, "")
	require.NoError(t, err)
	_, err = orders.CreateOrder(ctx, mario, []uint{pepperoni.ID}, "")
	require.NoError(t, err)
	last, err := orders.CreateOrder(ctx, luigi, []uint{pepperoni.ID}, "")
	require.NoError(t, err)

	reports := NewReportService(store)

	stats, err := reports.OrderStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.True(t, money("25").Equal(stats.TotalRevenue))
	assert.True(t, money("8.33").Equal(stats.AverageOrderValue), stats.AverageOrderValue.String())

	popular, err := reports.PopularPizzas(ctx, 1)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, pepperoni.ID, popular[0].PizzaID)
	assert.Equal(t, 3, popular[0].Count)

	active, err := reports.ActiveUsers(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "mario", active[0].Username)
	assert.Equal(t, 2, active[0].OrderCount)

	recent, err := reports.RecentOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, last.ID, recent[0].ID)

	byPrice, err := reports.PizzasByPrice(ctx)
	require.NoError(t, err)
	require.Len(t, byPrice, 2)
	assert.Equal(t, "Pepperoni", byPrice[0].Name)
}
