package services

import (
	"context"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	store := newTestStore(t)
	seedUsers(t, store)
	margherita := createPizza(t, store, "Margherita", "10.99")
	pepperoni := createPizza(t, store, "Pepperoni", "12.99")
	ctx := context.Background()

	svc := NewOrderService(store)
	at := time.Date(2024, 6, 1, 19, 45, 0, 123456789, time.FixedZone("CEST", 2*3600))
	svc.(*orderService).now = fixedClock(at)

	order, err := svc.CreateOrder(ctx, mario, []uint{margherita.ID, pepperoni.ID, margherita.ID}, "")
	require.NoError(t, err)

	assert.Equal(t, "mario", order.Username)
	assert.Equal(t, models.StatusNew, order.Status)
	assert.True(t, money("34.97").Equal(order.TotalPrice), order.TotalPrice.String())
	assert.Equal(t, "1 Mushroom Way", order.DeliveryAddress)
	assert.Equal(t, time.UTC, order.CreatedAt.Location())
	assert.True(t, at.Truncate(time.Microsecond).Equal(order.CreatedAt))
	require.Len(t, order.Pizzas, 3)

	sum := order.Pizzas[0].Price.Add(order.Pizzas[1].Price).Add(order.Pizzas[2].Price)
	assert.True(t, sum.Equal(order.TotalPrice))
}

func TestCreateOrderSkipsUnknownPizzas(t *testing.T) {
	store := newTestStore(t)
	seedUsers(t, store)
	margherita := createPizza(t, store, "Margherita", "10.99")

	order, err := NewOrderService(store).CreateOrder(context.Background(), mario, []uint{999, margherita.ID}, "Castle Gate")
	require.NoError(t, err)

	require.Len(t, order.Pizzas, 1)
	assert.Equal(t, margherita.ID, order.Pizzas[0].PizzaID)
	assert.True(t, money("10.99").Equal(order.TotalPrice))
	assert.Equal(t, "Castle Gate", order.DeliveryAddress)
}

func TestCreateOrderWithoutKnownPizzasFails(t *testing.T) {
	store := newTestStore(t)
	seedUsers(t, store)
	svc := NewOrderService(store)

	for _, ids := range [][]uint{nil, {}, {404, 405}} {
		_, err := svc.CreateOrder(context.Background(), mario, ids, "")
		require.Error(t, err)
		assert.True(t, models.IsKind(err, models.KindValidation))
	}

	orders, err := store.Orders.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderSnapshotsIgnoreCatalogChanges(t *testing.T) {
	store := newTestStore(t)
	seedUsers(t, store)
	margherita := createPizza(t, store, "Margherita", "10.99")
	ctx := context.Background()

	orders := NewOrderService(store)
	order, err := orders.CreateOrder(ctx, mario, []uint{margherita.ID}, "")
	require.NoError(t, err)

	_, err = NewPizzaService(store).UpdatePizza(ctx, margherita.ID, models.DTO{"price": "15.00", "name": "Margherita DOP"}, nil)
	require.NoError(t, err)

	reloaded, err := orders.GetOrder(ctx, mario, order.ID)
	require.NoError(t, err)
	assert.True(t, money("10.99").Equal(reloaded.TotalPrice))
	assert.Equal(t, "Margherita", reloaded.Pizzas[0].Name)
	assert.True(t, money("10.99").Equal(reloaded.Pizzas[0].Price))
}

func TestGetAndListOrdersRespectOwnership(t *testing.T) {
	store := newTestStore(t)
	seedUsers(t, store)
	pizza := createPizza(t, store, "Margherita", "10.99")
	ctx := context.Background()
	svc := NewOrderService(store)

	marioOrder, err := svc.CreateOrder(ctx, mario, []uint{pizza.ID}, "")
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, luigi, []uint{pizza.ID}, "")
	require.NoError(t, err)

	_, err = svc.GetOrder(ctx, luigi, marioOrder.ID)
	assert.True(t, models.IsKind(err, models.KindPermission))
	_, err = svc.GetOrder(ctx, admin, marioOrder.ID)
	assert.NoError(t, err)
	_, err = svc.GetOrder(ctx, mario, 999)
	assert.True(t, models.IsKind(err, models.KindNotFound))

	own, err := svc.ListOrders(ctx, mario)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, marioOrder.ID, own[0].ID)

	all, err := svc.ListOrders(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCancelOrder(t *testing.T) {
	store := newTestStore(t)
	seedUsers(t, store)
	pizza := createPizza(t, store, "Margherita", "10.99")
	ctx := context.Background()
	svc := NewOrderService(store)

	order, err := svc.CreateOrder(ctx, mario, []uint{pizza.ID}, "")
	require.NoError(t, err)

	err = svc.CancelOrder(ctx, luigi, order.ID)
	assert.True(t, models.IsKind(err, models.KindPermission))

	require.NoError(t, svc.CancelOrder(ctx, mario, order.ID))
	_, err = svc.GetOrder(ctx, mario, order.ID)
	assert.True(t, models.IsKind(err, models.KindNotFound))

	err = svc.CancelOrder(ctx, mario, order.ID)
	assert.True(t, models.IsKind(err, models.KindNotFound))
}

func TestCancelOrderRefusedOnceStarted(t *testing.T) {
	store := newTestStore(t)
	seedUsers(t, store)
	pizza := createPizza(t, store, "Margherita", "10.99")
	ctx := context.Background()
	svc := NewOrderService(store)

	for _, status := range []models.OrderStatus{models.StatusPreparing, models.StatusOnTheWay, models.StatusDelivered} {
		t.Run(string(status), func(t *testing.T) {
			order, err := svc.CreateOrder(ctx, mario, []uint{pizza.ID}, "")
			require.NoError(t, err)
			_, err = svc.UpdateStatus(ctx, admin, order.ID, string(status))
			require.NoError(t, err)

			err = svc.CancelOrder(ctx, mario, order.ID)
			assert.True(t, models.IsKind(err, models.KindInvalidState))
			// admins are bound by the same rule
			err = svc.CancelOrder(ctx, admin, order.ID)
			assert.True(t, models.IsKind(err, models.KindInvalidState))

			_, err = svc.GetOrder(ctx, mario, order.ID)
			assert.NoError(t, err)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	store := newTestStore(t)
	seedUsers(t, store)
	pizza := createPizza(t, store, "Margherita", "10.99")
	ctx := context.Background()
	svc := NewOrderService(store)

	order, err := svc.CreateOrder(ctx, mario, []uint{pizza.ID}, "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, mario, order.ID, "Delivered")
	assert.True(t, models.IsKind(err, models.KindPermission))

	_, err = svc.UpdateStatus(ctx, admin, order.ID, "")
	assert.True(t, models.IsKind(err, models.KindValidation))

	_, err = svc.UpdateStatus(ctx, admin, order.ID, "Teleported")
	assert.True(t, models.IsKind(err, models.KindValidation))

	_, err = svc.UpdateStatus(ctx, admin, 999, "Delivered")
	assert.True(t, models.IsKind(err, models.KindNotFound))

	updated, err := svc.UpdateStatus(ctx, admin, order.ID, "On the way")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnTheWay, updated.Status)
	assert.True(t, money("10.99").Equal(updated.TotalPrice))
	assert.Len(t, updated.Pizzas, 1)
	assert.True(t, order.CreatedAt.Equal(updated.CreatedAt))
}
