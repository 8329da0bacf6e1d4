package services

import (
	"context"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/dao"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/database"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	admin = models.Identity{UserID: 1, Username: "admin", Role: models.RoleAdmin}
	mario = models.Identity{UserID: 2, Username: "mario", Role: models.RoleUser}
	luigi = models.Identity{UserID: 3, Username: "luigi", Role: models.RoleUser}
)

func newTestStore(t *testing.T) *dao.Store {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	return dao.NewStore(db)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seedUsers creates admin, mario and luigi with ids 1, 2 and 3
func seedUsers(t *testing.T, store *dao.Store) {
	t.Helper()
	ctx := context.Background()
	users := []models.User{
		{Username: "admin", Role: models.RoleAdmin, PasswordHash: "x"},
		{Username: "mario", Role: models.RoleUser, PasswordHash: "x", Address: "1 Mushroom Way"},
		{Username: "luigi", Role: models.RoleUser, PasswordHash: "x"},
	}
	for i := range users {
		require.NoError(t, store.Users.Create(ctx, &users[i]))
	}
}

func createPizza(t *testing.T, store *dao.Store, name, price string) *models.Pizza {
	t.Helper()
	pizza := &models.Pizza{Name: name, Price: money(price), Size: models.SizeMedium}
	require.NoError(t, store.Pizzas.Create(context.Background(), pizza))
	return pizza
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
