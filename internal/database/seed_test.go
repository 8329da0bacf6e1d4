package database

import (
	"testing"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCreatesAdminAndCatalog(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)

	opts := SeedOptions{AdminUsername: "admin", AdminPassword: "adminpass", DemoCatalog: true}
	require.NoError(t, Seed(db, opts))

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.CheckPassword("adminpass"))

	var pizzas []models.Pizza
	require.NoError(t, db.Preload("Ingredients").Order("id").Find(&pizzas).Error)
	require.Len(t, pizzas, 3)
	assert.Equal(t, "Margherita", pizzas[0].Name)
	assert.Len(t, pizzas[0].Ingredients, 3)

	t.Run("seeding twice changes nothing", func(t *testing.T) {
		require.NoError(t, Seed(db, opts))

		var users, pizzaCount, ingredients int64
		require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
		require.NoError(t, db.Model(&models.Pizza{}).Count(&pizzaCount).Error)
		require.NoError(t, db.Model(&models.Ingredient{}).Count(&ingredients).Error)
		assert.Equal(t, int64(1), users)
		assert.Equal(t, int64(3), pizzaCount)
		assert.Equal(t, int64(6), ingredients)
	})
}

func TestSeedSkipsAdminWithoutPassword(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)

	require.NoError(t, Seed(db, SeedOptions{AdminUsername: "admin"}))

	var users, pizzas int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Pizza{}).Count(&pizzas).Error)
	assert.Zero(t, users)
	assert.Zero(t, pizzas)
}
