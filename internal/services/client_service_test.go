package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/database"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientServiceScopesClientsToOwner(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	service := NewClientService(db)
	ctx := context.Background()

	for _, owner := range []models.User{{Username: "mario", PasswordHash: "x"}, {Username: "luigi", PasswordHash: "x"}} {
		require.NoError(t, db.Create(&owner).Error)
	}
	require.NoError(t, service.CreateClient(ctx, &models.OAuthClient{ID: "mario-cli", Secret: "hash", Name: "cli", UserID: 1}))
	require.NoError(t, service.CreateClient(ctx, &models.OAuthClient{ID: "luigi-cli", Secret: "hash", Name: "cli", UserID: 2}))

	clients, err := service.GetClientsByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "mario-cli", clients[0].ID)

	client, err := service.GetClientByID(ctx, "luigi-cli")
	require.NoError(t, err)
	assert.Equal(t, uint(2), client.UserID)

	_, err = service.GetClientByID(ctx, "nobody")
	assert.True(t, models.IsKind(err, models.KindNotFound))

	// another user's client looks missing
	err = service.DeleteClient(ctx, "luigi-cli", 1)
	assert.True(t, models.IsKind(err, models.KindNotFound))

	require.NoError(t, service.DeleteClient(ctx, "luigi-cli", 2))
	_, err = service.GetClientByID(ctx, "luigi-cli")
	assert.True(t, models.IsKind(err, models.KindNotFound))
}
