package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc := NewUserService(store)

	user, err := svc.Register(ctx, RegisterRequest{Username: "  toad ", Password: "mushroom", Address: "Toad Town"})
	require.NoError(t, err)
	assert.Equal(t, "toad", user.Username)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "mushroom", user.PasswordHash)

	authenticated, err := svc.Authenticate(ctx, "toad", "mushroom")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authenticated.ID)

	_, err = svc.Authenticate(ctx, "toad", "wrong")
	assert.True(t, models.IsKind(err, models.KindUnauthorized))
	_, err = svc.Authenticate(ctx, "nobody", "mushroom")
	assert.True(t, models.IsKind(err, models.KindUnauthorized))

	byID, err := svc.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "toad", byID.Username)
	_, err = svc.GetUserByUsername(ctx, "nobody")
	assert.True(t, models.IsKind(err, models.KindNotFound))
}

func TestRegisterRejectsDuplicatesAndBlanks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc := NewUserService(store)

	_, err := svc.Register(ctx, RegisterRequest{Username: "toad", Password: "mushroom"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Username: "toad", Password: "other"})
	assert.True(t, models.IsKind(err, models.KindIntegrity))

	_, err = svc.Register(ctx, RegisterRequest{Username: "   ", Password: "x"})
	assert.True(t, models.IsKind(err, models.KindValidation))

	_, err = svc.Register(ctx, RegisterRequest{Username: "yoshi"})
	assert.True(t, models.IsKind(err, models.KindValidation))
}

func TestUpdateProfileOnlyTouchesContactFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc := NewUserService(store)

	registered, err := svc.Register(ctx, RegisterRequest{Username: "toad", Password: "mushroom", Phone: "555"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, "toad", models.DTO{
		"address":  "Mushroom Kingdom",
		"role":     models.RoleAdmin,
		"username": "king",
	})
	require.NoError(t, err)

	assert.Equal(t, "toad", updated.Username)
	assert.Equal(t, models.RoleUser, updated.Role)
	assert.Equal(t, "Mushroom Kingdom", updated.Address)
	assert.Equal(t, "555", updated.Phone)
	assert.Equal(t, registered.PasswordHash, updated.PasswordHash)

	_, err = svc.UpdateProfile(ctx, "nobody", models.DTO{"phone": "1"})
	assert.True(t, models.IsKind(err, models.KindNotFound))
}
