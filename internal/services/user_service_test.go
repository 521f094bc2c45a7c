package services

import (
	"context"
	"testing"

	"matchmaker_backend/internal/repositories"
	"matchmaker_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_NewUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	ctx := context.Background()

	result, err := svc.Register(ctx, &dto.RegisterUserRequest{Name: "Alice", Email: "a@x.com"})
	require.NoError(t, err)
	require.NotNil(t, result.InsertedID)
	assert.NotEmpty(t, *result.InsertedID)
	assert.Empty(t, result.Message)
}

func TestRegister_DuplicateIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterUserRequest{Name: "Alice", Email: "a@x.com"})
	require.NoError(t, err)

	// Second registration succeeds at the HTTP level but inserts nothing.
	result, err := svc.Register(ctx, &dto.RegisterUserRequest{Name: "Alice Again", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Nil(t, result.InsertedID)
	assert.Equal(t, "User already exists", result.Message)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestGrantAdmin_ThenIsAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	ctx := context.Background()

	result, err := svc.Register(ctx, &dto.RegisterUserRequest{Name: "Alice", Email: "a@x.com"})
	require.NoError(t, err)

	admin, err := svc.IsAdmin(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, admin)

	require.NoError(t, svc.GrantAdmin(ctx, *result.InsertedID))

	admin, err = svc.IsAdmin(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, admin)
}

func TestIsAdmin_UnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	admin, err := svc.IsAdmin(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestGrantAdmin_UnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	err := svc.GrantAdmin(context.Background(), "no-such-id")
	assert.Error(t, err)
}
