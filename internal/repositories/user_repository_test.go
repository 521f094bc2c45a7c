package repositories

import (
	"context"
	"testing"

	"matchmaker_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate_DetectsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &models.User{Name: "Alice", Email: "a@x.com"})
	require.NoError(t, err)

	err = repo.Create(ctx, &models.User{Name: "Alice Again", Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)
}

func TestUserFindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Name: "Alice", Email: "a@x.com"}))

	user, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, models.UserRoleNone, user.Role)

	_, err = repo.FindByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserUpdateRole(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Alice", Email: "a@x.com"}
	require.NoError(t, repo.Create(ctx, user))

	err := repo.UpdateRole(ctx, user.ID, models.UserRoleAdmin)
	require.NoError(t, err)

	updated, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, updated.Role)

	err = repo.UpdateRole(ctx, "no-such-id", models.UserRoleAdmin)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
