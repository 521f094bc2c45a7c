package repositories

import (
	"context"
	"testing"

	"matchmaker_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPremiumRequestCreate_DetectsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPremiumRequestRepository(db)
	ctx := context.Background()

	req := &models.PremiumRequest{
		Email:     "a@x.com",
		Name:      "Alice",
		BiodataID: 1,
		Role:      models.PremiumRolePremium,
	}
	require.NoError(t, repo.Create(ctx, req))

	err := repo.Create(ctx, &models.PremiumRequest{Email: "a@x.com", Name: "Alice", BiodataID: 1})
	assert.ErrorIs(t, err, ErrPremiumRequestAlreadyExists)
}

func TestPremiumRequestUpdateRole(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPremiumRequestRepository(db)
	ctx := context.Background()

	req := &models.PremiumRequest{Email: "a@x.com", Name: "Alice", BiodataID: 1}
	require.NoError(t, repo.Create(ctx, req))

	outcome, err := repo.UpdateRole(ctx, req.ID, models.PremiumRolePremium)
	require.NoError(t, err)
	assert.Equal(t, int64(1), outcome.ModifiedCount)

	updated, err := repo.FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PremiumRolePremium, updated.Role)

	_, err = repo.UpdateRole(ctx, "no-such-id", models.PremiumRolePremium)
	assert.ErrorIs(t, err, ErrPremiumRequestNotFound)
}

func TestPremiumRequestFindByRole(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPremiumRequestRepository(db)
	ctx := context.Background()

	approved := &models.PremiumRequest{Email: "a@x.com", Name: "Alice", BiodataID: 1, Role: models.PremiumRolePremium}
	pending := &models.PremiumRequest{Email: "b@x.com", Name: "Bob", BiodataID: 2}
	require.NoError(t, repo.Create(ctx, approved))
	require.NoError(t, repo.Create(ctx, pending))

	premium, err := repo.FindByRole(ctx, models.PremiumRolePremium)
	require.NoError(t, err)
	require.Len(t, premium, 1)
	assert.Equal(t, "a@x.com", premium[0].Email)
}
