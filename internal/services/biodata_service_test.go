package services

import (
	"context"
	"testing"

	"matchmaker_backend/internal/models"
	"matchmaker_backend/internal/repositories"
	"matchmaker_backend/internal/services/dto"
	"matchmaker_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editRequest(email, name, gender, age string) *dto.EditBiodataRequest {
	return &dto.EditBiodataRequest{
		Email:  email,
		Name:   name,
		Gender: gender,
		Age:    age,
	}
}

func TestBiodataUpsert_AssignsAndKeepsIDs(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBiodataService(repositories.NewBiodataRepository(db))
	ctx := context.Background()

	first, err := svc.Upsert(ctx, editRequest("a@x.com", "Alice", "female", "24"))
	require.NoError(t, err)
	assert.Equal(t, 1, first.BiodataID)

	second, err := svc.Upsert(ctx, editRequest("b@x.com", "Bob", "male", "27"))
	require.NoError(t, err)
	assert.Equal(t, 2, second.BiodataID)

	// Re-editing the first profile keeps id 1.
	edited, err := svc.Upsert(ctx, editRequest("a@x.com", "Alice Edited", "female", "25"))
	require.NoError(t, err)
	assert.Equal(t, 1, edited.BiodataID)
	assert.Equal(t, int64(1), edited.MatchedCount)

	found, err := svc.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", found.Email)
}

func TestBiodataUpsert_NonNumericAgeRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBiodataService(repositories.NewBiodataRepository(db))
	ctx := context.Background()

	_, err := svc.Upsert(ctx, editRequest("a@x.com", "Alice", "female", "twenty-four"))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	// Nothing was written.
	_, err = svc.GetByOwner(ctx, "a@x.com")
	assert.Error(t, err)
}

func TestBiodataUpsert_ParsesAgeText(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBiodataService(repositories.NewBiodataRepository(db))
	ctx := context.Background()

	req := editRequest("a@x.com", "Alice", "female", " 24 ")
	req.PartnerAge = "28"
	_, err := svc.Upsert(ctx, req)
	require.NoError(t, err)

	stored, err := svc.GetByOwner(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 24, stored.Age)
	assert.Equal(t, 28, stored.PartnerAge)
}

func TestBiodataUpsert_BadPartnerAgeRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBiodataService(repositories.NewBiodataRepository(db))

	req := editRequest("a@x.com", "Alice", "female", "24")
	req.PartnerAge = "late twenties"
	_, err := svc.Upsert(context.Background(), req)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestBiodataListsAndSuggestions(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewBiodataRepository(db)
	svc := NewBiodataService(repo)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, editRequest("a@x.com", "Alice", "female", "24"))
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, editRequest("b@x.com", "Bob", "male", "27"))
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, "b@x.com", models.BiodataStatusPremium)
	require.NoError(t, err)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	premium, err := svc.ListPremium(ctx)
	require.NoError(t, err)
	require.Len(t, premium, 1)
	assert.Equal(t, "b@x.com", premium[0].Email)

	males, err := svc.Suggestions(ctx, "male")
	require.NoError(t, err)
	require.Len(t, males, 1)
	assert.Equal(t, "b@x.com", males[0].Email)
}
