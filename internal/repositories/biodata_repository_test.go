package repositories

import (
	"context"
	"testing"

	"matchmaker_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBiodata(email, name, gender string, age int) *models.Biodata {
	return &models.Biodata{
		Email:  email,
		Name:   name,
		Gender: gender,
		Age:    age,
	}
}

func TestUpsert_AssignsSequentialIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBiodataRepository(db)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, newBiodata("a@x.com", "Alice", "female", 24))
	require.NoError(t, err)
	assert.Equal(t, 1, first.BiodataID)
	assert.Equal(t, int64(1), first.UpsertedCount)
	assert.Equal(t, int64(0), first.MatchedCount)

	second, err := repo.Upsert(ctx, newBiodata("b@x.com", "Bob", "male", 27))
	require.NoError(t, err)
	assert.Equal(t, 2, second.BiodataID)
	assert.Equal(t, int64(1), second.UpsertedCount)

	third, err := repo.Upsert(ctx, newBiodata("c@x.com", "Cara", "female", 25))
	require.NoError(t, err)
	assert.Equal(t, 3, third.BiodataID)
}

func TestUpsert_ReEditKeepsID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBiodataRepository(db)
	ctx := context.Background()

	created, err := repo.Upsert(ctx, newBiodata("a@x.com", "Alice", "female", 24))
	require.NoError(t, err)
	require.Equal(t, 1, created.BiodataID)

	// Another owner claims the next id in between.
	_, err = repo.Upsert(ctx, newBiodata("b@x.com", "Bob", "male", 27))
	require.NoError(t, err)

	edited := newBiodata("a@x.com", "Alice Renamed", "female", 25)
	outcome, err := repo.Upsert(ctx, edited)
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.BiodataID)
	assert.Equal(t, int64(1), outcome.MatchedCount)
	assert.Equal(t, int64(1), outcome.ModifiedCount)
	assert.Equal(t, int64(0), outcome.UpsertedCount)

	stored, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.BiodataID)
	assert.Equal(t, "Alice Renamed", stored.Name)
	assert.Equal(t, 25, stored.Age)
}

func TestUpsert_ReEditKeepsStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBiodataRepository(db)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, newBiodata("a@x.com", "Alice", "female", 24))
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, "a@x.com", models.BiodataStatusPremium)
	require.NoError(t, err)

	_, err = repo.Upsert(ctx, newBiodata("a@x.com", "Alice Edited", "female", 24))
	require.NoError(t, err)

	stored, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.BiodataStatusPremium, stored.Status)
}

func TestUpsert_CounterSeedsFromExistingMax(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBiodataRepository(db)
	ctx := context.Background()

	// Rows written before the counter existed.
	require.NoError(t, db.Create(&models.Biodata{
		Email: "legacy1@x.com", BiodataID: 4, Status: models.BiodataStatusNormal,
	}).Error)
	require.NoError(t, db.Create(&models.Biodata{
		Email: "legacy2@x.com", BiodataID: 7, Status: models.BiodataStatusNormal,
	}).Error)

	outcome, err := repo.Upsert(ctx, newBiodata("new@x.com", "New", "male", 30))
	require.NoError(t, err)
	assert.Equal(t, 8, outcome.BiodataID)

	next, err := repo.Upsert(ctx, newBiodata("newer@x.com", "Newer", "male", 31))
	require.NoError(t, err)
	assert.Equal(t, 9, next.BiodataID)
}

func TestFindByBiodataID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBiodataRepository(db)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, newBiodata("a@x.com", "Alice", "female", 24))
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, newBiodata("b@x.com", "Bob", "male", 27))
	require.NoError(t, err)

	found, err := repo.FindByBiodataID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", found.Email)

	_, err = repo.FindByBiodataID(ctx, 99)
	assert.ErrorIs(t, err, ErrBiodataNotFound)
}

func TestFindByStatusAndGender(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBiodataRepository(db)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, newBiodata("a@x.com", "Alice", "female", 24))
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, newBiodata("b@x.com", "Bob", "male", 27))
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, newBiodata("c@x.com", "Cara", "female", 25))
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, "b@x.com", models.BiodataStatusPremium)
	require.NoError(t, err)

	premium, err := repo.FindByStatus(ctx, models.BiodataStatusPremium)
	require.NoError(t, err)
	require.Len(t, premium, 1)
	assert.Equal(t, "b@x.com", premium[0].Email)

	females, err := repo.FindByGender(ctx, "female")
	require.NoError(t, err)
	require.Len(t, females, 2)
	// Ordered by sequence id.
	assert.Equal(t, "a@x.com", females[0].Email)
	assert.Equal(t, "c@x.com", females[1].Email)
}

func TestUpdateStatus_MissingOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBiodataRepository(db)

	_, err := repo.UpdateStatus(context.Background(), "nobody@x.com", models.BiodataStatusPremium)
	assert.ErrorIs(t, err, ErrBiodataNotFound)
}

func TestMaxBiodataID_EmptyStore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBiodataRepository(db)

	max, err := repo.MaxBiodataID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, max)
}
