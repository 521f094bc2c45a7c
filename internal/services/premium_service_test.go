package services

import (
	"context"
	"testing"
	"time"

	"matchmaker_backend/internal/models"
	"matchmaker_backend/internal/repositories"
	"matchmaker_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPremiumFixture(t *testing.T) (PremiumService, BiodataService, *recordingEmailProvider) {
	t.Helper()
	db := setupTestDB(t)
	requestRepo := repositories.NewPremiumRequestRepository(db)
	biodataRepo := repositories.NewBiodataRepository(db)
	mailer := &recordingEmailProvider{}
	return NewPremiumService(requestRepo, biodataRepo, mailer), NewBiodataService(biodataRepo), mailer
}

func TestSubmitRequest_ThenApprovalFlow(t *testing.T) {
	premiumSvc, biodataSvc, mailer := newPremiumFixture(t)
	ctx := context.Background()

	outcome, err := biodataSvc.Upsert(ctx, editRequest("a@x.com", "Alice", "female", "24"))
	require.NoError(t, err)

	result, err := premiumSvc.SubmitRequest(ctx, &dto.SubmitPremiumRequest{
		Email:     "a@x.com",
		Name:      "Alice",
		BiodataID: outcome.BiodataID,
	})
	require.NoError(t, err)
	require.NotNil(t, result.InsertedID)

	requests, err := premiumSvc.ListRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)

	elevate, err := premiumSvc.ElevateBiodata(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), elevate.ModifiedCount)

	biodata, err := biodataSvc.GetByOwner(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.BiodataStatusPremium, biodata.Status)

	premium, err := premiumSvc.IsPremium(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, premium)

	// Approval email is fired asynchronously.
	assert.Eventually(t, func() bool {
		sent := mailer.approvalsSent()
		return len(sent) == 1 && sent[0] == "a@x.com"
	}, time.Second, 10*time.Millisecond)
}

func TestSubmitRequest_DuplicateIsNoOp(t *testing.T) {
	premiumSvc, _, _ := newPremiumFixture(t)
	ctx := context.Background()

	req := &dto.SubmitPremiumRequest{Email: "a@x.com", Name: "Alice", BiodataID: 1}
	_, err := premiumSvc.SubmitRequest(ctx, req)
	require.NoError(t, err)

	result, err := premiumSvc.SubmitRequest(ctx, req)
	require.NoError(t, err)
	assert.Nil(t, result.InsertedID)
	assert.Equal(t, "User already exists", result.Message)

	requests, err := premiumSvc.ListRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, requests, 1)
}

func TestApproveRequest(t *testing.T) {
	premiumSvc, _, _ := newPremiumFixture(t)
	ctx := context.Background()

	result, err := premiumSvc.SubmitRequest(ctx, &dto.SubmitPremiumRequest{Email: "a@x.com", Name: "Alice", BiodataID: 1})
	require.NoError(t, err)

	outcome, err := premiumSvc.ApproveRequest(ctx, *result.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), outcome.ModifiedCount)

	approved, err := premiumSvc.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "a@x.com", approved[0].Email)

	_, err = premiumSvc.ApproveRequest(ctx, "no-such-id")
	assert.Error(t, err)
}

func TestElevateBiodata_MissingProfile(t *testing.T) {
	premiumSvc, _, mailer := newPremiumFixture(t)

	_, err := premiumSvc.ElevateBiodata(context.Background(), "nobody@x.com")
	require.Error(t, err)
	assert.Empty(t, mailer.approvalsSent())
}

func TestIsPremium_NoRequest(t *testing.T) {
	premiumSvc, _, _ := newPremiumFixture(t)

	premium, err := premiumSvc.IsPremium(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, premium)
}
