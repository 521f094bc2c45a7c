package services

import (
	"context"

	"matchmaker_backend/internal/email"
	"matchmaker_backend/internal/logger"
	"matchmaker_backend/internal/models"
	"matchmaker_backend/internal/repositories"
	"matchmaker_backend/internal/services/dto"
	"matchmaker_backend/pkg/apperrors"
)

type PremiumService interface {
	SubmitRequest(ctx context.Context, req *dto.SubmitPremiumRequest) (*dto.CreateResult, error)
	ListRequests(ctx context.Context) ([]models.PremiumRequest, error)
	ListApproved(ctx context.Context) ([]models.PremiumRequest, error)
	ApproveRequest(ctx context.Context, requestID string) (*repositories.WriteOutcome, error)
	ElevateBiodata(ctx context.Context, ownerEmail string) (*repositories.WriteOutcome, error)
	IsPremium(ctx context.Context, email string) (bool, error)
}

type PremiumServiceImpl struct {
	requestRepo   repositories.PremiumRequestRepository
	biodataRepo   repositories.BiodataRepository
	emailProvider email.Provider
}

func NewPremiumService(
	requestRepo repositories.PremiumRequestRepository,
	biodataRepo repositories.BiodataRepository,
	emailProvider email.Provider,
) PremiumService {
	return &PremiumServiceImpl{
		requestRepo:   requestRepo,
		biodataRepo:   biodataRepo,
		emailProvider: emailProvider,
	}
}

// SubmitRequest records a user's premium petition. The stored role field
// doubles as approval status: a submitted request carries "premium" and
// counts as pending until an administrator elevates the biodata itself.
// Duplicate submission is a detected no-op.
func (s *PremiumServiceImpl) SubmitRequest(ctx context.Context, req *dto.SubmitPremiumRequest) (*dto.CreateResult, error) {
	request := &models.PremiumRequest{
		Email:     req.Email,
		Name:      req.Name,
		BiodataID: req.BiodataID,
		Role:      models.PremiumRolePremium,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		if apperrors.Is(err, repositories.ErrPremiumRequestAlreadyExists) {
			return &dto.CreateResult{Message: "User already exists", InsertedID: nil}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateResult{InsertedID: &request.ID}, nil
}

func (s *PremiumServiceImpl) ListRequests(ctx context.Context) ([]models.PremiumRequest, error) {
	requests, err := s.requestRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return requests, nil
}

func (s *PremiumServiceImpl) ListApproved(ctx context.Context) ([]models.PremiumRequest, error) {
	requests, err := s.requestRepo.FindByRole(ctx, models.PremiumRolePremium)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return requests, nil
}

// ApproveRequest flips the request record. Re-approval of an already
// premium request is a harmless no-op update.
func (s *PremiumServiceImpl) ApproveRequest(ctx context.Context, requestID string) (*repositories.WriteOutcome, error) {
	outcome, err := s.requestRepo.UpdateRole(ctx, requestID, models.PremiumRolePremium)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPremiumRequestNotFound) {
			return nil, apperrors.ErrPremiumRequestNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return outcome, nil
}

// ElevateBiodata marks the owner's profile premium. Administrator
// discretion: no cross-check against the request collection is made.
func (s *PremiumServiceImpl) ElevateBiodata(ctx context.Context, ownerEmail string) (*repositories.WriteOutcome, error) {
	outcome, err := s.biodataRepo.UpdateStatus(ctx, ownerEmail, models.BiodataStatusPremium)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBiodataNotFound) {
			return nil, apperrors.ErrBiodataNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendApprovalEmail(ctx, ownerEmail)

	return outcome, nil
}

// IsPremium re-reads the request collection: true once a request record
// with role "premium" exists for the email.
func (s *PremiumServiceImpl) IsPremium(ctx context.Context, email string) (bool, error) {
	request, err := s.requestRepo.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPremiumRequestNotFound) {
			return false, nil
		}
		return false, apperrors.InternalError(err)
	}
	return request.Role == models.PremiumRolePremium, nil
}

// sendApprovalEmail fires the notification without blocking the request.
func (s *PremiumServiceImpl) sendApprovalEmail(ctx context.Context, ownerEmail string) {
	if s.emailProvider == nil {
		return
	}

	name := ""
	if biodata, err := s.biodataRepo.FindByEmail(ctx, ownerEmail); err == nil {
		name = biodata.Name
	}

	go func() {
		if err := s.emailProvider.SendPremiumApproved(ownerEmail, name); err != nil {
			logger.Error("failed to send premium approval email", "email", ownerEmail, "error", err)
		}
	}()
}
