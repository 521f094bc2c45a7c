package services

import (
	"context"

	"matchmaker_backend/internal/auth"
	"matchmaker_backend/internal/services/dto"
	"matchmaker_backend/pkg/apperrors"
)

type AuthService interface {
	IssueToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error)
}

type AuthServiceImpl struct{}

func NewAuthService() AuthService {
	return &AuthServiceImpl{}
}

// IssueToken constructs a signed bearer token for the claimed email.
// Stateless: no storage access, nothing persisted.
func (s *AuthServiceImpl) IssueToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error) {
	token, err := auth.GenerateToken(req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.TokenResponse{Token: token}, nil
}
