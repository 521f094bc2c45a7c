package services

import (
	"context"

	"matchmaker_backend/internal/models"
	"matchmaker_backend/internal/repositories"
	"matchmaker_backend/internal/services/dto"
	"matchmaker_backend/pkg/apperrors"
)

type ReviewService interface {
	Create(ctx context.Context, req *dto.CreateReviewRequest) (*dto.CreateResult, error)
	ListAll(ctx context.Context) ([]models.Review, error)
}

type ReviewServiceImpl struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository) ReviewService {
	return &ReviewServiceImpl{reviewRepo: reviewRepo}
}

func (s *ReviewServiceImpl) Create(ctx context.Context, req *dto.CreateReviewRequest) (*dto.CreateResult, error) {
	review := &models.Review{
		Email:        req.Email,
		Name:         req.Name,
		Image:        req.Image,
		Rating:       req.Rating,
		MarriageDate: req.MarriageDate,
		Story:        req.Story,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateResult{InsertedID: &review.ID}, nil
}

func (s *ReviewServiceImpl) ListAll(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reviews, nil
}
