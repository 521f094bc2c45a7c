package services

import (
	"context"

	"matchmaker_backend/internal/models"
	"matchmaker_backend/internal/repositories"
	"matchmaker_backend/internal/services/dto"
	"matchmaker_backend/pkg/apperrors"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.CreateResult, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GrantAdmin(ctx context.Context, userID string) error
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// Register creates the user record for a new identity. A repeat
// registration is a detected no-op, never an error.
func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.CreateResult, error) {
	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  models.UserRoleNone,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return &dto.CreateResult{Message: "User already exists", InsertedID: nil}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateResult{InsertedID: &user.ID}, nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

// GrantAdmin elevates a user's role. One-way: no demotion path exists.
func (s *UserServiceImpl) GrantAdmin(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRole(ctx, userID, models.UserRoleAdmin); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// IsAdmin re-reads the user's current role from the store; role is never
// trusted from a token claim.
func (s *UserServiceImpl) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return false, nil
		}
		return false, apperrors.InternalError(err)
	}
	return user.Role == models.UserRoleAdmin, nil
}
