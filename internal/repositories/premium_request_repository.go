package repositories

import (
	"context"
	"errors"
	"time"

	"matchmaker_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPremiumRequestNotFound      = errors.New("premium request not found")
	ErrPremiumRequestAlreadyExists = errors.New("premium request already exists")
)

type PremiumRequestRepository interface {
	FindByID(ctx context.Context, id string) (*models.PremiumRequest, error)
	FindByEmail(ctx context.Context, email string) (*models.PremiumRequest, error)
	Create(ctx context.Context, request *models.PremiumRequest) error
	FindAll(ctx context.Context) ([]models.PremiumRequest, error)
	FindByRole(ctx context.Context, role models.PremiumRole) ([]models.PremiumRequest, error)
	UpdateRole(ctx context.Context, id string, role models.PremiumRole) (*WriteOutcome, error)
}

type PremiumRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewPremiumRequestRepository(db *gorm.DB) PremiumRequestRepository {
	return &PremiumRequestRepositoryImpl{db: db}
}

func (r *PremiumRequestRepositoryImpl) FindByID(ctx context.Context, id string) (*models.PremiumRequest, error) {
	var request models.PremiumRequest
	err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPremiumRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *PremiumRequestRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.PremiumRequest, error) {
	var request models.PremiumRequest
	err := r.db.WithContext(ctx).First(&request, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPremiumRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *PremiumRequestRepositoryImpl) Create(ctx context.Context, request *models.PremiumRequest) error {
	// Same duplicate-detection policy as user registration.
	var existing models.PremiumRequest
	if err := r.db.WithContext(ctx).Where("email = ?", request.Email).First(&existing).Error; err == nil {
		return ErrPremiumRequestAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.WithContext(ctx).Create(request).Error
}

func (r *PremiumRequestRepositoryImpl) FindAll(ctx context.Context) ([]models.PremiumRequest, error) {
	var requests []models.PremiumRequest
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *PremiumRequestRepositoryImpl) FindByRole(ctx context.Context, role models.PremiumRole) ([]models.PremiumRequest, error) {
	var requests []models.PremiumRequest
	err := r.db.WithContext(ctx).Where("role = ?", role).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// UpdateRole realizes request approval. Re-approving an already-premium
// request is a harmless no-op update.
func (r *PremiumRequestRepositoryImpl) UpdateRole(ctx context.Context, id string, role models.PremiumRole) (*WriteOutcome, error) {
	result := r.db.WithContext(ctx).Model(&models.PremiumRequest{}).Where("id = ?", id).Updates(map[string]interface{}{
		"role":       role,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrPremiumRequestNotFound
	}
	return &WriteOutcome{MatchedCount: result.RowsAffected, ModifiedCount: result.RowsAffected}, nil
}
