package services

import (
	"context"
	"strconv"
	"strings"

	"matchmaker_backend/internal/models"
	"matchmaker_backend/internal/repositories"
	"matchmaker_backend/internal/services/dto"
	"matchmaker_backend/pkg/apperrors"
)

type BiodataService interface {
	Upsert(ctx context.Context, req *dto.EditBiodataRequest) (*repositories.WriteOutcome, error)
	GetByOwner(ctx context.Context, email string) (*models.Biodata, error)
	GetByID(ctx context.Context, biodataID int) (*models.Biodata, error)
	ListAll(ctx context.Context) ([]models.Biodata, error)
	ListPremium(ctx context.Context) ([]models.Biodata, error)
	Suggestions(ctx context.Context, gender string) ([]models.Biodata, error)
}

type BiodataServiceImpl struct {
	biodataRepo repositories.BiodataRepository
}

func NewBiodataService(biodataRepo repositories.BiodataRepository) BiodataService {
	return &BiodataServiceImpl{biodataRepo: biodataRepo}
}

// Upsert creates or fully replaces the caller's biodata. The public
// sequence id is resolved by the repository: kept for an existing owner,
// newly assigned for a first submission. Age fields are parsed here so a
// malformed value can never reach the store.
func (s *BiodataServiceImpl) Upsert(ctx context.Context, req *dto.EditBiodataRequest) (*repositories.WriteOutcome, error) {
	age, err := parseNumericText(req.Age)
	if err != nil {
		return nil, apperrors.ValidationError(map[string]string{"age": "Must be a whole number"})
	}

	partnerAge := 0
	if strings.TrimSpace(req.PartnerAge) != "" {
		partnerAge, err = parseNumericText(req.PartnerAge)
		if err != nil {
			return nil, apperrors.ValidationError(map[string]string{"partnerAge": "Must be a whole number"})
		}
	}

	biodata := &models.Biodata{
		Email:             req.Email,
		Name:              req.Name,
		DateOfBirth:       req.DateOfBirth,
		Gender:            req.Gender,
		Height:            req.Height,
		Weight:            req.Weight,
		Age:               age,
		Occupation:        req.Occupation,
		Religion:          req.Religion,
		Image:             req.Image,
		MobileNumber:      req.MobileNumber,
		FathersName:       req.FathersName,
		MothersName:       req.MothersName,
		PermanentDivision: req.PermanentDivision,
		PresentDivision:   req.PresentDivision,
		PartnerAge:        partnerAge,
		PartnerHeight:     req.PartnerHeight,
		PartnerWeight:     req.PartnerWeight,
	}

	outcome, err := s.biodataRepo.Upsert(ctx, biodata)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return outcome, nil
}

func (s *BiodataServiceImpl) GetByOwner(ctx context.Context, email string) (*models.Biodata, error) {
	biodata, err := s.biodataRepo.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBiodataNotFound) {
			return nil, apperrors.ErrBiodataNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return biodata, nil
}

func (s *BiodataServiceImpl) GetByID(ctx context.Context, biodataID int) (*models.Biodata, error) {
	biodata, err := s.biodataRepo.FindByBiodataID(ctx, biodataID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBiodataNotFound) {
			return nil, apperrors.ErrBiodataNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return biodata, nil
}

func (s *BiodataServiceImpl) ListAll(ctx context.Context) ([]models.Biodata, error) {
	biodatas, err := s.biodataRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return biodatas, nil
}

func (s *BiodataServiceImpl) ListPremium(ctx context.Context) ([]models.Biodata, error) {
	biodatas, err := s.biodataRepo.FindByStatus(ctx, models.BiodataStatusPremium)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return biodatas, nil
}

func (s *BiodataServiceImpl) Suggestions(ctx context.Context, gender string) ([]models.Biodata, error) {
	biodatas, err := s.biodataRepo.FindByGender(ctx, gender)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return biodatas, nil
}

func parseNumericText(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
