package repositories

import (
	"context"
	"errors"
	"time"

	"matchmaker_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBiodataNotFound = errors.New("biodata not found")

// biodataSequenceName keys the single counter row backing id assignment.
const biodataSequenceName = "biodata_id"

// WriteOutcome mirrors the store's write report: how many documents were
// matched and modified, whether a new one was inserted, and the public
// sequence id the write resolved to.
type WriteOutcome struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	BiodataID     int   `json:"biodataId"`
}

type BiodataRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Biodata, error)
	FindByBiodataID(ctx context.Context, biodataID int) (*models.Biodata, error)
	FindAll(ctx context.Context) ([]models.Biodata, error)
	FindByStatus(ctx context.Context, status models.BiodataStatus) ([]models.Biodata, error)
	FindByGender(ctx context.Context, gender string) ([]models.Biodata, error)
	MaxBiodataID(ctx context.Context) (int, error)
	Upsert(ctx context.Context, biodata *models.Biodata) (*WriteOutcome, error)
	UpdateStatus(ctx context.Context, email string, status models.BiodataStatus) (*WriteOutcome, error)
}

type BiodataRepositoryImpl struct {
	db *gorm.DB
}

func NewBiodataRepository(db *gorm.DB) BiodataRepository {
	return &BiodataRepositoryImpl{db: db}
}

func (r *BiodataRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.Biodata, error) {
	var biodata models.Biodata
	err := r.db.WithContext(ctx).First(&biodata, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBiodataNotFound
		}
		return nil, err
	}
	return &biodata, nil
}

func (r *BiodataRepositoryImpl) FindByBiodataID(ctx context.Context, biodataID int) (*models.Biodata, error) {
	var biodata models.Biodata
	err := r.db.WithContext(ctx).First(&biodata, "biodata_id = ?", biodataID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBiodataNotFound
		}
		return nil, err
	}
	return &biodata, nil
}

func (r *BiodataRepositoryImpl) FindAll(ctx context.Context) ([]models.Biodata, error) {
	var biodatas []models.Biodata
	err := r.db.WithContext(ctx).Order("biodata_id ASC").Find(&biodatas).Error
	return biodatas, err
}

func (r *BiodataRepositoryImpl) FindByStatus(ctx context.Context, status models.BiodataStatus) ([]models.Biodata, error) {
	var biodatas []models.Biodata
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("biodata_id ASC").Find(&biodatas).Error
	return biodatas, err
}

func (r *BiodataRepositoryImpl) FindByGender(ctx context.Context, gender string) ([]models.Biodata, error) {
	var biodatas []models.Biodata
	err := r.db.WithContext(ctx).Where("gender = ?", gender).Order("biodata_id ASC").Find(&biodatas).Error
	return biodatas, err
}

// MaxBiodataID returns the highest assigned sequence id, 0 when the
// collection is empty.
func (r *BiodataRepositoryImpl) MaxBiodataID(ctx context.Context) (int, error) {
	var last models.Biodata
	err := r.db.WithContext(ctx).Order("biodata_id DESC").Limit(1).Find(&last).Error
	if err != nil {
		return 0, err
	}
	return last.BiodataID, nil
}

// Upsert implements the identifier-assignment algorithm: an existing
// owner keeps the sequence id already stored for them; a new owner gets
// the next value of the counter row, which is bumped atomically inside
// the same transaction as the insert. The counter is seeded from the
// current maximum id the first time it is needed, so ids stay sequential
// for stores that predate the counter.
func (r *BiodataRepositoryImpl) Upsert(ctx context.Context, biodata *models.Biodata) (*WriteOutcome, error) {
	outcome := &WriteOutcome{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Biodata
		err := tx.Where("email = ?", biodata.Email).First(&existing).Error

		switch {
		case err == nil:
			// Re-edit: the public id never changes.
			biodata.BiodataID = existing.BiodataID
			biodata.Status = existing.Status
			result := tx.Model(&models.Biodata{}).Where("email = ?", biodata.Email).
				Updates(biodataFieldMap(biodata))
			if result.Error != nil {
				return result.Error
			}
			outcome.MatchedCount = 1
			outcome.ModifiedCount = result.RowsAffected

		case errors.Is(err, gorm.ErrRecordNotFound):
			nextID, err := nextBiodataID(tx)
			if err != nil {
				return err
			}
			biodata.BiodataID = nextID
			if biodata.Status == "" {
				biodata.Status = models.BiodataStatusNormal
			}
			if err := tx.Create(biodata).Error; err != nil {
				return err
			}
			outcome.UpsertedCount = 1

		default:
			return err
		}

		outcome.BiodataID = biodata.BiodataID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}

// nextBiodataID bumps the counter row and returns its new value. The
// single UPDATE takes a row lock, so two concurrent upserts cannot
// observe the same value.
func nextBiodataID(tx *gorm.DB) (int, error) {
	result := tx.Model(&models.BiodataSequence{}).
		Where("name = ?", biodataSequenceName).
		UpdateColumn("value", gorm.Expr("value + ?", 1))
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		// First assignment ever: seed from the current maximum.
		var last models.Biodata
		if err := tx.Order("biodata_id DESC").Limit(1).Find(&last).Error; err != nil {
			return 0, err
		}
		seq := models.BiodataSequence{Name: biodataSequenceName, Value: int64(last.BiodataID) + 1}
		if err := tx.Create(&seq).Error; err != nil {
			return 0, err
		}
		return int(seq.Value), nil
	}

	var seq models.BiodataSequence
	if err := tx.Where("name = ?", biodataSequenceName).First(&seq).Error; err != nil {
		return 0, err
	}
	return int(seq.Value), nil
}

func (r *BiodataRepositoryImpl) UpdateStatus(ctx context.Context, email string, status models.BiodataStatus) (*WriteOutcome, error) {
	result := r.db.WithContext(ctx).Model(&models.Biodata{}).Where("email = ?", email).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrBiodataNotFound
	}
	return &WriteOutcome{MatchedCount: result.RowsAffected, ModifiedCount: result.RowsAffected}, nil
}

// biodataFieldMap lists the full replaceable field set, keeping the
// resolved sequence id and the current status.
func biodataFieldMap(b *models.Biodata) map[string]interface{} {
	return map[string]interface{}{
		"biodata_id":         b.BiodataID,
		"status":             b.Status,
		"name":               b.Name,
		"date_of_birth":      b.DateOfBirth,
		"gender":             b.Gender,
		"height":             b.Height,
		"weight":             b.Weight,
		"age":                b.Age,
		"occupation":         b.Occupation,
		"religion":           b.Religion,
		"image":              b.Image,
		"mobile_number":      b.MobileNumber,
		"fathers_name":       b.FathersName,
		"mothers_name":       b.MothersName,
		"permanent_division": b.PermanentDivision,
		"present_division":   b.PresentDivision,
		"partner_age":        b.PartnerAge,
		"partner_height":     b.PartnerHeight,
		"partner_weight":     b.PartnerWeight,
		"updated_at":         time.Now(),
	}
}
