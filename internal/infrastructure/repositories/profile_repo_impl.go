package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"hubtel-wallet.backend/internal/domain/entities"
	domainerrors "hubtel-wallet.backend/internal/domain/errors"
	"hubtel-wallet.backend/internal/infrastructure/models"
	"hubtel-wallet.backend/pkg/utils"
)

// ProfileRepository implements profile data operations
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	m := &models.Profile{
		ID:           profile.ID,
		UserAccessID: profile.UserAccessID,
		LegalName:    profile.LegalName,
		NationalID:   profile.NationalID,
		DateOfBirth:  profile.DateOfBirth,
		Address:      profile.Address,
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}
	return translateError(GetDB(ctx, r.db).WithContext(ctx).Create(m).Error)
}

// GetByID gets a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	return r.findOne(ctx, "id = ?", id)
}

// GetByLegalName gets a profile by legal name
func (r *ProfileRepository) GetByLegalName(ctx context.Context, legalName string) (*entities.Profile, error) {
	return r.findOne(ctx, "legal_name = ?", legalName)
}

// GetByNationalID gets a profile by national id
func (r *ProfileRepository) GetByNationalID(ctx context.Context, nationalID string) (*entities.Profile, error) {
	return r.findOne(ctx, "national_id = ?", nationalID)
}

// GetByUserAccessID gets the profile owned by an identity
func (r *ProfileRepository) GetByUserAccessID(ctx context.Context, userAccessID uuid.UUID) (*entities.Profile, error) {
	return r.findOne(ctx, "user_access_id = ?", userAccessID)
}

// List lists profiles, newest first
func (r *ProfileRepository) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Profile, int64, error) {
	var total int64
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Model(&models.Profile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC")
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.CalculateOffset())
	}

	var rows []models.Profile
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	profiles := make([]*entities.Profile, 0, len(rows))
	for i := range rows {
		profiles = append(profiles, r.toEntity(&rows[i]))
	}
	return profiles, total, nil
}

// Update updates mutable profile fields
func (r *ProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	updates := map[string]interface{}{
		"legal_name":    profile.LegalName,
		"national_id":   profile.NationalID,
		"date_of_birth": profile.DateOfBirth,
		"address":       profile.Address,
		"updated_at":    time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{}).Where("id = ?", profile.ID).Updates(updates)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a profile
func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Profile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Lock takes a row lock on the profile. Without a transaction in ctx it only checks existence.
func (r *ProfileRepository) Lock(ctx context.Context, id uuid.UUID) error {
	var m models.Profile
	err := GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		First(&m).Error
	return translateError(err)
}

func (r *ProfileRepository) findOne(ctx context.Context, query string, arg interface{}) (*entities.Profile, error) {
	var m models.Profile
	q := lockable(ctx, GetDB(ctx, r.db).WithContext(ctx))
	if err := q.Where(query, arg).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *ProfileRepository) toEntity(m *models.Profile) *entities.Profile {
	return &entities.Profile{
		ID:           m.ID,
		UserAccessID: m.UserAccessID,
		LegalName:    m.LegalName,
		NationalID:   m.NationalID,
		DateOfBirth:  m.DateOfBirth,
		Address:      m.Address,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
