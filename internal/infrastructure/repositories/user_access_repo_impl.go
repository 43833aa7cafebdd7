package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"hubtel-wallet.backend/internal/domain/entities"
	domainerrors "hubtel-wallet.backend/internal/domain/errors"
	"hubtel-wallet.backend/internal/infrastructure/models"
)

// UserAccessRepository implements identity data operations
type UserAccessRepository struct {
	db *gorm.DB
}

// NewUserAccessRepository creates a new identity repository
func NewUserAccessRepository(db *gorm.DB) *UserAccessRepository {
	return &UserAccessRepository{db: db}
}

// Create creates a new identity
func (r *UserAccessRepository) Create(ctx context.Context, user *entities.UserAccess) error {
	m := &models.UserAccess{
		ID:            user.ID,
		EmailOrPhone:  user.EmailOrPhone,
		Secret:        user.Secret,
		AccountTypeID: user.AccountTypeID,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
	return translateError(GetDB(ctx, r.db).WithContext(ctx).Create(m).Error)
}

// GetByID gets an identity by ID
func (r *UserAccessRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.UserAccess, error) {
	var m models.UserAccess
	if err := GetDB(ctx, r.db).WithContext(ctx).Preload("AccountType").Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// GetByEmailOrPhone gets an identity by its natural key
func (r *UserAccessRepository) GetByEmailOrPhone(ctx context.Context, emailOrPhone string) (*entities.UserAccess, error) {
	var m models.UserAccess
	if err := GetDB(ctx, r.db).WithContext(ctx).Preload("AccountType").Where("email_or_phone = ?", emailOrPhone).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// UpdateSecret replaces the stored secret
func (r *UserAccessRepository) UpdateSecret(ctx context.Context, id uuid.UUID, secret string) error {
	return r.update(ctx, id, map[string]interface{}{
		"secret":     secret,
		"updated_at": time.Now(),
	})
}

// UpdateAccountType switches the identity's account type
func (r *UserAccessRepository) UpdateAccountType(ctx context.Context, id uuid.UUID, accountTypeID uuid.UUID) error {
	return r.update(ctx, id, map[string]interface{}{
		"account_type_id": accountTypeID,
		"updated_at":      time.Now(),
	})
}

// Delete removes an identity
func (r *UserAccessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.UserAccess{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *UserAccessRepository) update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.UserAccess{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *UserAccessRepository) toEntity(m *models.UserAccess) *entities.UserAccess {
	u := &entities.UserAccess{
		ID:            m.ID,
		EmailOrPhone:  m.EmailOrPhone,
		Secret:        m.Secret,
		AccountTypeID: m.AccountTypeID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.AccountType != nil {
		u.AccountType = accountTypeToEntity(m.AccountType)
	}
	return u
}
