package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"hubtel-wallet.backend/internal/domain/entities"
	domainerrors "hubtel-wallet.backend/internal/domain/errors"
	"hubtel-wallet.backend/internal/infrastructure/models"
)

// WalletAccountRepository implements wallet account data operations
type WalletAccountRepository struct {
	db *gorm.DB
}

// NewWalletAccountRepository creates a new wallet account repository
func NewWalletAccountRepository(db *gorm.DB) *WalletAccountRepository {
	return &WalletAccountRepository{db: db}
}

// Create inserts a wallet account. A duplicate account number yields ErrAlreadyExists.
func (r *WalletAccountRepository) Create(ctx context.Context, account *entities.WalletAccount) error {
	cardSchemeID, err := nullableUUID(account.CardSchemeID)
	if err != nil {
		return err
	}
	simSchemeID, err := nullableUUID(account.SimSchemeID)
	if err != nil {
		return err
	}

	m := &models.WalletAccount{
		ID:            account.ID,
		ProfileID:     account.ProfileID,
		AccountTypeID: account.AccountTypeID,
		AccountNumber: account.AccountNumber,
		CardSchemeID:  cardSchemeID,
		SimSchemeID:   simSchemeID,
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
	return translateError(GetDB(ctx, r.db).WithContext(ctx).Create(m).Error)
}

// GetByID gets a wallet account by ID
func (r *WalletAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.WalletAccount, error) {
	var m models.WalletAccount
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// ListByProfile lists a profile's wallet accounts, oldest first
func (r *WalletAccountRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entities.WalletAccount, error) {
	var rows []models.WalletAccount
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("profile_id = ?", profileID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.WalletAccount, 0, len(rows))
	for i := range rows {
		out = append(out, r.toEntity(&rows[i]))
	}
	return out, nil
}

// CountByProfile counts a profile's wallet accounts
func (r *WalletAccountRepository) CountByProfile(ctx context.Context, profileID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.WalletAccount{}).Where("profile_id = ?", profileID).Count(&count).Error
	return count, err
}

// AccountNumberExists reports whether any wallet account carries accountNumber
func (r *WalletAccountRepository) AccountNumberExists(ctx context.Context, accountNumber string) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.WalletAccount{}).Where("account_number = ?", accountNumber).Count(&count).Error
	return count > 0, err
}

// Delete removes a wallet account
func (r *WalletAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.WalletAccount{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *WalletAccountRepository) toEntity(m *models.WalletAccount) *entities.WalletAccount {
	return &entities.WalletAccount{
		ID:            m.ID,
		ProfileID:     m.ProfileID,
		AccountTypeID: m.AccountTypeID,
		AccountNumber: m.AccountNumber,
		CardSchemeID:  nullString(m.CardSchemeID),
		SimSchemeID:   nullString(m.SimSchemeID),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func nullableUUID(s null.String) (*uuid.UUID, error) {
	if !s.Valid {
		return nil, nil
	}
	id, err := uuid.Parse(s.String)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func nullString(id *uuid.UUID) null.String {
	if id == nil {
		return null.String{}
	}
	return null.StringFrom(id.String())
}
