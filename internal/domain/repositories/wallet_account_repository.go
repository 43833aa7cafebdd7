package repositories

import (
	"context"

	"github.com/google/uuid"
	"hubtel-wallet.backend/internal/domain/entities"
)

// WalletAccountRepository defines wallet account data operations
type WalletAccountRepository interface {
	Create(ctx context.Context, account *entities.WalletAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.WalletAccount, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entities.WalletAccount, error)
	CountByProfile(ctx context.Context, profileID uuid.UUID) (int64, error)
	AccountNumberExists(ctx context.Context, accountNumber string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
