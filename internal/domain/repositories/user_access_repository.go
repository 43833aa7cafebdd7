package repositories

import (
	"context"

	"github.com/google/uuid"
	"hubtel-wallet.backend/internal/domain/entities"
)

// UserAccessRepository defines identity data operations
type UserAccessRepository interface {
	Create(ctx context.Context, user *entities.UserAccess) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.UserAccess, error)
	GetByEmailOrPhone(ctx context.Context, emailOrPhone string) (*entities.UserAccess, error)
	UpdateSecret(ctx context.Context, id uuid.UUID, secret string) error
	UpdateAccountType(ctx context.Context, id uuid.UUID, accountTypeID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
