package repositories

import (
	"context"

	"github.com/google/uuid"
	"hubtel-wallet.backend/internal/domain/entities"
	"hubtel-wallet.backend/pkg/utils"
)

// ProfileRepository defines profile data operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
	GetByLegalName(ctx context.Context, legalName string) (*entities.Profile, error)
	GetByNationalID(ctx context.Context, nationalID string) (*entities.Profile, error)
	GetByUserAccessID(ctx context.Context, userAccessID uuid.UUID) (*entities.Profile, error)
	List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Profile, int64, error)
	Update(ctx context.Context, profile *entities.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Lock takes a row lock on the profile for the surrounding transaction
	Lock(ctx context.Context, id uuid.UUID) error
}
