package repositories

import (
	"context"

	"github.com/google/uuid"
	"hubtel-wallet.backend/internal/domain/entities"
)

// CatalogRepository defines account type and scheme catalog operations
type CatalogRepository interface {
	ListAccountTypes(ctx context.Context) ([]*entities.AccountType, error)
	GetAccountTypeByID(ctx context.Context, id uuid.UUID) (*entities.AccountType, error)
	GetAccountTypeByName(ctx context.Context, name string) (*entities.AccountType, error)
	CreateAccountType(ctx context.Context, accountType *entities.AccountType) error

	ListCardSchemes(ctx context.Context) ([]*entities.CardScheme, error)
	GetCardSchemeByName(ctx context.Context, name string) (*entities.CardScheme, error)
	CreateCardScheme(ctx context.Context, scheme *entities.CardScheme) error

	ListSimSchemes(ctx context.Context) ([]*entities.SimScheme, error)
	GetSimSchemeByName(ctx context.Context, name string) (*entities.SimScheme, error)
	CreateSimScheme(ctx context.Context, scheme *entities.SimScheme) error
}
