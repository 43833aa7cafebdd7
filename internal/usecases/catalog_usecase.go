package usecases

import (
	"context"
	"errors"
	"time"

	"hubtel-wallet.backend/internal/domain/entities"
	domainerrors "hubtel-wallet.backend/internal/domain/errors"
	"hubtel-wallet.backend/internal/domain/repositories"
	"hubtel-wallet.backend/pkg/utils"
)

// CatalogUsecase manages account types and the card and sim scheme catalogs
type CatalogUsecase struct {
	catalogRepo repositories.CatalogRepository
	resolver    *CatalogResolver
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(catalogRepo repositories.CatalogRepository, resolver *CatalogResolver) *CatalogUsecase {
	return &CatalogUsecase{catalogRepo: catalogRepo, resolver: resolver}
}

// ListAccountTypes lists account types
func (u *CatalogUsecase) ListAccountTypes(ctx context.Context) ([]*entities.AccountType, error) {
	items, err := u.catalogRepo.ListAccountTypes(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return items, nil
}

// CreateAccountType adds an account type. Only card and momo are accepted.
func (u *CatalogUsecase) CreateAccountType(ctx context.Context, input *entities.CreateCatalogEntryInput) (*entities.AccountType, error) {
	kind, ok := entities.ParseAccountKind(input.Name)
	if !ok {
		return nil, domainerrors.BadRequest("account type must be card or momo")
	}

	accountType := &entities.AccountType{
		ID:        utils.GenerateUUIDv7(),
		Name:      kind.String(),
		Kind:      kind,
		CreatedAt: time.Now(),
	}
	if err := u.catalogRepo.CreateAccountType(ctx, accountType); err != nil {
		return nil, u.createError(err, "account type already exists")
	}
	u.invalidate()
	return accountType, nil
}

// ListCardSchemes lists card schemes
func (u *CatalogUsecase) ListCardSchemes(ctx context.Context) ([]*entities.CardScheme, error) {
	items, err := u.catalogRepo.ListCardSchemes(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return items, nil
}

// CreateCardScheme adds a card scheme
func (u *CatalogUsecase) CreateCardScheme(ctx context.Context, input *entities.CreateCatalogEntryInput) (*entities.CardScheme, error) {
	name := normalizeName(input.Name)
	if name == "" {
		return nil, domainerrors.BadRequest("scheme name is required")
	}

	scheme := &entities.CardScheme{ID: utils.GenerateUUIDv7(), Name: name, CreatedAt: time.Now()}
	if err := u.catalogRepo.CreateCardScheme(ctx, scheme); err != nil {
		return nil, u.createError(err, "card scheme already exists")
	}
	u.invalidate()
	return scheme, nil
}

// ListSimSchemes lists sim schemes
func (u *CatalogUsecase) ListSimSchemes(ctx context.Context) ([]*entities.SimScheme, error) {
	items, err := u.catalogRepo.ListSimSchemes(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return items, nil
}

// CreateSimScheme adds a sim scheme
func (u *CatalogUsecase) CreateSimScheme(ctx context.Context, input *entities.CreateCatalogEntryInput) (*entities.SimScheme, error) {
	name := normalizeName(input.Name)
	if name == "" {
		return nil, domainerrors.BadRequest("scheme name is required")
	}

	scheme := &entities.SimScheme{ID: utils.GenerateUUIDv7(), Name: name, CreatedAt: time.Now()}
	if err := u.catalogRepo.CreateSimScheme(ctx, scheme); err != nil {
		return nil, u.createError(err, "sim scheme already exists")
	}
	u.invalidate()
	return scheme, nil
}

func (u *CatalogUsecase) createError(err error, conflictMsg string) error {
	if errors.Is(err, domainerrors.ErrAlreadyExists) {
		return domainerrors.Conflict(conflictMsg)
	}
	return domainerrors.InternalError(err)
}

func (u *CatalogUsecase) invalidate() {
	if u.resolver != nil {
		u.resolver.Invalidate()
	}
}
