package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
	"hubtel-wallet.backend/internal/domain/entities"
	domainerrors "hubtel-wallet.backend/internal/domain/errors"
	"hubtel-wallet.backend/internal/domain/repositories"
)

// CatalogLookup is the read-only catalog capability the provisioning rules depend on
type CatalogLookup interface {
	ResolveScheme(ctx context.Context, name string) (entities.SchemeMatch, error)
	ResolveAccountType(ctx context.Context, name string) (*entities.AccountType, error)
}

const (
	defaultCatalogTTL = 5 * time.Minute

	cardKeyPrefix        = "card:"
	simKeyPrefix         = "sim:"
	accountTypeKeyPrefix = "type:"
)

// CatalogResolver looks names up in the account type and scheme catalogs.
// Hits are cached in process; misses always go to the repository.
type CatalogResolver struct {
	catalogRepo repositories.CatalogRepository
	cache       *cache.Cache
}

// NewCatalogResolver creates a resolver whose entries live for ttl
func NewCatalogResolver(catalogRepo repositories.CatalogRepository, ttl time.Duration) *CatalogResolver {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	return &CatalogResolver{
		catalogRepo: catalogRepo,
		cache:       cache.New(ttl, 2*ttl),
	}
}

// ResolveScheme looks name up in both scheme catalogs independently.
// A name missing from a catalog leaves that side of the match nil.
func (r *CatalogResolver) ResolveScheme(ctx context.Context, name string) (entities.SchemeMatch, error) {
	key := normalizeName(name)
	var match entities.SchemeMatch
	if key == "" {
		return match, nil
	}

	if v, ok := r.cache.Get(cardKeyPrefix + key); ok {
		match.Card = v.(*entities.CardScheme)
	} else {
		card, err := r.catalogRepo.GetCardSchemeByName(ctx, key)
		switch {
		case err == nil:
			r.cache.SetDefault(cardKeyPrefix+key, card)
			match.Card = card
		case !errors.Is(err, domainerrors.ErrNotFound):
			return entities.SchemeMatch{}, err
		}
	}

	if v, ok := r.cache.Get(simKeyPrefix + key); ok {
		match.Sim = v.(*entities.SimScheme)
	} else {
		sim, err := r.catalogRepo.GetSimSchemeByName(ctx, key)
		switch {
		case err == nil:
			r.cache.SetDefault(simKeyPrefix+key, sim)
			match.Sim = sim
		case !errors.Is(err, domainerrors.ErrNotFound):
			return entities.SchemeMatch{}, err
		}
	}

	return match, nil
}

// ResolveAccountType returns the named account type with its kind resolved.
// Unknown names and names outside the closed kind set yield ErrNotFound.
func (r *CatalogResolver) ResolveAccountType(ctx context.Context, name string) (*entities.AccountType, error) {
	key := normalizeName(name)
	if key == "" {
		return nil, domainerrors.ErrNotFound
	}
	if v, ok := r.cache.Get(accountTypeKeyPrefix + key); ok {
		return v.(*entities.AccountType), nil
	}

	accountType, err := r.catalogRepo.GetAccountTypeByName(ctx, key)
	if err != nil {
		return nil, err
	}
	if accountType.Kind == "" {
		return nil, domainerrors.ErrNotFound
	}

	r.cache.SetDefault(accountTypeKeyPrefix+key, accountType)
	return accountType, nil
}

// Invalidate drops every cached entry
func (r *CatalogResolver) Invalidate() {
	r.cache.Flush()
}
