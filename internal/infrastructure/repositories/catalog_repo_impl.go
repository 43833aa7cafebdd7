package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"hubtel-wallet.backend/internal/domain/entities"
	"hubtel-wallet.backend/internal/infrastructure/models"
)

// CatalogRepository implements account type and scheme catalog operations
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const byName = "LOWER(name) = LOWER(?)"

// ListAccountTypes lists account types ordered by name
func (r *CatalogRepository) ListAccountTypes(ctx context.Context) ([]*entities.AccountType, error) {
	var rows []models.AccountType
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.AccountType, 0, len(rows))
	for i := range rows {
		out = append(out, accountTypeToEntity(&rows[i]))
	}
	return out, nil
}

// GetAccountTypeByID gets an account type by ID
func (r *CatalogRepository) GetAccountTypeByID(ctx context.Context, id uuid.UUID) (*entities.AccountType, error) {
	var m models.AccountType
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return accountTypeToEntity(&m), nil
}

// GetAccountTypeByName gets an account type by name, ignoring case
func (r *CatalogRepository) GetAccountTypeByName(ctx context.Context, name string) (*entities.AccountType, error) {
	var m models.AccountType
	if err := GetDB(ctx, r.db).WithContext(ctx).Where(byName, name).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return accountTypeToEntity(&m), nil
}

// CreateAccountType adds an account type
func (r *CatalogRepository) CreateAccountType(ctx context.Context, accountType *entities.AccountType) error {
	m := &models.AccountType{ID: accountType.ID, Name: accountType.Name, CreatedAt: accountType.CreatedAt}
	return translateError(GetDB(ctx, r.db).WithContext(ctx).Create(m).Error)
}

// ListCardSchemes lists card schemes ordered by name
func (r *CatalogRepository) ListCardSchemes(ctx context.Context) ([]*entities.CardScheme, error) {
	var rows []models.CardScheme
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.CardScheme, 0, len(rows))
	for _, m := range rows {
		out = append(out, &entities.CardScheme{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt})
	}
	return out, nil
}

// GetCardSchemeByName gets a card scheme by name, ignoring case
func (r *CatalogRepository) GetCardSchemeByName(ctx context.Context, name string) (*entities.CardScheme, error) {
	var m models.CardScheme
	if err := GetDB(ctx, r.db).WithContext(ctx).Where(byName, name).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return &entities.CardScheme{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt}, nil
}

// CreateCardScheme adds a card scheme
func (r *CatalogRepository) CreateCardScheme(ctx context.Context, scheme *entities.CardScheme) error {
	m := &models.CardScheme{ID: scheme.ID, Name: scheme.Name, CreatedAt: scheme.CreatedAt}
	return translateError(GetDB(ctx, r.db).WithContext(ctx).Create(m).Error)
}

// ListSimSchemes lists sim schemes ordered by name
func (r *CatalogRepository) ListSimSchemes(ctx context.Context) ([]*entities.SimScheme, error) {
	var rows []models.SimScheme
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.SimScheme, 0, len(rows))
	for _, m := range rows {
		out = append(out, &entities.SimScheme{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt})
	}
	return out, nil
}

// GetSimSchemeByName gets a sim scheme by name, ignoring case
func (r *CatalogRepository) GetSimSchemeByName(ctx context.Context, name string) (*entities.SimScheme, error) {
	var m models.SimScheme
	if err := GetDB(ctx, r.db).WithContext(ctx).Where(byName, name).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return &entities.SimScheme{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt}, nil
}

// CreateSimScheme adds a sim scheme
func (r *CatalogRepository) CreateSimScheme(ctx context.Context, scheme *entities.SimScheme) error {
	m := &models.SimScheme{ID: scheme.ID, Name: scheme.Name, CreatedAt: scheme.CreatedAt}
	return translateError(GetDB(ctx, r.db).WithContext(ctx).Create(m).Error)
}

func accountTypeToEntity(m *models.AccountType) *entities.AccountType {
	// Kind stays empty for names outside the closed set
	kind, _ := entities.ParseAccountKind(m.Name)
	return &entities.AccountType{
		ID:        m.ID,
		Name:      m.Name,
		Kind:      kind,
		CreatedAt: m.CreatedAt,
	}
}
