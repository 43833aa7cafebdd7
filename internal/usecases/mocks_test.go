package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"hubtel-wallet.backend/internal/domain/entities"
	"hubtel-wallet.backend/pkg/utils"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	args := m.Called(ctx, f)
	if err := args.Error(0); err != nil {
		return err
	}
	return f(ctx)
}

func (m *MockUnitOfWork) WithLock(ctx context.Context) context.Context {
	args := m.Called(ctx)
	return args.Get(0).(context.Context)
}

// Mock UserAccessRepository
type MockUserAccessRepository struct {
	mock.Mock
}

func (m *MockUserAccessRepository) Create(ctx context.Context, user *entities.UserAccess) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserAccessRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.UserAccess, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserAccess), args.Error(1)
}

func (m *MockUserAccessRepository) GetByEmailOrPhone(ctx context.Context, emailOrPhone string) (*entities.UserAccess, error) {
	args := m.Called(ctx, emailOrPhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserAccess), args.Error(1)
}

func (m *MockUserAccessRepository) UpdateSecret(ctx context.Context, id uuid.UUID, secret string) error {
	args := m.Called(ctx, id, secret)
	return args.Error(0)
}

func (m *MockUserAccessRepository) UpdateAccountType(ctx context.Context, id uuid.UUID, accountTypeID uuid.UUID) error {
	args := m.Called(ctx, id, accountTypeID)
	return args.Error(0)
}

func (m *MockUserAccessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByLegalName(ctx context.Context, legalName string) (*entities.Profile, error) {
	args := m.Called(ctx, legalName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByNationalID(ctx context.Context, nationalID string) (*entities.Profile, error) {
	args := m.Called(ctx, nationalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByUserAccessID(ctx context.Context, userAccessID uuid.UUID) (*entities.Profile, error) {
	args := m.Called(ctx, userAccessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Profile, int64, error) {
	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Profile), args.Get(1).(int64), args.Error(2)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfileRepository) Lock(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListAccountTypes(ctx context.Context) ([]*entities.AccountType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AccountType), args.Error(1)
}

func (m *MockCatalogRepository) GetAccountTypeByID(ctx context.Context, id uuid.UUID) (*entities.AccountType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AccountType), args.Error(1)
}

func (m *MockCatalogRepository) GetAccountTypeByName(ctx context.Context, name string) (*entities.AccountType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AccountType), args.Error(1)
}

func (m *MockCatalogRepository) CreateAccountType(ctx context.Context, accountType *entities.AccountType) error {
	args := m.Called(ctx, accountType)
	return args.Error(0)
}

func (m *MockCatalogRepository) ListCardSchemes(ctx context.Context) ([]*entities.CardScheme, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.CardScheme), args.Error(1)
}

func (m *MockCatalogRepository) GetCardSchemeByName(ctx context.Context, name string) (*entities.CardScheme, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CardScheme), args.Error(1)
}

func (m *MockCatalogRepository) CreateCardScheme(ctx context.Context, scheme *entities.CardScheme) error {
	args := m.Called(ctx, scheme)
	return args.Error(0)
}

func (m *MockCatalogRepository) ListSimSchemes(ctx context.Context) ([]*entities.SimScheme, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SimScheme), args.Error(1)
}

func (m *MockCatalogRepository) GetSimSchemeByName(ctx context.Context, name string) (*entities.SimScheme, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SimScheme), args.Error(1)
}

func (m *MockCatalogRepository) CreateSimScheme(ctx context.Context, scheme *entities.SimScheme) error {
	args := m.Called(ctx, scheme)
	return args.Error(0)
}

// Mock WalletAccountRepository
type MockWalletAccountRepository struct {
	mock.Mock
}

func (m *MockWalletAccountRepository) Create(ctx context.Context, account *entities.WalletAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockWalletAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.WalletAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WalletAccount), args.Error(1)
}

func (m *MockWalletAccountRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entities.WalletAccount, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.WalletAccount), args.Error(1)
}

func (m *MockWalletAccountRepository) CountByProfile(ctx context.Context, profileID uuid.UUID) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWalletAccountRepository) AccountNumberExists(ctx context.Context, accountNumber string) (bool, error) {
	args := m.Called(ctx, accountNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockWalletAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
