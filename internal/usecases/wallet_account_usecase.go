package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"hubtel-wallet.backend/internal/domain/entities"
	domainerrors "hubtel-wallet.backend/internal/domain/errors"
	"hubtel-wallet.backend/internal/domain/repositories"
	"hubtel-wallet.backend/pkg/logger"
	"hubtel-wallet.backend/pkg/metrics"
	"hubtel-wallet.backend/pkg/utils"
	"hubtel-wallet.backend/pkg/validation"
)

const (
	// DefaultMaxAccountsPerProfile is the per-profile wallet account quota
	DefaultMaxAccountsPerProfile = 5

	cardNumberLength = 16
	cardPrefixLength = 6
)

// WalletAccountUsecase provisions and manages wallet accounts
type WalletAccountUsecase struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserAccessRepository
	walletRepo  repositories.WalletAccountRepository
	catalog     CatalogLookup
	uow         repositories.UnitOfWork
	maxAccounts int
	metrics     *metrics.Metrics
}

// NewWalletAccountUsecase creates a new wallet account usecase.
// maxAccounts <= 0 falls back to DefaultMaxAccountsPerProfile.
func NewWalletAccountUsecase(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserAccessRepository,
	walletRepo repositories.WalletAccountRepository,
	catalog CatalogLookup,
	uow repositories.UnitOfWork,
	maxAccounts int,
	m *metrics.Metrics,
) *WalletAccountUsecase {
	if maxAccounts <= 0 {
		maxAccounts = DefaultMaxAccountsPerProfile
	}
	return &WalletAccountUsecase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		walletRepo:  walletRepo,
		catalog:     catalog,
		uow:         uow,
		maxAccounts: maxAccounts,
		metrics:     m,
	}
}

// CreateWalletAccount decides whether the requested account may be created and persists it.
// Checks run in a fixed order: profile existence, field shape, scheme resolution,
// account number uniqueness, ownership, quota, account type, then the kind specific rules.
func (u *WalletAccountUsecase) CreateWalletAccount(ctx context.Context, requester string, input *entities.CreateWalletAccountInput) (*entities.WalletAccountResult, error) {
	start := time.Now()
	defer u.metrics.ObserveProvision(start)

	result, err := u.provision(ctx, requester, input)
	if err != nil {
		appErr, ok := domainerrors.AsAppError(err)
		if !ok {
			appErr = domainerrors.InternalError(err)
		}
		u.metrics.IncrementRejected(appErr.Code)
		logger.Debug(ctx, "Wallet account rejected",
			zap.String("code", appErr.Code),
			zap.String("reason", appErr.Message),
		)
		return nil, appErr
	}

	u.metrics.IncrementProvisioned(result.Account.Kind().String())
	logger.Info(ctx, "Wallet account provisioned",
		zap.String("wallet_account_id", result.Account.ID.String()),
		zap.String("profile_id", result.Account.ProfileID.String()),
		zap.String("kind", result.Account.Kind().String()),
	)
	return result, nil
}

func (u *WalletAccountUsecase) provision(ctx context.Context, requester string, input *entities.CreateWalletAccountInput) (*entities.WalletAccountResult, error) {
	// existence
	profile, err := resolveProfile(ctx, u.profileRepo, input.ProfileIdentifier)
	if err != nil {
		return nil, err
	}

	// shape
	number := strings.TrimSpace(input.AccountNumber)
	typeName := strings.TrimSpace(input.AccountType)
	schemeName := strings.TrimSpace(input.Scheme)
	if number == "" || typeName == "" || schemeName == "" {
		return nil, domainerrors.BadRequest("account number, account type and scheme are required")
	}
	if !validation.IsAccountNumberShape(number) {
		return nil, domainerrors.BadRequest("account number must be a phone number or a card number")
	}

	// scheme resolution, both catalogs
	match, err := u.catalog.ResolveScheme(ctx, schemeName)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if match.Empty() {
		return nil, domainerrors.BadRequest("scheme not found")
	}

	// uniqueness, against the submitted and the stored form
	for _, candidate := range storedForms(number) {
		exists, err := u.walletRepo.AccountNumberExists(ctx, candidate)
		if err != nil {
			return nil, domainerrors.InternalError(err)
		}
		if exists {
			return nil, domainerrors.Conflict("account number already exists")
		}
	}

	// ownership
	identity, err := findRequester(ctx, u.userRepo, requester)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(identity, profile); err != nil {
		return nil, err
	}

	// quota
	if err := u.checkQuota(ctx, profile.ID); err != nil {
		return nil, err
	}

	// account type
	accountType, err := u.catalog.ResolveAccountType(ctx, typeName)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("account type not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	if accountType.ID != identity.AccountTypeID {
		return nil, domainerrors.BadRequest("account type does not match identity")
	}

	now := time.Now()
	account := &entities.WalletAccount{
		ID:            utils.GenerateUUIDv7(),
		ProfileID:     profile.ID,
		AccountTypeID: accountType.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	result := &entities.WalletAccountResult{Account: account}

	switch accountType.Kind {
	case entities.AccountKindCard:
		if utf8.RuneCountInString(number) != cardNumberLength {
			return nil, domainerrors.BadRequest(fmt.Sprintf("card number must be %d characters", cardNumberLength))
		}
		if match.Card == nil {
			return nil, domainerrors.BadRequest("scheme does not belong to account type")
		}
		// only the leading fragment is kept
		account.AccountNumber = string([]rune(number)[:cardPrefixLength])
		account.CardSchemeID = null.StringFrom(match.Card.ID.String())
	case entities.AccountKindMomo:
		if !validation.IsStrictPhone(number) {
			return nil, domainerrors.BadRequest("mobile money number must be a valid phone number")
		}
		if match.Sim == nil {
			return nil, domainerrors.BadRequest("scheme does not belong to account type")
		}
		account.AccountNumber = number
		account.SimSchemeID = null.StringFrom(match.Sim.ID.String())
		result.Operator = string(validation.ClassifyPhone(number))
	default:
		return nil, domainerrors.BadRequest("unsupported account type")
	}

	if err := u.persist(ctx, account); err != nil {
		return nil, err
	}
	return result, nil
}

// storedForms lists the values number may occupy in the account number column.
// A card number is kept as its leading fragment.
func storedForms(number string) []string {
	forms := []string{number}
	if utf8.RuneCountInString(number) == cardNumberLength {
		forms = append(forms, string([]rune(number)[:cardPrefixLength]))
	}
	return forms
}

// persist inserts under a row lock on the profile so writes per profile serialize.
// The quota is re-checked under the lock; the unique index settles number races.
func (u *WalletAccountUsecase) persist(ctx context.Context, account *entities.WalletAccount) error {
	err := u.uow.Do(u.uow.WithLock(ctx), func(txCtx context.Context) error {
		if err := u.profileRepo.Lock(txCtx, account.ProfileID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NotFound("profile not found")
			}
			return err
		}
		if err := u.checkQuota(txCtx, account.ProfileID); err != nil {
			return err
		}
		if err := u.walletRepo.Create(txCtx, account); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				return domainerrors.Conflict("account number already exists")
			}
			return err
		}
		return nil
	})
	return asAppError(err)
}

func (u *WalletAccountUsecase) checkQuota(ctx context.Context, profileID uuid.UUID) error {
	count, err := u.walletRepo.CountByProfile(ctx, profileID)
	if err != nil {
		return domainerrors.InternalError(err)
	}
	if count >= int64(u.maxAccounts) {
		return domainerrors.BadRequest(fmt.Sprintf("profile already owns the maximum of %d wallet accounts", u.maxAccounts))
	}
	return nil
}

// ListWalletAccounts lists the wallet accounts of a profile the requester owns
func (u *WalletAccountUsecase) ListWalletAccounts(ctx context.Context, requester, profileIdentifier string) ([]*entities.WalletAccount, error) {
	profile, err := resolveProfile(ctx, u.profileRepo, profileIdentifier)
	if err != nil {
		return nil, err
	}
	identity, err := findRequester(ctx, u.userRepo, requester)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(identity, profile); err != nil {
		return nil, err
	}

	items, err := u.walletRepo.ListByProfile(ctx, profile.ID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return items, nil
}

// GetWalletAccount gets one of the requester's wallet accounts
func (u *WalletAccountUsecase) GetWalletAccount(ctx context.Context, requester string, id uuid.UUID) (*entities.WalletAccount, error) {
	return u.loadOwned(ctx, requester, id)
}

// DeleteWalletAccount deletes one of the requester's wallet accounts
func (u *WalletAccountUsecase) DeleteWalletAccount(ctx context.Context, requester string, id uuid.UUID) error {
	account, err := u.loadOwned(ctx, requester, id)
	if err != nil {
		return err
	}
	if err := u.walletRepo.Delete(ctx, account.ID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("wallet account not found")
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

func (u *WalletAccountUsecase) loadOwned(ctx context.Context, requester string, id uuid.UUID) (*entities.WalletAccount, error) {
	account, err := u.walletRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("wallet account not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	profile, err := u.profileRepo.GetByID(ctx, account.ProfileID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("profile not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	identity, err := findRequester(ctx, u.userRepo, requester)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(identity, profile); err != nil {
		return nil, err
	}
	return account, nil
}
