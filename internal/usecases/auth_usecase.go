package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"hubtel-wallet.backend/internal/domain/entities"
	domainerrors "hubtel-wallet.backend/internal/domain/errors"
	"hubtel-wallet.backend/internal/domain/repositories"
	"hubtel-wallet.backend/pkg/crypto"
	"hubtel-wallet.backend/pkg/jwt"
	"hubtel-wallet.backend/pkg/logger"
	"hubtel-wallet.backend/pkg/metrics"
	"hubtel-wallet.backend/pkg/utils"
	"hubtel-wallet.backend/pkg/validation"
)

// AuthUsecase handles identity registration, login and token refresh
type AuthUsecase struct {
	userRepo    repositories.UserAccessRepository
	profileRepo repositories.ProfileRepository
	walletRepo  repositories.WalletAccountRepository
	catalog     CatalogLookup
	sealer      crypto.CredentialSealer
	jwtService  *jwt.JWTService
	metrics     *metrics.Metrics
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserAccessRepository,
	profileRepo repositories.ProfileRepository,
	walletRepo repositories.WalletAccountRepository,
	catalog CatalogLookup,
	sealer crypto.CredentialSealer,
	jwtService *jwt.JWTService,
	m *metrics.Metrics,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		walletRepo:  walletRepo,
		catalog:     catalog,
		sealer:      sealer,
		jwtService:  jwtService,
		metrics:     m,
	}
}

// Register creates a new identity
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.UserAccess, error) {
	emailOrPhone := strings.TrimSpace(input.EmailOrPhone)
	if !validation.IsEmailOrPhone(emailOrPhone) {
		return nil, domainerrors.BadRequest("email or phone number is invalid")
	}
	if !validation.IsStrongPassword(input.Password) {
		return nil, domainerrors.BadRequest("password is too weak")
	}

	accountType, err := u.catalog.ResolveAccountType(ctx, input.AccountType)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("account type not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	_, err = u.userRepo.GetByEmailOrPhone(ctx, emailOrPhone)
	if err == nil {
		return nil, domainerrors.Conflict("identity already exists")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	secret, err := u.sealer.Seal(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	now := time.Now()
	user := &entities.UserAccess{
		ID:            utils.GenerateUUIDv7(),
		EmailOrPhone:  emailOrPhone,
		Secret:        secret,
		AccountTypeID: accountType.ID,
		AccountType:   accountType,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("identity already exists")
		}
		return nil, domainerrors.InternalError(err)
	}

	logger.Info(ctx, "Identity registered", zap.String("identity_id", user.ID.String()), zap.String("account_type", accountType.Name))
	return user, nil
}

// Login compares the submitted password with the stored secret and issues tokens
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmailOrPhone(ctx, strings.TrimSpace(input.EmailOrPhone))
	if err != nil {
		u.metrics.IncrementAuth("login", "failure")
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InvalidCredentials()
		}
		return nil, domainerrors.InternalError(err)
	}

	if !u.sealer.Matches(input.Password, user.Secret) {
		u.metrics.IncrementAuth("login", "failure")
		return nil, domainerrors.InvalidCredentials()
	}

	resp, err := u.issue(user)
	if err != nil {
		u.metrics.IncrementAuth("login", "failure")
		return nil, err
	}
	u.metrics.IncrementAuth("login", "success")
	return resp, nil
}

// RefreshToken reissues a token pair from a valid refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*entities.AuthResponse, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		u.metrics.IncrementAuth("refresh", "failure")
		return nil, domainerrors.Unauthorized("invalid token")
	}

	identityID, err := claims.IdentityID()
	if err != nil {
		u.metrics.IncrementAuth("refresh", "failure")
		return nil, domainerrors.Unauthorized("invalid token")
	}

	user, err := u.userRepo.GetByID(ctx, identityID)
	if err != nil {
		u.metrics.IncrementAuth("refresh", "failure")
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("invalid token")
		}
		return nil, domainerrors.InternalError(err)
	}
	if user.EmailOrPhone != claims.Subject {
		u.metrics.IncrementAuth("refresh", "failure")
		return nil, domainerrors.Unauthorized("invalid token")
	}

	resp, err := u.issue(user)
	if err != nil {
		u.metrics.IncrementAuth("refresh", "failure")
		return nil, err
	}
	u.metrics.IncrementAuth("refresh", "success")
	return resp, nil
}

// GetMe returns the requester's identity
func (u *AuthUsecase) GetMe(ctx context.Context, requester string) (*entities.UserAccess, error) {
	return findRequester(ctx, u.userRepo, requester)
}

// ChangePassword verifies the current password and reseals the new one
func (u *AuthUsecase) ChangePassword(ctx context.Context, requester string, input *entities.ChangePasswordInput) error {
	user, err := findRequester(ctx, u.userRepo, requester)
	if err != nil {
		return err
	}

	if !u.sealer.Matches(input.CurrentPassword, user.Secret) {
		return domainerrors.InvalidCredentials()
	}
	if !validation.IsStrongPassword(input.NewPassword) {
		return domainerrors.BadRequest("password is too weak")
	}

	secret, err := u.sealer.Seal(input.NewPassword)
	if err != nil {
		return domainerrors.InternalError(err)
	}
	if err := u.userRepo.UpdateSecret(ctx, user.ID, secret); err != nil {
		return domainerrors.InternalError(err)
	}
	return nil
}

// ChangeAccountType switches the requester's account type. Only allowed while
// the requester's profile owns no wallet accounts.
func (u *AuthUsecase) ChangeAccountType(ctx context.Context, requester string, input *entities.ChangeAccountTypeInput) (*entities.UserAccess, error) {
	user, err := findRequester(ctx, u.userRepo, requester)
	if err != nil {
		return nil, err
	}

	accountType, err := u.catalog.ResolveAccountType(ctx, input.AccountType)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("account type not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	if accountType.ID == user.AccountTypeID {
		user.AccountType = accountType
		return user, nil
	}

	profile, err := u.profileRepo.GetByUserAccessID(ctx, user.ID)
	switch {
	case err == nil:
		count, err := u.walletRepo.CountByProfile(ctx, profile.ID)
		if err != nil {
			return nil, domainerrors.InternalError(err)
		}
		if count > 0 {
			return nil, domainerrors.BadRequest("account type cannot change while wallet accounts exist")
		}
	case !errors.Is(err, domainerrors.ErrNotFound):
		return nil, domainerrors.InternalError(err)
	}

	if err := u.userRepo.UpdateAccountType(ctx, user.ID, accountType.ID); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	user.AccountTypeID = accountType.ID
	user.AccountType = accountType
	return user, nil
}

// DeleteIdentity removes the requester's identity once no profile depends on it
func (u *AuthUsecase) DeleteIdentity(ctx context.Context, requester string) error {
	user, err := findRequester(ctx, u.userRepo, requester)
	if err != nil {
		return err
	}

	_, err = u.profileRepo.GetByUserAccessID(ctx, user.ID)
	if err == nil {
		return domainerrors.BadRequest("delete the profile before deleting the identity")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.InternalError(err)
	}

	if err := u.userRepo.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("identity not found")
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

func (u *AuthUsecase) issue(user *entities.UserAccess) (*entities.AuthResponse, error) {
	role := ""
	if user.AccountType != nil {
		role = user.AccountType.Name
	}

	pair, err := u.jwtService.IssueTokenPair(user.EmailOrPhone, role, user.ID)
	if err != nil {
		if errors.Is(err, jwt.ErrSigningConfigMissing) {
			return nil, domainerrors.ConfigurationError("token signing is not configured", err)
		}
		return nil, domainerrors.InternalError(err)
	}

	return &entities.AuthResponse{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		AccessExpiresAt:  pair.AccessExpiresAt,
		RefreshExpiresAt: pair.RefreshExpiresAt,
		User:             user,
	}, nil
}
