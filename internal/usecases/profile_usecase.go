package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"hubtel-wallet.backend/internal/domain/entities"
	domainerrors "hubtel-wallet.backend/internal/domain/errors"
	"hubtel-wallet.backend/internal/domain/repositories"
	"hubtel-wallet.backend/pkg/utils"
	"hubtel-wallet.backend/pkg/validation"
)

// ProfileUsecase handles profile business logic
type ProfileUsecase struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserAccessRepository
	walletRepo  repositories.WalletAccountRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserAccessRepository,
	walletRepo repositories.WalletAccountRepository,
) *ProfileUsecase {
	return &ProfileUsecase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		walletRepo:  walletRepo,
	}
}

// CreateProfile creates the requester's profile. An identity has at most one.
func (u *ProfileUsecase) CreateProfile(ctx context.Context, requester string, input *entities.CreateProfileInput) (*entities.Profile, error) {
	identity, err := findRequester(ctx, u.userRepo, requester)
	if err != nil {
		return nil, err
	}

	legalName := strings.TrimSpace(input.LegalName)
	if legalName == "" {
		return nil, domainerrors.BadRequest("legal name is required")
	}
	nationalID, err := normalizeNationalID(input.NationalID)
	if err != nil {
		return nil, err
	}

	if _, err := u.profileRepo.GetByUserAccessID(ctx, identity.ID); err == nil {
		return nil, domainerrors.Conflict("identity already has a profile")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	if err := u.ensureUnique(ctx, uuid.Nil, legalName, nationalID); err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &entities.Profile{
		ID:           utils.GenerateUUIDv7(),
		UserAccessID: identity.ID,
		LegalName:    legalName,
		NationalID:   nationalID,
		DateOfBirth:  input.DateOfBirth,
		Address:      strings.TrimSpace(input.Address),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("profile already exists")
		}
		return nil, domainerrors.InternalError(err)
	}
	return profile, nil
}

// GetProfile gets a profile by id or legal name
func (u *ProfileUsecase) GetProfile(ctx context.Context, identifier string) (*entities.Profile, error) {
	return resolveProfile(ctx, u.profileRepo, identifier)
}

// ListProfiles lists profiles with pagination
func (u *ProfileUsecase) ListProfiles(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Profile, utils.PaginationMeta, error) {
	profiles, total, err := u.profileRepo.List(ctx, pagination)
	if err != nil {
		return nil, utils.PaginationMeta{}, domainerrors.InternalError(err)
	}
	return profiles, utils.CalculateMeta(total, pagination.Page, pagination.Limit), nil
}

// UpdateProfile updates the requester's own profile
func (u *ProfileUsecase) UpdateProfile(ctx context.Context, requester string, id uuid.UUID, input *entities.UpdateProfileInput) (*entities.Profile, error) {
	profile, err := u.loadOwned(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	legalName := profile.LegalName
	if input.LegalName != nil {
		legalName = strings.TrimSpace(*input.LegalName)
		if legalName == "" {
			return nil, domainerrors.BadRequest("legal name is required")
		}
	}
	nationalID := profile.NationalID
	if input.NationalID != nil {
		if nationalID, err = normalizeNationalID(*input.NationalID); err != nil {
			return nil, err
		}
	}

	if err := u.ensureUnique(ctx, profile.ID, legalName, nationalID); err != nil {
		return nil, err
	}

	profile.LegalName = legalName
	profile.NationalID = nationalID
	if input.DateOfBirth != nil {
		profile.DateOfBirth = input.DateOfBirth
	}
	if input.Address != nil {
		profile.Address = strings.TrimSpace(*input.Address)
	}
	profile.UpdatedAt = time.Now()

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrAlreadyExists):
			return nil, domainerrors.Conflict("profile already exists")
		case errors.Is(err, domainerrors.ErrNotFound):
			return nil, domainerrors.NotFound("profile not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return profile, nil
}

// DeleteProfile deletes the requester's own profile once it owns no wallet accounts
func (u *ProfileUsecase) DeleteProfile(ctx context.Context, requester string, id uuid.UUID) error {
	profile, err := u.loadOwned(ctx, requester, id)
	if err != nil {
		return err
	}

	count, err := u.walletRepo.CountByProfile(ctx, profile.ID)
	if err != nil {
		return domainerrors.InternalError(err)
	}
	if count > 0 {
		return domainerrors.BadRequest("profile still owns wallet accounts")
	}

	if err := u.profileRepo.Delete(ctx, profile.ID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("profile not found")
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

func (u *ProfileUsecase) loadOwned(ctx context.Context, requester string, id uuid.UUID) (*entities.Profile, error) {
	profile, err := u.profileRepo.GetByID(ctx, id)
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
	return profile, nil
}

// ensureUnique checks legal name and national id against profiles other than self
func (u *ProfileUsecase) ensureUnique(ctx context.Context, self uuid.UUID, legalName, nationalID string) error {
	existing, err := u.profileRepo.GetByNationalID(ctx, nationalID)
	if err == nil && existing.ID != self {
		return domainerrors.Conflict("national id is already registered")
	}
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.InternalError(err)
	}

	existing, err = u.profileRepo.GetByLegalName(ctx, legalName)
	if err == nil && existing.ID != self {
		return domainerrors.Conflict("legal name is already registered")
	}
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.InternalError(err)
	}
	return nil
}

func normalizeNationalID(s string) (string, error) {
	nid, ok := validation.ParseNationalID(s)
	if !ok {
		return "", domainerrors.BadRequest("national id must look like GHA-123456789-0")
	}
	return nid.String(), nil
}
