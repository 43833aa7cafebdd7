package usecases

import (
	"context"
	"errors"
	"strings"

	"hubtel-wallet.backend/internal/domain/entities"
	domainerrors "hubtel-wallet.backend/internal/domain/errors"
	"hubtel-wallet.backend/internal/domain/repositories"
	"hubtel-wallet.backend/pkg/utils"
)

// findRequester loads the identity named by an access token subject
func findRequester(ctx context.Context, userRepo repositories.UserAccessRepository, requester string) (*entities.UserAccess, error) {
	requester = strings.TrimSpace(requester)
	if requester == "" {
		return nil, domainerrors.Unauthorized("requester identity is required")
	}
	identity, err := userRepo.GetByEmailOrPhone(ctx, requester)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("requester identity not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return identity, nil
}

// resolveProfile selects by id when identifier is a UUID, by legal name otherwise
func resolveProfile(ctx context.Context, profileRepo repositories.ProfileRepository, identifier string) (*entities.Profile, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, domainerrors.NotFound("profile not found")
	}

	var (
		profile *entities.Profile
		err     error
	)
	if id, ok := utils.ParseIdentifier(identifier); ok {
		profile, err = profileRepo.GetByID(ctx, id)
	} else {
		profile, err = profileRepo.GetByLegalName(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("profile not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return profile, nil
}

// ensureOwner requires strict identity-to-profile equality
func ensureOwner(identity *entities.UserAccess, profile *entities.Profile) error {
	if identity.ID != profile.UserAccessID {
		return domainerrors.Unauthorized("requester does not own this profile")
	}
	return nil
}

// asAppError passes AppErrors through and wraps anything else as internal
func asAppError(err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := domainerrors.AsAppError(err); ok {
		return appErr
	}
	return domainerrors.InternalError(err)
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
