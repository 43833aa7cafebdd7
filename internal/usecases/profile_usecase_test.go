package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"hubtel-wallet.backend/internal/domain/entities"
	domainerrors "hubtel-wallet.backend/internal/domain/errors"
	"hubtel-wallet.backend/internal/usecases"
	"hubtel-wallet.backend/pkg/utils"
)

func newProfileUsecaseForTest() (*usecases.ProfileUsecase, *MockProfileRepository, *MockUserAccessRepository, *MockWalletAccountRepository) {
	profiles := new(MockProfileRepository)
	users := new(MockUserAccessRepository)
	wallets := new(MockWalletAccountRepository)
	return usecases.NewProfileUsecase(profiles, users, wallets), profiles, users, wallets
}

func TestProfileUsecase_CreateProfile_Success(t *testing.T) {
	uc, profiles, users, _ := newProfileUsecaseForTest()
	identity := &entities.UserAccess{ID: uuid.New(), EmailOrPhone: "a@mail.com"}

	users.On("GetByEmailOrPhone", mock.Anything, "a@mail.com").Return(identity, nil)
	profiles.On("GetByUserAccessID", mock.Anything, identity.ID).Return(nil, domainerrors.ErrNotFound)
	profiles.On("GetByNationalID", mock.Anything, "GHA-123456789-0").Return(nil, domainerrors.ErrNotFound)
	profiles.On("GetByLegalName", mock.Anything, "Ama Mensah").Return(nil, domainerrors.ErrNotFound)
	profiles.On("Create", mock.Anything, mock.AnythingOfType("*entities.Profile")).Return(nil).Once()

	profile, err := uc.CreateProfile(context.Background(), "a@mail.com", &entities.CreateProfileInput{
		LegalName:  " Ama Mensah ",
		NationalID: "gha-123456789-0",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ama Mensah", profile.LegalName)
	assert.Equal(t, "GHA-123456789-0", profile.NationalID)
	assert.Equal(t, identity.ID, profile.UserAccessID)
	profiles.AssertExpectations(t)
}

func TestProfileUsecase_CreateProfile_Rejections(t *testing.T) {
	identity := &entities.UserAccess{ID: uuid.New(), EmailOrPhone: "a@mail.com"}

	t.Run("bad national id", func(t *testing.T) {
		uc, _, users, _ := newProfileUsecaseForTest()
		users.On("GetByEmailOrPhone", mock.Anything, "a@mail.com").Return(identity, nil)

		_, err := uc.CreateProfile(context.Background(), "a@mail.com", &entities.CreateProfileInput{LegalName: "Ama", NationalID: "GHA-12-0"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("already has profile", func(t *testing.T) {
		uc, profiles, users, _ := newProfileUsecaseForTest()
		users.On("GetByEmailOrPhone", mock.Anything, "a@mail.com").Return(identity, nil)
		profiles.On("GetByUserAccessID", mock.Anything, identity.ID).Return(&entities.Profile{ID: uuid.New()}, nil)

		_, err := uc.CreateProfile(context.Background(), "a@mail.com", &entities.CreateProfileInput{LegalName: "Ama", NationalID: "GHA-123456789-0"})
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	})

	t.Run("national id taken", func(t *testing.T) {
		uc, profiles, users, _ := newProfileUsecaseForTest()
		users.On("GetByEmailOrPhone", mock.Anything, "a@mail.com").Return(identity, nil)
		profiles.On("GetByUserAccessID", mock.Anything, identity.ID).Return(nil, domainerrors.ErrNotFound)
		profiles.On("GetByNationalID", mock.Anything, "GHA-123456789-0").Return(&entities.Profile{ID: uuid.New()}, nil)

		_, err := uc.CreateProfile(context.Background(), "a@mail.com", &entities.CreateProfileInput{LegalName: "Ama", NationalID: "GHA-123456789-0"})
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
		profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown requester", func(t *testing.T) {
		uc, _, users, _ := newProfileUsecaseForTest()
		users.On("GetByEmailOrPhone", mock.Anything, "ghost@mail.com").Return(nil, domainerrors.ErrNotFound)

		_, err := uc.CreateProfile(context.Background(), "ghost@mail.com", &entities.CreateProfileInput{LegalName: "Ama", NationalID: "GHA-123456789-0"})
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestProfileUsecase_GetProfile(t *testing.T) {
	uc, profiles, _, _ := newProfileUsecaseForTest()
	profile := &entities.Profile{ID: uuid.New(), LegalName: "Ama Mensah"}
	profiles.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
	profiles.On("GetByLegalName", mock.Anything, "Ama Mensah").Return(profile, nil)
	profiles.On("GetByLegalName", mock.Anything, "Kofi").Return(nil, domainerrors.ErrNotFound)

	got, err := uc.GetProfile(context.Background(), profile.ID.String())
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	got, err = uc.GetProfile(context.Background(), "Ama Mensah")
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	_, err = uc.GetProfile(context.Background(), "Kofi")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = uc.GetProfile(context.Background(), "  ")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileUsecase_ListProfiles(t *testing.T) {
	uc, profiles, _, _ := newProfileUsecaseForTest()
	params := utils.GetPaginationParams(2, 10)
	items := []*entities.Profile{{ID: uuid.New()}}
	profiles.On("List", mock.Anything, params).Return(items, int64(11), nil)

	got, meta, err := uc.ListProfiles(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, items, got)
	assert.Equal(t, int64(11), meta.TotalCount)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestProfileUsecase_UpdateProfile(t *testing.T) {
	uc, profiles, users, _ := newProfileUsecaseForTest()
	identity := &entities.UserAccess{ID: uuid.New(), EmailOrPhone: "a@mail.com"}
	profile := &entities.Profile{ID: uuid.New(), UserAccessID: identity.ID, LegalName: "Ama", NationalID: "GHA-123456789-0"}
	newName := "Ama Owusu"
	address := " Accra "

	profiles.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
	users.On("GetByEmailOrPhone", mock.Anything, "a@mail.com").Return(identity, nil)
	profiles.On("GetByNationalID", mock.Anything, "GHA-123456789-0").Return(profile, nil)
	profiles.On("GetByLegalName", mock.Anything, newName).Return(nil, domainerrors.ErrNotFound)
	profiles.On("Update", mock.Anything, profile).Return(nil).Once()

	updated, err := uc.UpdateProfile(context.Background(), "a@mail.com", profile.ID, &entities.UpdateProfileInput{LegalName: &newName, Address: &address})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.LegalName)
	assert.Equal(t, "Accra", updated.Address)
}

func TestProfileUsecase_UpdateProfile_NotOwner(t *testing.T) {
	uc, profiles, users, _ := newProfileUsecaseForTest()
	profile := &entities.Profile{ID: uuid.New(), UserAccessID: uuid.New()}
	profiles.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
	users.On("GetByEmailOrPhone", mock.Anything, "b@mail.com").Return(&entities.UserAccess{ID: uuid.New()}, nil)

	_, err := uc.UpdateProfile(context.Background(), "b@mail.com", profile.ID, &entities.UpdateProfileInput{})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	profiles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProfileUsecase_DeleteProfile(t *testing.T) {
	identity := &entities.UserAccess{ID: uuid.New(), EmailOrPhone: "a@mail.com"}

	t.Run("wallet accounts remain", func(t *testing.T) {
		uc, profiles, users, wallets := newProfileUsecaseForTest()
		profile := &entities.Profile{ID: uuid.New(), UserAccessID: identity.ID}
		profiles.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
		users.On("GetByEmailOrPhone", mock.Anything, "a@mail.com").Return(identity, nil)
		wallets.On("CountByProfile", mock.Anything, profile.ID).Return(int64(2), nil)

		err := uc.DeleteProfile(context.Background(), "a@mail.com", profile.ID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		profiles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deleted", func(t *testing.T) {
		uc, profiles, users, wallets := newProfileUsecaseForTest()
		profile := &entities.Profile{ID: uuid.New(), UserAccessID: identity.ID}
		profiles.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
		users.On("GetByEmailOrPhone", mock.Anything, "a@mail.com").Return(identity, nil)
		wallets.On("CountByProfile", mock.Anything, profile.ID).Return(int64(0), nil)
		profiles.On("Delete", mock.Anything, profile.ID).Return(nil).Once()

		require.NoError(t, uc.DeleteProfile(context.Background(), "a@mail.com", profile.ID))
		profiles.AssertExpectations(t)
	})

	t.Run("missing", func(t *testing.T) {
		uc, profiles, _, _ := newProfileUsecaseForTest()
		id := uuid.New()
		profiles.On("GetByID", mock.Anything, id).Return(nil, domainerrors.ErrNotFound)

		err := uc.DeleteProfile(context.Background(), "a@mail.com", id)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
