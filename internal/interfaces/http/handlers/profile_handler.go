package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"hubtel-wallet.backend/internal/domain/entities"
	"hubtel-wallet.backend/internal/interfaces/http/response"
	"hubtel-wallet.backend/pkg/utils"
)

type profileService interface {
	CreateProfile(ctx context.Context, requester string, input *entities.CreateProfileInput) (*entities.Profile, error)
	GetProfile(ctx context.Context, identifier string) (*entities.Profile, error)
	ListProfiles(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Profile, utils.PaginationMeta, error)
	UpdateProfile(ctx context.Context, requester string, id uuid.UUID, input *entities.UpdateProfileInput) (*entities.Profile, error)
	DeleteProfile(ctx context.Context, requester string, id uuid.UUID) error
}

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profileUsecase profileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase profileService) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// CreateProfile creates the requester's profile
// POST /api/v1/profiles
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	subject, ok := requester(c)
	if !ok {
		return
	}
	var input entities.CreateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	profile, err := h.profileUsecase.CreateProfile(c.Request.Context(), subject, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, profile)
}

// GetProfile gets a profile by id or legal name
// GET /api/v1/profiles/:id
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileUsecase.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// ListProfiles lists profiles
// GET /api/v1/profiles?page=1&limit=20
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	pagination := utils.GetPaginationParams(page, limit)

	items, meta, err := h.profileUsecase.ListProfiles(c.Request.Context(), pagination)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, items, meta)
}

// UpdateProfile updates the requester's profile
// PUT /api/v1/profiles/:id
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	subject, ok := requester(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	profile, err := h.profileUsecase.UpdateProfile(c.Request.Context(), subject, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// DeleteProfile deletes the requester's profile
// DELETE /api/v1/profiles/:id
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	subject, ok := requester(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.profileUsecase.DeleteProfile(c.Request.Context(), subject, id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
