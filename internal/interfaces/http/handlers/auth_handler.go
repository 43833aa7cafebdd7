package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"hubtel-wallet.backend/internal/domain/entities"
	"hubtel-wallet.backend/internal/interfaces/http/response"
)

type authService interface {
	Register(ctx context.Context, input *entities.RegisterInput) (*entities.UserAccess, error)
	Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*entities.AuthResponse, error)
	GetMe(ctx context.Context, requester string) (*entities.UserAccess, error)
	ChangePassword(ctx context.Context, requester string, input *entities.ChangePasswordInput) error
	ChangeAccountType(ctx context.Context, requester string, input *entities.ChangeAccountTypeInput) (*entities.UserAccess, error)
	DeleteIdentity(ctx context.Context, requester string) error
}

// AuthHandler handles identity endpoints
type AuthHandler struct {
	authUsecase authService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase authService) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register handles identity registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user":    user,
	})
}

// Login handles identity login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, authResponse)
}

// RefreshToken exchanges a refresh token for a new pair
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input entities.RefreshTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	authResponse, err := h.authUsecase.RefreshToken(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, authResponse)
}

// GetMe returns the authenticated identity
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	subject, ok := requester(c)
	if !ok {
		return
	}

	user, err := h.authUsecase.GetMe(c.Request.Context(), subject)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// ChangePassword handles password change
// POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	subject, ok := requester(c)
	if !ok {
		return
	}
	var input entities.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.authUsecase.ChangePassword(c.Request.Context(), subject, &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// ChangeAccountType switches the identity's account type
// PUT /api/v1/auth/account-type
func (h *AuthHandler) ChangeAccountType(c *gin.Context) {
	subject, ok := requester(c)
	if !ok {
		return
	}
	var input entities.ChangeAccountTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.authUsecase.ChangeAccountType(c.Request.Context(), subject, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// DeleteMe deletes the authenticated identity
// DELETE /api/v1/auth/me
func (h *AuthHandler) DeleteMe(c *gin.Context) {
	subject, ok := requester(c)
	if !ok {
		return
	}

	if err := h.authUsecase.DeleteIdentity(c.Request.Context(), subject); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
