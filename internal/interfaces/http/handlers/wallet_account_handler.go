package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"hubtel-wallet.backend/internal/domain/entities"
	"hubtel-wallet.backend/internal/interfaces/http/response"
)

type walletAccountService interface {
	CreateWalletAccount(ctx context.Context, requester string, input *entities.CreateWalletAccountInput) (*entities.WalletAccountResult, error)
	ListWalletAccounts(ctx context.Context, requester, profileIdentifier string) ([]*entities.WalletAccount, error)
	GetWalletAccount(ctx context.Context, requester string, id uuid.UUID) (*entities.WalletAccount, error)
	DeleteWalletAccount(ctx context.Context, requester string, id uuid.UUID) error
}

// WalletAccountHandler handles wallet account endpoints
type WalletAccountHandler struct {
	walletAccountUsecase walletAccountService
}

// NewWalletAccountHandler creates a new wallet account handler
func NewWalletAccountHandler(walletAccountUsecase walletAccountService) *WalletAccountHandler {
	return &WalletAccountHandler{walletAccountUsecase: walletAccountUsecase}
}

// CreateWalletAccount provisions a card or mobile money account
// POST /api/v1/wallet-accounts
func (h *WalletAccountHandler) CreateWalletAccount(c *gin.Context) {
	subject, ok := requester(c)
	if !ok {
		return
	}
	// no binding tags: the usecase validates fields in step order
	var input entities.CreateWalletAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.walletAccountUsecase.CreateWalletAccount(c.Request.Context(), subject, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result)
}

// ListWalletAccounts lists a profile's wallet accounts
// GET /api/v1/profiles/:id/wallet-accounts
func (h *WalletAccountHandler) ListWalletAccounts(c *gin.Context) {
	subject, ok := requester(c)
	if !ok {
		return
	}

	items, err := h.walletAccountUsecase.ListWalletAccounts(c.Request.Context(), subject, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetWalletAccount GET /api/v1/wallet-accounts/:id
func (h *WalletAccountHandler) GetWalletAccount(c *gin.Context) {
	subject, ok := requester(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	account, err := h.walletAccountUsecase.GetWalletAccount(c.Request.Context(), subject, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, account)
}

// DeleteWalletAccount DELETE /api/v1/wallet-accounts/:id
func (h *WalletAccountHandler) DeleteWalletAccount(c *gin.Context) {
	subject, ok := requester(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.walletAccountUsecase.DeleteWalletAccount(c.Request.Context(), subject, id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
