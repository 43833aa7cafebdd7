package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"hubtel-wallet.backend/internal/domain/entities"
	"hubtel-wallet.backend/internal/interfaces/http/response"
)

type catalogService interface {
	ListAccountTypes(ctx context.Context) ([]*entities.AccountType, error)
	CreateAccountType(ctx context.Context, input *entities.CreateCatalogEntryInput) (*entities.AccountType, error)
	ListCardSchemes(ctx context.Context) ([]*entities.CardScheme, error)
	CreateCardScheme(ctx context.Context, input *entities.CreateCatalogEntryInput) (*entities.CardScheme, error)
	ListSimSchemes(ctx context.Context) ([]*entities.SimScheme, error)
	CreateSimScheme(ctx context.Context, input *entities.CreateCatalogEntryInput) (*entities.SimScheme, error)
}

// CatalogHandler handles account type and scheme catalog endpoints
type CatalogHandler struct {
	catalogUsecase catalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUsecase catalogService) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

// ListAccountTypes GET /api/v1/account-types
func (h *CatalogHandler) ListAccountTypes(c *gin.Context) {
	items, err := h.catalogUsecase.ListAccountTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// CreateAccountType POST /api/v1/account-types
func (h *CatalogHandler) CreateAccountType(c *gin.Context) {
	var input entities.CreateCatalogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	item, err := h.catalogUsecase.CreateAccountType(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

// ListCardSchemes GET /api/v1/card-schemes
func (h *CatalogHandler) ListCardSchemes(c *gin.Context) {
	items, err := h.catalogUsecase.ListCardSchemes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// CreateCardScheme POST /api/v1/card-schemes
func (h *CatalogHandler) CreateCardScheme(c *gin.Context) {
	var input entities.CreateCatalogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	item, err := h.catalogUsecase.CreateCardScheme(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

// ListSimSchemes GET /api/v1/sim-schemes
func (h *CatalogHandler) ListSimSchemes(c *gin.Context) {
	items, err := h.catalogUsecase.ListSimSchemes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// CreateSimScheme POST /api/v1/sim-schemes
func (h *CatalogHandler) CreateSimScheme(c *gin.Context) {
	var input entities.CreateCatalogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	item, err := h.catalogUsecase.CreateSimScheme(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}
