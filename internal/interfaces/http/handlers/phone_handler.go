package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"hubtel-wallet.backend/internal/interfaces/http/response"
	"hubtel-wallet.backend/pkg/validation"
)

// PhoneHandler exposes the phone number classifier
type PhoneHandler struct{}

// NewPhoneHandler creates a new phone handler
func NewPhoneHandler() *PhoneHandler {
	return &PhoneHandler{}
}

// GetOperator classifies a phone number. Unknown input is a result, not an error.
// GET /api/v1/phone-numbers/:number/operator
func (h *PhoneHandler) GetOperator(c *gin.Context) {
	number := c.Param("number")
	response.Success(c, http.StatusOK, gin.H{
		"number":   number,
		"operator": validation.ClassifyPhone(number),
	})
}
