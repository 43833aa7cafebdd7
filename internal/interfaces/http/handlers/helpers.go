package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "hubtel-wallet.backend/internal/domain/errors"
	"hubtel-wallet.backend/internal/interfaces/http/middleware"
	"hubtel-wallet.backend/internal/interfaces/http/response"
)

// requester returns the authenticated subject or writes a 401
func requester(c *gin.Context) (string, bool) {
	subject, ok := middleware.GetSubject(c)
	if !ok || subject == "" {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return "", false
	}
	return subject, true
}

// pathID parses the :id path parameter or writes a 400
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}
