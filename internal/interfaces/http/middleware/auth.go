package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	domainerrors "hubtel-wallet.backend/internal/domain/errors"
	"hubtel-wallet.backend/internal/interfaces/http/response"
	"hubtel-wallet.backend/pkg/jwt"
	"hubtel-wallet.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// SubjectKey is the context key for the token subject (email or phone)
	SubjectKey = "subject"
	// RoleKey is the context key for the account type name
	RoleKey = "role"
	// IdentityIDKey is the context key for the identity id
	IdentityIDKey = "identity_id"
)

// AuthMiddleware requires a valid bearer access token
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			reject(c, "authorization header is required")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			reject(c, "invalid authorization format, use: Bearer <token>")
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(authHeader, BearerPrefix))
		if err != nil {
			reject(c, "invalid token")
			return
		}
		identityID, err := claims.IdentityID()
		if err != nil {
			reject(c, "invalid token")
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Set(RoleKey, claims.Role)
		c.Set(IdentityIDKey, identityID)

		ctx := context.WithValue(c.Request.Context(), logger.IdentityIDKey, identityID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func reject(c *gin.Context, message string) {
	logger.Debug(c.Request.Context(), "Request rejected by auth",
		zap.String("path", c.Request.URL.Path),
		zap.String("reason", message),
	)
	response.Error(c, domainerrors.Unauthorized(message))
	c.Abort()
}

// GetSubject gets the token subject from context
func GetSubject(c *gin.Context) (string, bool) {
	subject, exists := c.Get(SubjectKey)
	if !exists {
		return "", false
	}
	s, ok := subject.(string)
	return s, ok
}

// GetRole gets the account type name from context
func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(RoleKey)
	if !exists {
		return "", false
	}
	r, ok := role.(string)
	return r, ok
}

// GetIdentityID gets the identity id from context
func GetIdentityID(c *gin.Context) (uuid.UUID, bool) {
	id, exists := c.Get(IdentityIDKey)
	if !exists {
		return uuid.Nil, false
	}
	u, ok := id.(uuid.UUID)
	return u, ok
}
