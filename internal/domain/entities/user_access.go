package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserAccess is a login identity keyed by email or phone number
type UserAccess struct {
	ID            uuid.UUID    `json:"id"`
	EmailOrPhone  string       `json:"emailOrPhone"`
	Secret        string       `json:"-"`
	AccountTypeID uuid.UUID    `json:"accountTypeId"`
	AccountType   *AccountType `json:"accountType,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// RegisterInput represents input for creating an identity
type RegisterInput struct {
	EmailOrPhone string `json:"emailOrPhone" binding:"required,emailorphone"`
	Password     string `json:"password" binding:"required,strongpassword"`
	AccountType  string `json:"accountType" binding:"required"`
}

// LoginInput represents input for identity login
type LoginInput struct {
	EmailOrPhone string `json:"emailOrPhone" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

// RefreshTokenInput represents input for token refresh
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordInput represents input for changing the identity secret
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,strongpassword"`
}

// ChangeAccountTypeInput represents input for switching the identity's account type
type ChangeAccountTypeInput struct {
	AccountType string `json:"accountType" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken      string      `json:"accessToken"`
	RefreshToken     string      `json:"refreshToken"`
	AccessExpiresAt  time.Time   `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time   `json:"refreshExpiresAt"`
	User             *UserAccess `json:"user"`
}
