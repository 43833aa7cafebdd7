package entities

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the personal record attached to an identity
type Profile struct {
	ID           uuid.UUID  `json:"id"`
	UserAccessID uuid.UUID  `json:"userAccessId"`
	LegalName    string     `json:"legalName"`
	NationalID   string     `json:"nationalId"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	Address      string     `json:"address,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// CreateProfileInput represents input for creating a profile
type CreateProfileInput struct {
	LegalName   string     `json:"legalName" binding:"required,min=2,max=150"`
	NationalID  string     `json:"nationalId" binding:"required,nationalid"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Address     string     `json:"address" binding:"max=255"`
}

// UpdateProfileInput represents input for updating a profile
type UpdateProfileInput struct {
	LegalName   *string    `json:"legalName" binding:"omitempty,min=2,max=150"`
	NationalID  *string    `json:"nationalId" binding:"omitempty,nationalid"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Address     *string    `json:"address" binding:"omitempty,max=255"`
}
