package models

import (
	"time"

	"github.com/google/uuid"
)

type WalletAccount struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProfileID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	AccountTypeID uuid.UUID  `gorm:"type:uuid;not null"`
	AccountNumber string     `gorm:"type:varchar(32);uniqueIndex;not null"`
	CardSchemeID  *uuid.UUID `gorm:"type:uuid"` // Nullable, set for card accounts
	SimSchemeID   *uuid.UUID `gorm:"type:uuid"` // Nullable, set for momo accounts
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (WalletAccount) TableName() string {
	return "wallet_accounts"
}
