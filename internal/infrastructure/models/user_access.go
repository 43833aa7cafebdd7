package models

import (
	"time"

	"github.com/google/uuid"
)

type UserAccess struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmailOrPhone  string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Secret        string    `gorm:"type:varchar(255);not null"`
	AccountTypeID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	AccountType *AccountType `gorm:"foreignKey:AccountTypeID;references:ID"`
}

func (UserAccess) TableName() string {
	return "user_access"
}
