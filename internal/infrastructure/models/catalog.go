package models

import (
	"time"

	"github.com/google/uuid"
)

type AccountType struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time
}

func (AccountType) TableName() string {
	return "account_types"
}

type CardScheme struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time
}

func (CardScheme) TableName() string {
	return "card_schemes"
}

type SimScheme struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time
}

func (SimScheme) TableName() string {
	return "sim_schemes"
}
