package models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserAccessID uuid.UUID  `gorm:"type:uuid;not null;index"`
	LegalName    string     `gorm:"type:varchar(150);uniqueIndex;not null"`
	NationalID   string     `gorm:"type:varchar(20);uniqueIndex;not null"`
	DateOfBirth  *time.Time `gorm:"type:date"`
	Address      string     `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Profile) TableName() string {
	return "profiles"
}
