package models

import (
	"time"

	"github.com/google/uuid"
)

type KYCSubmission struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName     string    `gorm:"type:varchar(200);not null"`
	IDNumber     string    `gorm:"type:varchar(100);not null"`
	DocumentPath string    `gorm:"type:varchar(300)"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time
}
