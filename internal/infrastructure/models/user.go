package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email            string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	Balance          float64   `gorm:"not null;default:0"`
	TotalDeposits    float64   `gorm:"not null;default:0"`
	TotalWithdrawals float64   `gorm:"not null;default:0"`
	TotalEarnings    float64   `gorm:"not null;default:0"`
	KYCStatus        string    `gorm:"type:varchar(20);not null;default:'pending'"`
	IsAdmin          bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
