package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type Deposit struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index"`
	Amount    float64     `gorm:"not null"`
	Network   string      `gorm:"type:varchar(50);not null;default:'TRC20'"`
	TxHash    null.String `gorm:"type:varchar(200)"`
	Status    string      `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time
}
