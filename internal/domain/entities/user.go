package entities

import (
	"time"

	"github.com/google/uuid"
)

// KYCStatus represents KYC verification status
type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCApproved KYCStatus = "approved"
	KYCRejected KYCStatus = "rejected"
)

// User represents a platform account. Balance fields are mutated only by
// the ledger operations (credit, debit, deposit approval); TotalEarnings
// is a derived cache rewritten on each dashboard read.
type User struct {
	ID               uuid.UUID  `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"`
	Balance          float64    `json:"balance"`
	TotalDeposits    float64    `json:"totalDeposits"`
	TotalWithdrawals float64    `json:"totalWithdrawals"`
	TotalEarnings    float64    `json:"totalEarnings"`
	KYCStatus        KYCStatus  `json:"kycStatus"`
	IsAdmin          bool       `json:"isAdmin"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	DeletedAt        *time.Time `json:"-"`
}

// CreateUserInput represents input for registration
type CreateUserInput struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginInput represents input for login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}

// AdjustmentInput represents a manual admin credit or debit amount
type AdjustmentInput struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
