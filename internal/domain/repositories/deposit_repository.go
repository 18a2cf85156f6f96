package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/Gitau-joseph/projectz/internal/domain/entities"
)

// DepositRepository defines deposit data operations
type DepositRepository interface {
	Create(ctx context.Context, deposit *entities.Deposit) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Deposit, error)
	// ListByUser returns a user's deposits, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Deposit, error)
	// EarliestApproved returns the oldest approved deposit for a user, or
	// ErrNotFound when none exists. Withdrawal authorization is anchored to
	// this record.
	EarliestApproved(ctx context.Context, userID uuid.UUID) (*entities.Deposit, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.DepositStatus) error
	List(ctx context.Context) ([]*entities.Deposit, error)
	CountByStatus(ctx context.Context, status entities.DepositStatus) (int64, error)
	// UserIDsWithApproved returns the distinct users owning at least one
	// approved deposit.
	UserIDsWithApproved(ctx context.Context) ([]uuid.UUID, error)
}

// UnitOfWork defines the interface for atomic multi-repository operations
type UnitOfWork interface {
	// Do executes the given function within a transaction scope
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
