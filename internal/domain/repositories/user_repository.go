package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/Gitau-joseph/projectz/internal/domain/entities"
)

// UserRepository defines user data operations. Credit, Debit and
// SetTotalEarnings are the only writers of the balance fields; Credit and
// Debit must be applied as a single atomic read-modify-write.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*entities.User, error)
	UpdateKYCStatus(ctx context.Context, id uuid.UUID, status entities.KYCStatus) error
	// Credit adds amount to balance only. Manual admin credits are a
	// distinct balance path from deposit crediting.
	Credit(ctx context.Context, id uuid.UUID, amount float64) error
	// ApplyDepositCredit adds amount to balance and total_deposits in one
	// statement; it is the crediting side effect of a deposit approval.
	ApplyDepositCredit(ctx context.Context, id uuid.UUID, amount float64) error
	// Debit subtracts amount from balance and adds it to total_withdrawals,
	// failing with ErrInsufficientFunds when balance < amount.
	Debit(ctx context.Context, id uuid.UUID, amount float64) error
	// RefundDebit reverses a Debit whose payout never went out: amount is
	// added back to balance and removed from total_withdrawals.
	RefundDebit(ctx context.Context, id uuid.UUID, amount float64) error
	SetTotalEarnings(ctx context.Context, id uuid.UUID, earnings float64) error
	SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error
	List(ctx context.Context, search string) ([]*entities.User, error)
}
