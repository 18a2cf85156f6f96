package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DepositStatus represents deposit review status
type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "pending"
	DepositStatusApproved DepositStatus = "approved"
	DepositStatusRejected DepositStatus = "rejected"
)

// Transition outcomes for the deposit state machine.
var (
	// ErrAlreadyApplied signals a benign re-approval of an approved
	// deposit; the caller must not mutate anything.
	ErrAlreadyApplied = errors.New("deposit already approved")

	ErrInvalidReviewStatus = errors.New("invalid review status")
)

// Deposit represents a self-reported transfer into the custody wallet.
// CreatedAt is the accrual and eligibility epoch once the deposit is
// approved.
type Deposit struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"userId"`
	Amount    float64       `json:"amount"`
	Network   string        `json:"network"`
	TxHash    null.String   `json:"txHash,omitempty"`
	Status    DepositStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Credit is the side-effect instruction produced by an approval: add Amount
// to the owning user's balance and total_deposits. It is applied at most
// once per deposit, by a transactional adapter.
type Credit struct {
	UserID uuid.UUID
	Amount float64
}

// Approve transitions the deposit to approved and returns the crediting
// instruction. Re-approving an approved deposit returns ErrAlreadyApplied
// with no state change; this is what makes crediting idempotent. A rejected
// deposit may still be approved (resubmission review flow) and credits
// normally.
func (d *Deposit) Approve() (*Credit, error) {
	if d.Status == DepositStatusApproved {
		return nil, ErrAlreadyApplied
	}
	d.Status = DepositStatusApproved
	return &Credit{UserID: d.UserID, Amount: d.Amount}, nil
}

// Reject transitions the deposit to rejected. No balance side effect, and
// repeating it is harmless. approved is terminal: rejecting a credited
// deposit returns ErrAlreadyApplied, otherwise a later re-approval would
// credit the user a second time.
func (d *Deposit) Reject() error {
	if d.Status == DepositStatusApproved {
		return ErrAlreadyApplied
	}
	d.Status = DepositStatusRejected
	return nil
}

// CreateDepositInput represents input for submitting a deposit
type CreateDepositInput struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	TxHash string  `json:"txHash"`
}

// DepositView is the dashboard row for one deposit: the record plus the
// interest accrued so far and whether the per-deposit holding period has
// elapsed.
type DepositView struct {
	Deposit            *Deposit `json:"deposit"`
	Interest           float64  `json:"interest"`
	EligibleWithdrawal bool     `json:"eligibleWithdrawal"`
}

// DashboardView is the read model returned to the authenticated user.
type DashboardView struct {
	User      *User          `json:"user"`
	LatestKYC *KYCSubmission `json:"latestKyc,omitempty"`
	Deposits  []*DepositView `json:"deposits"`
}

// DepositAddressView carries the custody address shown to a depositor.
type DepositAddressView struct {
	Address string `json:"address"`
	Network string `json:"network"`
}

// WithdrawInput represents input for a withdrawal request
type WithdrawInput struct {
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Address string  `json:"address" binding:"required"`
	Network string  `json:"network"`
}

// WithdrawalEligibility is the can-withdraw tuple: eligible or not, with a
// user-facing reason when not.
type WithdrawalEligibility struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}
