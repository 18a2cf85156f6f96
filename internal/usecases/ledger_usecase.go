package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/Gitau-joseph/projectz/internal/config"
	"github.com/Gitau-joseph/projectz/internal/domain/entities"
	domainerrors "github.com/Gitau-joseph/projectz/internal/domain/errors"
	"github.com/Gitau-joseph/projectz/internal/domain/interest"
	"github.com/Gitau-joseph/projectz/internal/domain/repositories"
)

// LedgerUsecase computes the dashboard read model and applies the manual
// admin balance adjustments.
type LedgerUsecase struct {
	userRepo    repositories.UserRepository
	kycRepo     repositories.KYCRepository
	depositRepo repositories.DepositRepository
	investCfg   config.InvestmentConfig

	now func() time.Time
}

// NewLedgerUsecase creates a new ledger usecase
func NewLedgerUsecase(
	userRepo repositories.UserRepository,
	kycRepo repositories.KYCRepository,
	depositRepo repositories.DepositRepository,
	investCfg config.InvestmentConfig,
) *LedgerUsecase {
	return &LedgerUsecase{
		userRepo:    userRepo,
		kycRepo:     kycRepo,
		depositRepo: depositRepo,
		investCfg:   investCfg,
		now:         time.Now,
	}
}

// Dashboard builds the user's read model: profile, latest KYC submission
// and one row per deposit with accrued interest and per-deposit withdrawal
// eligibility. The summed interest is persisted as total_earnings, a
// derived cache rewritten on every dashboard read; balance is never
// touched here.
func (u *LedgerUsecase) Dashboard(ctx context.Context, userID uuid.UUID) (*entities.DashboardView, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	latestKYC, err := u.kycRepo.LatestByUser(ctx, userID)
	if err != nil && err != domainerrors.ErrNotFound {
		return nil, err
	}

	deposits, err := u.depositRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	views := make([]*entities.DepositView, 0, len(deposits))
	totalEarnings := 0.0
	for _, dep := range deposits {
		view := &entities.DepositView{Deposit: dep}
		if dep.Status == entities.DepositStatusApproved {
			view.Interest = interest.AccruedSince(dep.Amount, u.investCfg.WeeklyInterestRate, dep.CreatedAt, now)
			view.EligibleWithdrawal = interest.EligibleAt(dep.CreatedAt, now, u.investCfg.MinInvestDays)
			totalEarnings += view.Interest
		}
		views = append(views, view)
	}

	if err := u.userRepo.SetTotalEarnings(ctx, userID, totalEarnings); err != nil {
		return nil, err
	}
	user.TotalEarnings = totalEarnings

	return &entities.DashboardView{
		User:      user,
		LatestKYC: latestKYC,
		Deposits:  views,
	}, nil
}

// ListUsers returns users for the admin roster, filtered by a username
// or email substring when search is non-empty.
func (u *LedgerUsecase) ListUsers(ctx context.Context, search string) ([]*entities.User, error) {
	return u.userRepo.List(ctx, search)
}

// Credit applies a manual admin credit: balance only, total_deposits is a
// distinct path reserved for deposit approvals.
func (u *LedgerUsecase) Credit(ctx context.Context, userID uuid.UUID, amount float64) error {
	if amount <= 0 {
		return domainerrors.ErrInvalidInput
	}
	return u.userRepo.Credit(ctx, userID, amount)
}

// Debit applies a manual admin debit, failing without mutation when the
// amount is not positive or exceeds the current balance.
func (u *LedgerUsecase) Debit(ctx context.Context, userID uuid.UUID, amount float64) error {
	if amount <= 0 {
		return domainerrors.ErrInvalidInput
	}
	return u.userRepo.Debit(ctx, userID, amount)
}

// PlatformStats is the admin overview of the ledger.
type PlatformStats struct {
	TotalUsers      int     `json:"totalUsers"`
	PendingKYC      int64   `json:"pendingKyc"`
	PendingDeposits int64   `json:"pendingDeposits"`
	PlatformBalance float64 `json:"platformBalance"`
}

// Stats aggregates the admin dashboard counters.
func (u *LedgerUsecase) Stats(ctx context.Context) (*PlatformStats, error) {
	users, err := u.userRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	pendingKYC, err := u.kycRepo.CountByStatus(ctx, entities.KYCPending)
	if err != nil {
		return nil, err
	}

	pendingDeposits, err := u.depositRepo.CountByStatus(ctx, entities.DepositStatusPending)
	if err != nil {
		return nil, err
	}

	balance := 0.0
	for _, user := range users {
		balance += user.Balance
	}

	return &PlatformStats{
		TotalUsers:      len(users),
		PendingKYC:      pendingKYC,
		PendingDeposits: pendingDeposits,
		PlatformBalance: balance,
	}, nil
}
