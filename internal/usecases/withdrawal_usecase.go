package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/Gitau-joseph/projectz/internal/config"
	"github.com/Gitau-joseph/projectz/internal/domain/entities"
	domainerrors "github.com/Gitau-joseph/projectz/internal/domain/errors"
	"github.com/Gitau-joseph/projectz/internal/domain/interest"
	"github.com/Gitau-joseph/projectz/internal/domain/repositories"
	"github.com/Gitau-joseph/projectz/internal/domain/services"
)

// WithdrawalUsecase authorizes and executes user withdrawals. Eligibility
// is anchored to the user's earliest approved deposit against the same
// holding period the dashboard shows per deposit.
type WithdrawalUsecase struct {
	userRepo    repositories.UserRepository
	depositRepo repositories.DepositRepository
	walletSvc   services.WalletService
	investCfg   config.InvestmentConfig
	walletCfg   config.WalletConfig

	now func() time.Time
}

// NewWithdrawalUsecase creates a new withdrawal usecase
func NewWithdrawalUsecase(
	userRepo repositories.UserRepository,
	depositRepo repositories.DepositRepository,
	walletSvc services.WalletService,
	investCfg config.InvestmentConfig,
	walletCfg config.WalletConfig,
) *WithdrawalUsecase {
	return &WithdrawalUsecase{
		userRepo:    userRepo,
		depositRepo: depositRepo,
		walletSvc:   walletSvc,
		investCfg:   investCfg,
		walletCfg:   walletCfg,
		now:         time.Now,
	}
}

// Eligibility returns the can-withdraw tuple for a user.
func (u *WithdrawalUsecase) Eligibility(ctx context.Context, userID uuid.UUID) (*entities.WithdrawalEligibility, error) {
	earliest, err := u.depositRepo.EarliestApproved(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return &entities.WithdrawalEligibility{
				Eligible: false,
				Reason:   "No approved deposits yet.",
			}, nil
		}
		return nil, err
	}

	if !interest.EligibleAt(earliest.CreatedAt, u.now(), u.investCfg.MinInvestDays) {
		return &entities.WithdrawalEligibility{
			Eligible: false,
			Reason:   fmt.Sprintf("Deposits must be at least %d days old to withdraw.", u.investCfg.MinInvestDays),
		}, nil
	}

	return &entities.WithdrawalEligibility{Eligible: true}, nil
}

// Withdraw checks the holding period, debits the balance, then asks the
// custody service to pay out. Returns the custody receipt.
//
// The debit runs before the payout: its balance guard serializes
// concurrent withdrawals, so funds can never leave custody twice against
// the same balance. If the payout itself fails the debit is refunded.
func (u *WithdrawalUsecase) Withdraw(ctx context.Context, userID uuid.UUID, input *entities.WithdrawInput) (string, error) {
	if input.Amount <= 0 {
		return "", domainerrors.ErrInvalidInput
	}

	network := input.Network
	if network == "" {
		network = u.walletCfg.Network
	}
	if !ValidAddressForNetwork(input.Address, network) {
		return "", domainerrors.ErrInvalidInput
	}

	earliest, err := u.depositRepo.EarliestApproved(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.ErrNoApprovedDeposits
		}
		return "", err
	}
	if !interest.EligibleAt(earliest.CreatedAt, u.now(), u.investCfg.MinInvestDays) {
		return "", domainerrors.ErrHoldingPeriod
	}

	if err := u.userRepo.Debit(ctx, userID, input.Amount); err != nil {
		return "", err
	}

	receipt, err := u.walletSvc.Withdraw(ctx, u.walletCfg.Asset, input.Amount, input.Address, network)
	if err != nil {
		if refundErr := u.userRepo.RefundDebit(ctx, userID, input.Amount); refundErr != nil {
			return "", fmt.Errorf("payout failed (%w) and refund failed: %v", err, refundErr)
		}
		return "", err
	}
	return receipt, nil
}
