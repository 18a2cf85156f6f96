package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"github.com/Gitau-joseph/projectz/internal/config"
	"github.com/Gitau-joseph/projectz/internal/domain/entities"
	domainerrors "github.com/Gitau-joseph/projectz/internal/domain/errors"
	"github.com/Gitau-joseph/projectz/internal/domain/repositories"
	"github.com/Gitau-joseph/projectz/internal/domain/services"
)

// evmNetworks are the transfer rails whose addresses are EVM-shaped and
// can be validated client-side.
var evmNetworks = map[string]bool{
	"ERC20": true,
	"BEP20": true,
}

// ValidAddressForNetwork reports whether address is plausible for the
// given rail. Non-EVM rails are accepted as-is; their formats are owned by
// the custody service.
func ValidAddressForNetwork(address, network string) bool {
	if address == "" {
		return false
	}
	if evmNetworks[network] {
		return common.IsHexAddress(address)
	}
	return true
}

// DepositUsecase handles deposit submission and the admin review state
// machine.
type DepositUsecase struct {
	depositRepo repositories.DepositRepository
	userRepo    repositories.UserRepository
	uow         repositories.UnitOfWork
	walletSvc   services.WalletService
	walletCfg   config.WalletConfig
}

// NewDepositUsecase creates a new deposit usecase
func NewDepositUsecase(
	depositRepo repositories.DepositRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	walletSvc services.WalletService,
	walletCfg config.WalletConfig,
) *DepositUsecase {
	return &DepositUsecase{
		depositRepo: depositRepo,
		userRepo:    userRepo,
		uow:         uow,
		walletSvc:   walletSvc,
		walletCfg:   walletCfg,
	}
}

// Submit records a self-reported deposit as pending. The caller must have
// an approved KYC status; the amount must be positive.
func (u *DepositUsecase) Submit(ctx context.Context, userID uuid.UUID, input *entities.CreateDepositInput) (*entities.Deposit, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.KYCStatus != entities.KYCApproved {
		return nil, domainerrors.ErrKYCRequired
	}
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidInput
	}

	deposit := &entities.Deposit{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    input.Amount,
		Network:   u.walletCfg.Network,
		Status:    entities.DepositStatusPending,
		CreatedAt: time.Now(),
	}
	if input.TxHash != "" {
		deposit.TxHash = null.StringFrom(input.TxHash)
	}

	if err := u.depositRepo.Create(ctx, deposit); err != nil {
		return nil, err
	}
	return deposit, nil
}

// DepositAddress resolves the custody address shown to a depositor. The
// caller must have an approved KYC status.
func (u *DepositUsecase) DepositAddress(ctx context.Context, userID uuid.UUID) (*entities.DepositAddressView, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.KYCStatus != entities.KYCApproved {
		return nil, domainerrors.ErrKYCRequired
	}

	address, err := u.walletSvc.GetDepositAddress(ctx, u.walletCfg.Asset, u.walletCfg.Network)
	if err != nil {
		return nil, err
	}
	if !ValidAddressForNetwork(address, u.walletCfg.Network) {
		return nil, domainerrors.NewAppError(500, domainerrors.CodeInternal, "deposit address misconfigured", nil)
	}

	return &entities.DepositAddressView{
		Address: address,
		Network: u.walletCfg.Network,
	}, nil
}

// Approve drives the pending->approved transition. The crediting side
// effect and the status change commit in one transaction; a deposit that
// is already approved reports alreadyApplied with no mutation, so retried
// or duplicated approvals cannot double-credit.
func (u *DepositUsecase) Approve(ctx context.Context, id uuid.UUID) (deposit *entities.Deposit, alreadyApplied bool, err error) {
	deposit, err = u.depositRepo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	credit, err := deposit.Approve()
	if err != nil {
		if errors.Is(err, entities.ErrAlreadyApplied) {
			return deposit, true, nil
		}
		return nil, false, err
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.depositRepo.UpdateStatus(ctx, id, entities.DepositStatusApproved); err != nil {
			return err
		}
		return u.userRepo.ApplyDepositCredit(ctx, credit.UserID, credit.Amount)
	})
	if err != nil {
		// A concurrent approval won the guarded UPDATE between our read
		// and the transaction. Nothing was credited here; report the
		// same benign outcome as a plain re-approval.
		if errors.Is(err, entities.ErrAlreadyApplied) {
			return deposit, true, nil
		}
		return nil, false, err
	}
	return deposit, false, nil
}

// Reject marks a deposit rejected. No balance side effect; repeatable.
// An approved deposit cannot be rejected: the credit has already been
// applied, and reopening it would let a second approval credit again.
func (u *DepositUsecase) Reject(ctx context.Context, id uuid.UUID) (*entities.Deposit, error) {
	deposit, err := u.depositRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := deposit.Reject(); err != nil {
		return nil, err
	}
	if err := u.depositRepo.UpdateStatus(ctx, id, entities.DepositStatusRejected); err != nil {
		return nil, err
	}
	return deposit, nil
}

// List returns all deposits, newest first (admin review queue)
func (u *DepositUsecase) List(ctx context.Context) ([]*entities.Deposit, error) {
	return u.depositRepo.List(ctx)
}

// ListByUser returns one user's deposits, newest first
func (u *DepositUsecase) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Deposit, error) {
	return u.depositRepo.ListByUser(ctx, userID)
}
