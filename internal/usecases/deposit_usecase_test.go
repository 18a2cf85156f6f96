package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Gitau-joseph/projectz/internal/config"
	"github.com/Gitau-joseph/projectz/internal/domain/entities"
	domainerrors "github.com/Gitau-joseph/projectz/internal/domain/errors"
	"github.com/Gitau-joseph/projectz/internal/usecases"
)

func testWalletCfg() config.WalletConfig {
	return config.WalletConfig{
		MasterAddress: "TXYZa1b2c3d4e5f6g7h8i9j0",
		Asset:         "USDT",
		Network:       "TRC20",
	}
}

func TestDepositUsecase_Submit(t *testing.T) {
	mockDepositRepo := new(MockDepositRepository)
	mockUserRepo := new(MockUserRepository)
	mockUow := new(MockUnitOfWork)
	mockWallet := new(MockWalletService)
	uc := usecases.NewDepositUsecase(mockDepositRepo, mockUserRepo, mockUow, mockWallet, testWalletCfg())
	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.On("GetByID", ctx, userID).
		Return(&entities.User{ID: userID, KYCStatus: entities.KYCApproved}, nil).Once()
	mockDepositRepo.On("Create", ctx, mock.AnythingOfType("*entities.Deposit")).Return(nil).Once()

	dep, err := uc.Submit(ctx, userID, &entities.CreateDepositInput{Amount: 500, TxHash: "0xabc"})
	assert.NoError(t, err)
	assert.Equal(t, entities.DepositStatusPending, dep.Status)
	assert.Equal(t, "TRC20", dep.Network)
	assert.Equal(t, "0xabc", dep.TxHash.String)
	mockDepositRepo.AssertExpectations(t)
}

func TestDepositUsecase_Submit_RequiresApprovedKYC(t *testing.T) {
	mockDepositRepo := new(MockDepositRepository)
	mockUserRepo := new(MockUserRepository)
	mockUow := new(MockUnitOfWork)
	mockWallet := new(MockWalletService)
	uc := usecases.NewDepositUsecase(mockDepositRepo, mockUserRepo, mockUow, mockWallet, testWalletCfg())
	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.On("GetByID", ctx, userID).
		Return(&entities.User{ID: userID, KYCStatus: entities.KYCPending}, nil).Once()

	_, err := uc.Submit(ctx, userID, &entities.CreateDepositInput{Amount: 500})
	assert.ErrorIs(t, err, domainerrors.ErrKYCRequired)
	mockDepositRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDepositUsecase_Approve_CreditsOnce(t *testing.T) {
	mockDepositRepo := new(MockDepositRepository)
	mockUserRepo := new(MockUserRepository)
	mockUow := new(MockUnitOfWork)
	mockWallet := new(MockWalletService)
	uc := usecases.NewDepositUsecase(mockDepositRepo, mockUserRepo, mockUow, mockWallet, testWalletCfg())
	ctx := context.Background()

	userID := uuid.New()
	depositID := uuid.New()
	pending := &entities.Deposit{ID: depositID, UserID: userID, Amount: 300, Status: entities.DepositStatusPending}

	mockDepositRepo.On("GetByID", ctx, depositID).Return(pending, nil).Once()
	mockUow.On("Do", ctx, mock.Anything).Return(nil).Once()
	mockDepositRepo.On("UpdateStatus", ctx, depositID, entities.DepositStatusApproved).Return(nil).Once()
	mockUserRepo.On("ApplyDepositCredit", ctx, userID, 300.0).Return(nil).Once()

	dep, alreadyApplied, err := uc.Approve(ctx, depositID)
	assert.NoError(t, err)
	assert.False(t, alreadyApplied)
	assert.Equal(t, entities.DepositStatusApproved, dep.Status)

	// Second approval: already-approved record, no transaction, no credit.
	approved := &entities.Deposit{ID: depositID, UserID: userID, Amount: 300, Status: entities.DepositStatusApproved}
	mockDepositRepo.On("GetByID", ctx, depositID).Return(approved, nil).Once()

	dep, alreadyApplied, err = uc.Approve(ctx, depositID)
	assert.NoError(t, err)
	assert.True(t, alreadyApplied)
	assert.Equal(t, entities.DepositStatusApproved, dep.Status)

	mockUserRepo.AssertNumberOfCalls(t, "ApplyDepositCredit", 1)
	mockDepositRepo.AssertExpectations(t)
}

func TestDepositUsecase_ApproveAfterReject_Credits(t *testing.T) {
	mockDepositRepo := new(MockDepositRepository)
	mockUserRepo := new(MockUserRepository)
	mockUow := new(MockUnitOfWork)
	mockWallet := new(MockWalletService)
	uc := usecases.NewDepositUsecase(mockDepositRepo, mockUserRepo, mockUow, mockWallet, testWalletCfg())
	ctx := context.Background()

	userID := uuid.New()
	depositID := uuid.New()
	rejected := &entities.Deposit{ID: depositID, UserID: userID, Amount: 120, Status: entities.DepositStatusRejected}

	mockDepositRepo.On("GetByID", ctx, depositID).Return(rejected, nil).Once()
	mockUow.On("Do", ctx, mock.Anything).Return(nil).Once()
	mockDepositRepo.On("UpdateStatus", ctx, depositID, entities.DepositStatusApproved).Return(nil).Once()
	mockUserRepo.On("ApplyDepositCredit", ctx, userID, 120.0).Return(nil).Once()

	_, alreadyApplied, err := uc.Approve(ctx, depositID)
	assert.NoError(t, err)
	assert.False(t, alreadyApplied)
	mockUserRepo.AssertExpectations(t)
}

// When two approvals race, the loser's guarded status update matches no
// rows and its transaction aborts before crediting. The caller sees the
// same benign already-applied outcome as a plain re-approval.
func TestDepositUsecase_Approve_ConcurrentApprovalLosesGuard(t *testing.T) {
	mockDepositRepo := new(MockDepositRepository)
	mockUserRepo := new(MockUserRepository)
	mockUow := new(MockUnitOfWork)
	mockWallet := new(MockWalletService)
	uc := usecases.NewDepositUsecase(mockDepositRepo, mockUserRepo, mockUow, mockWallet, testWalletCfg())
	ctx := context.Background()

	userID := uuid.New()
	depositID := uuid.New()
	pending := &entities.Deposit{ID: depositID, UserID: userID, Amount: 300, Status: entities.DepositStatusPending}

	mockDepositRepo.On("GetByID", ctx, depositID).Return(pending, nil).Once()
	mockUow.On("Do", ctx, mock.Anything).Return(nil).Once()
	mockDepositRepo.On("UpdateStatus", ctx, depositID, entities.DepositStatusApproved).
		Return(entities.ErrAlreadyApplied).Once()

	dep, alreadyApplied, err := uc.Approve(ctx, depositID)
	assert.NoError(t, err)
	assert.True(t, alreadyApplied)
	assert.NotNil(t, dep)
	mockUserRepo.AssertNotCalled(t, "ApplyDepositCredit", mock.Anything, mock.Anything, mock.Anything)
}

func TestDepositUsecase_Reject(t *testing.T) {
	mockDepositRepo := new(MockDepositRepository)
	mockUserRepo := new(MockUserRepository)
	mockUow := new(MockUnitOfWork)
	mockWallet := new(MockWalletService)
	uc := usecases.NewDepositUsecase(mockDepositRepo, mockUserRepo, mockUow, mockWallet, testWalletCfg())
	ctx := context.Background()

	depositID := uuid.New()
	pending := &entities.Deposit{ID: depositID, UserID: uuid.New(), Amount: 100, Status: entities.DepositStatusPending}

	mockDepositRepo.On("GetByID", ctx, depositID).Return(pending, nil).Once()
	mockDepositRepo.On("UpdateStatus", ctx, depositID, entities.DepositStatusRejected).Return(nil).Once()

	dep, err := uc.Reject(ctx, depositID)
	assert.NoError(t, err)
	assert.Equal(t, entities.DepositStatusRejected, dep.Status)
	mockUserRepo.AssertNotCalled(t, "ApplyDepositCredit", mock.Anything, mock.Anything, mock.Anything)
	mockUserRepo.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything)
}

// Rejecting an approved deposit is refused outright. Allowing it would
// reopen the deposit for a second approval and a second credit.
func TestDepositUsecase_Reject_ApprovedDepositRefused(t *testing.T) {
	mockDepositRepo := new(MockDepositRepository)
	mockUserRepo := new(MockUserRepository)
	mockUow := new(MockUnitOfWork)
	mockWallet := new(MockWalletService)
	uc := usecases.NewDepositUsecase(mockDepositRepo, mockUserRepo, mockUow, mockWallet, testWalletCfg())
	ctx := context.Background()

	userID := uuid.New()
	depositID := uuid.New()
	approved := &entities.Deposit{ID: depositID, UserID: userID, Amount: 50, Status: entities.DepositStatusApproved}

	mockDepositRepo.On("GetByID", ctx, depositID).Return(approved, nil).Twice()

	_, err := uc.Reject(ctx, depositID)
	assert.ErrorIs(t, err, entities.ErrAlreadyApplied)
	mockDepositRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)

	// Approving again after the refused rejection stays a no-op; the
	// 50.0 credit from the original approval is the only one ever made.
	dep, alreadyApplied, err := uc.Approve(ctx, depositID)
	assert.NoError(t, err)
	assert.True(t, alreadyApplied)
	assert.Equal(t, entities.DepositStatusApproved, dep.Status)
	mockUserRepo.AssertNotCalled(t, "ApplyDepositCredit", mock.Anything, mock.Anything, mock.Anything)
}

func TestDepositUsecase_DepositAddress(t *testing.T) {
	mockDepositRepo := new(MockDepositRepository)
	mockUserRepo := new(MockUserRepository)
	mockUow := new(MockUnitOfWork)
	mockWallet := new(MockWalletService)
	uc := usecases.NewDepositUsecase(mockDepositRepo, mockUserRepo, mockUow, mockWallet, testWalletCfg())
	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.On("GetByID", ctx, userID).
		Return(&entities.User{ID: userID, KYCStatus: entities.KYCApproved}, nil).Once()
	mockWallet.On("GetDepositAddress", ctx, "USDT", "TRC20").
		Return("TXYZa1b2c3d4e5f6g7h8i9j0", nil).Once()

	view, err := uc.DepositAddress(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, "TXYZa1b2c3d4e5f6g7h8i9j0", view.Address)
	assert.Equal(t, "TRC20", view.Network)
}

func TestValidAddressForNetwork(t *testing.T) {
	assert.False(t, usecases.ValidAddressForNetwork("", "TRC20"))

	// EVM rails get hex validation.
	assert.True(t, usecases.ValidAddressForNetwork("0x52908400098527886E0F7030069857D2E4169EE7", "ERC20"))
	assert.False(t, usecases.ValidAddressForNetwork("not-an-address", "ERC20"))
	assert.False(t, usecases.ValidAddressForNetwork("0x1234", "BEP20"))

	// Other rails are passed through to the custody service.
	assert.True(t, usecases.ValidAddressForNetwork("TXYZa1b2c3d4e5f6g7h8i9j0", "TRC20"))
}
