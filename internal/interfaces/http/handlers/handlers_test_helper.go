package handlers

import (
	"context"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gitau-joseph/projectz/internal/domain/entities"
	domainerrors "github.com/Gitau-joseph/projectz/internal/domain/errors"
	"github.com/Gitau-joseph/projectz/internal/interfaces/http/middleware"
	"github.com/Gitau-joseph/projectz/pkg/jwt"
)

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService("test-secret", time.Hour, 24*time.Hour)
}

// asUser wraps a handler so it runs with an authenticated user already
// resolved, skipping the auth middleware.
func asUser(userID uuid.UUID, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		h(c)
	}
}

type userRepoStub struct {
	createFn    func(ctx context.Context, user *entities.User) error
	getByIDFn   func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmail  func(ctx context.Context, email string) (*entities.User, error)
	getByEither func(ctx context.Context, username, email string) (*entities.User, error)
	creditFn    func(ctx context.Context, id uuid.UUID, amount float64) error
	debitFn     func(ctx context.Context, id uuid.UUID, amount float64) error
	refundFn    func(ctx context.Context, id uuid.UUID, amount float64) error
	listFn      func(ctx context.Context, search string) ([]*entities.User, error)

	depositCredits int
	kycUpdates     []entities.KYCStatus
	earnings       map[uuid.UUID]float64
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmail != nil {
		return s.getByEmail(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByUsernameOrEmail(ctx context.Context, username, email string) (*entities.User, error) {
	if s.getByEither != nil {
		return s.getByEither(ctx, username, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) UpdateKYCStatus(_ context.Context, _ uuid.UUID, status entities.KYCStatus) error {
	s.kycUpdates = append(s.kycUpdates, status)
	return nil
}

func (s *userRepoStub) Credit(ctx context.Context, id uuid.UUID, amount float64) error {
	if s.creditFn != nil {
		return s.creditFn(ctx, id, amount)
	}
	return nil
}

func (s *userRepoStub) ApplyDepositCredit(context.Context, uuid.UUID, float64) error {
	s.depositCredits++
	return nil
}

func (s *userRepoStub) Debit(ctx context.Context, id uuid.UUID, amount float64) error {
	if s.debitFn != nil {
		return s.debitFn(ctx, id, amount)
	}
	return nil
}

func (s *userRepoStub) RefundDebit(ctx context.Context, id uuid.UUID, amount float64) error {
	if s.refundFn != nil {
		return s.refundFn(ctx, id, amount)
	}
	return nil
}

func (s *userRepoStub) SetTotalEarnings(_ context.Context, id uuid.UUID, earnings float64) error {
	if s.earnings == nil {
		s.earnings = make(map[uuid.UUID]float64)
	}
	s.earnings[id] = earnings
	return nil
}

func (s *userRepoStub) SetAdmin(context.Context, uuid.UUID, bool) error { return nil }

func (s *userRepoStub) List(ctx context.Context, search string) ([]*entities.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx, search)
	}
	return nil, nil
}

type kycRepoStub struct {
	createFn     func(ctx context.Context, submission *entities.KYCSubmission) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*entities.KYCSubmission, error)
	latestFn     func(ctx context.Context, userID uuid.UUID) (*entities.KYCSubmission, error)
	updateStatus func(ctx context.Context, id uuid.UUID, status entities.KYCStatus) error
	listFn       func(ctx context.Context) ([]*entities.KYCSubmission, error)
}

func (s *kycRepoStub) Create(ctx context.Context, submission *entities.KYCSubmission) error {
	if s.createFn != nil {
		return s.createFn(ctx, submission)
	}
	return nil
}

func (s *kycRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.KYCSubmission, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *kycRepoStub) LatestByUser(ctx context.Context, userID uuid.UUID) (*entities.KYCSubmission, error) {
	if s.latestFn != nil {
		return s.latestFn(ctx, userID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *kycRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.KYCStatus) error {
	if s.updateStatus != nil {
		return s.updateStatus(ctx, id, status)
	}
	return nil
}

func (s *kycRepoStub) List(ctx context.Context) ([]*entities.KYCSubmission, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *kycRepoStub) CountByStatus(context.Context, entities.KYCStatus) (int64, error) {
	return 0, nil
}

type depositRepoStub struct {
	createFn   func(ctx context.Context, deposit *entities.Deposit) error
	getByIDFn  func(ctx context.Context, id uuid.UUID) (*entities.Deposit, error)
	byUserFn   func(ctx context.Context, userID uuid.UUID) ([]*entities.Deposit, error)
	earliestFn func(ctx context.Context, userID uuid.UUID) (*entities.Deposit, error)
	listFn     func(ctx context.Context) ([]*entities.Deposit, error)

	statusUpdates []entities.DepositStatus
}

func (s *depositRepoStub) Create(ctx context.Context, deposit *entities.Deposit) error {
	if s.createFn != nil {
		return s.createFn(ctx, deposit)
	}
	return nil
}

func (s *depositRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Deposit, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *depositRepoStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Deposit, error) {
	if s.byUserFn != nil {
		return s.byUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *depositRepoStub) EarliestApproved(ctx context.Context, userID uuid.UUID) (*entities.Deposit, error) {
	if s.earliestFn != nil {
		return s.earliestFn(ctx, userID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *depositRepoStub) UpdateStatus(_ context.Context, _ uuid.UUID, status entities.DepositStatus) error {
	s.statusUpdates = append(s.statusUpdates, status)
	return nil
}

func (s *depositRepoStub) List(ctx context.Context) ([]*entities.Deposit, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *depositRepoStub) CountByStatus(context.Context, entities.DepositStatus) (int64, error) {
	return 0, nil
}

func (s *depositRepoStub) UserIDsWithApproved(context.Context) ([]uuid.UUID, error) {
	return nil, nil
}

// uowStub runs the unit without a transaction.
type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type walletStub struct {
	addressFn  func(ctx context.Context, asset, network string) (string, error)
	withdrawFn func(ctx context.Context, asset string, amount float64, address, network string) (string, error)
}

func (s *walletStub) GetDepositAddress(ctx context.Context, asset, network string) (string, error) {
	if s.addressFn != nil {
		return s.addressFn(ctx, asset, network)
	}
	return "", domainerrors.ErrNotFound
}

func (s *walletStub) Withdraw(ctx context.Context, asset string, amount float64, address, network string) (string, error) {
	if s.withdrawFn != nil {
		return s.withdrawFn(ctx, asset, amount, address, network)
	}
	return "", domainerrors.ErrNotFound
}

type docStoreStub struct {
	saveFn func(ctx context.Context, ownerKey, filename string, content io.Reader) (string, error)
}

func (s *docStoreStub) Save(ctx context.Context, ownerKey, filename string, content io.Reader) (string, error) {
	if s.saveFn != nil {
		return s.saveFn(ctx, ownerKey, filename, content)
	}
	return "uploads/" + ownerKey + "_" + filename, nil
}
