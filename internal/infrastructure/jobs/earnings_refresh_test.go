package jobs

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Gitau-joseph/projectz/internal/config"
	"github.com/Gitau-joseph/projectz/internal/domain/entities"
	domainerrors "github.com/Gitau-joseph/projectz/internal/domain/errors"
	"github.com/Gitau-joseph/projectz/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("production")
	os.Exit(m.Run())
}

type stubUserEarnings struct {
	mu       sync.Mutex
	earnings map[uuid.UUID]float64
}

func (s *stubUserEarnings) Create(context.Context, *entities.User) error { return nil }
func (s *stubUserEarnings) GetByID(context.Context, uuid.UUID) (*entities.User, error) {
	return nil, domainerrors.ErrNotFound
}
func (s *stubUserEarnings) GetByEmail(context.Context, string) (*entities.User, error) {
	return nil, domainerrors.ErrNotFound
}
func (s *stubUserEarnings) GetByUsernameOrEmail(context.Context, string, string) (*entities.User, error) {
	return nil, domainerrors.ErrNotFound
}
func (s *stubUserEarnings) UpdateKYCStatus(context.Context, uuid.UUID, entities.KYCStatus) error {
	return nil
}
func (s *stubUserEarnings) Credit(context.Context, uuid.UUID, float64) error             { return nil }
func (s *stubUserEarnings) ApplyDepositCredit(context.Context, uuid.UUID, float64) error { return nil }
func (s *stubUserEarnings) Debit(context.Context, uuid.UUID, float64) error              { return nil }
func (s *stubUserEarnings) RefundDebit(context.Context, uuid.UUID, float64) error        { return nil }
func (s *stubUserEarnings) SetAdmin(context.Context, uuid.UUID, bool) error              { return nil }
func (s *stubUserEarnings) List(context.Context, string) ([]*entities.User, error)       { return nil, nil }

func (s *stubUserEarnings) SetTotalEarnings(_ context.Context, id uuid.UUID, earnings float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.earnings[id] = earnings
	return nil
}

type stubDeposits struct {
	deposits []*entities.Deposit
}

func (s *stubDeposits) Create(context.Context, *entities.Deposit) error { return nil }
func (s *stubDeposits) GetByID(context.Context, uuid.UUID) (*entities.Deposit, error) {
	return nil, domainerrors.ErrNotFound
}
func (s *stubDeposits) EarliestApproved(context.Context, uuid.UUID) (*entities.Deposit, error) {
	return nil, domainerrors.ErrNotFound
}
func (s *stubDeposits) UpdateStatus(context.Context, uuid.UUID, entities.DepositStatus) error {
	return nil
}
func (s *stubDeposits) List(context.Context) ([]*entities.Deposit, error) { return s.deposits, nil }
func (s *stubDeposits) CountByStatus(context.Context, entities.DepositStatus) (int64, error) {
	return 0, nil
}

func (s *stubDeposits) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.Deposit, error) {
	var out []*entities.Deposit
	for _, d := range s.deposits {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *stubDeposits) UserIDsWithApproved(context.Context) ([]uuid.UUID, error) {
	seen := map[uuid.UUID]bool{}
	var out []uuid.UUID
	for _, d := range s.deposits {
		if d.Status == entities.DepositStatusApproved && !seen[d.UserID] {
			seen[d.UserID] = true
			out = append(out, d.UserID)
		}
	}
	return out, nil
}

func TestEarningsRefreshJob_Refresh(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New()
	users := &stubUserEarnings{earnings: map[uuid.UUID]float64{}}
	deposits := &stubDeposits{deposits: []*entities.Deposit{
		{ID: uuid.New(), UserID: userID, Amount: 1000, Status: entities.DepositStatusApproved, CreatedAt: time.Now().Add(-28 * 24 * time.Hour)},
		{ID: uuid.New(), UserID: userID, Amount: 500, Status: entities.DepositStatusPending, CreatedAt: time.Now().Add(-28 * 24 * time.Hour)},
		{ID: uuid.New(), UserID: otherID, Amount: 300, Status: entities.DepositStatusPending, CreatedAt: time.Now()},
	}}

	job := NewEarningsRefreshJob(users, deposits, config.InvestmentConfig{WeeklyInterestRate: 0.02, MinInvestDays: 60})
	job.refresh(context.Background())

	// 1000 at 2% over 4 weeks; the pending deposits contribute nothing.
	require.InDelta(t, 82.43, users.earnings[userID], 0.01)
	_, ok := users.earnings[otherID]
	require.False(t, ok, "users without approved deposits are skipped")
}

func TestEarningsRefreshJob_StartStop(t *testing.T) {
	users := &stubUserEarnings{earnings: map[uuid.UUID]float64{}}
	deposits := &stubDeposits{}

	job := NewEarningsRefreshJob(users, deposits, config.InvestmentConfig{WeeklyInterestRate: 0.02})
	job.interval = 10 * time.Millisecond

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	job.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop")
	}
}

func TestEarningsRefreshJob_StopsOnContextCancel(t *testing.T) {
	job := NewEarningsRefreshJob(&stubUserEarnings{earnings: map[uuid.UUID]float64{}}, &stubDeposits{}, config.InvestmentConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop on context cancel")
	}
}
