package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Gitau-joseph/projectz/internal/config"
	"github.com/Gitau-joseph/projectz/internal/domain/entities"
	"github.com/Gitau-joseph/projectz/internal/domain/interest"
	"github.com/Gitau-joseph/projectz/internal/domain/repositories"
	"github.com/Gitau-joseph/projectz/pkg/logger"
)

// EarningsRefreshJob periodically recomputes the derived total_earnings
// cache for every user holding approved deposits, so the value stays
// fresh between dashboard reads. It writes only total_earnings; balances
// belong to the approval and adjustment paths.
type EarningsRefreshJob struct {
	userRepo    repositories.UserRepository
	depositRepo repositories.DepositRepository
	investCfg   config.InvestmentConfig
	interval    time.Duration
	stop        chan struct{}
}

func NewEarningsRefreshJob(
	userRepo repositories.UserRepository,
	depositRepo repositories.DepositRepository,
	investCfg config.InvestmentConfig,
) *EarningsRefreshJob {
	return &EarningsRefreshJob{
		userRepo:    userRepo,
		depositRepo: depositRepo,
		investCfg:   investCfg,
		interval:    15 * time.Minute,
		stop:        make(chan struct{}),
	}
}

func (j *EarningsRefreshJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting earnings refresh job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "earnings refresh job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "earnings refresh job stopped")
			return
		case <-ticker.C:
			j.refresh(ctx)
		}
	}
}

func (j *EarningsRefreshJob) Stop() {
	close(j.stop)
}

func (j *EarningsRefreshJob) refresh(ctx context.Context) {
	userIDs, err := j.depositRepo.UserIDsWithApproved(ctx)
	if err != nil {
		logger.Error(ctx, "earnings refresh: list users", zap.Error(err))
		return
	}

	now := time.Now()
	refreshed := 0
	for _, userID := range userIDs {
		deposits, err := j.depositRepo.ListByUser(ctx, userID)
		if err != nil {
			logger.Error(ctx, "earnings refresh: list deposits", zap.Error(err), zap.String("user_id", userID.String()))
			continue
		}

		total := 0.0
		for _, dep := range deposits {
			if dep.Status == entities.DepositStatusApproved {
				total += interest.AccruedSince(dep.Amount, j.investCfg.WeeklyInterestRate, dep.CreatedAt, now)
			}
		}

		if err := j.userRepo.SetTotalEarnings(ctx, userID, total); err != nil {
			logger.Error(ctx, "earnings refresh: persist", zap.Error(err), zap.String("user_id", userID.String()))
			continue
		}
		refreshed++
	}

	if refreshed > 0 {
		logger.Debug(ctx, "earnings refreshed", zap.Int("users", refreshed))
	}
}
