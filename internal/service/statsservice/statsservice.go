package statsservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type UserRepo interface {
	Count(ctx context.Context) (int, error)
	SumInvestmentBalance(ctx context.Context) (decimal.Decimal, error)
}

type DepositRepo interface {
	SumApproved(ctx context.Context) (decimal.Decimal, error)
	CountPending(ctx context.Context) (int, error)
}

type WithdrawalRepo interface {
	SumApproved(ctx context.Context) (decimal.Decimal, error)
	CountPending(ctx context.Context) (int, error)
}

type DistributionRepo interface {
	SumDistributedSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
}

type Service struct {
	userRepo       UserRepo
	depositRepo    DepositRepo
	withdrawalRepo WithdrawalRepo
	distRepo       DistributionRepo
}

func New(userRepo UserRepo, depositRepo DepositRepo, withdrawalRepo WithdrawalRepo, distRepo DistributionRepo) *Service {
	return &Service{
		userRepo:       userRepo,
		depositRepo:    depositRepo,
		withdrawalRepo: withdrawalRepo,
		distRepo:       distRepo,
	}
}

type Stats struct {
	TotalUsers               int
	TotalDepositsApproved    decimal.Decimal
	TotalWithdrawalsApproved decimal.Decimal
	PendingDeposits          int
	PendingWithdrawals       int
	TotalInvestmentPool      decimal.Decimal
	TodayDistributed         decimal.Decimal
}

// Overview aggregates the admin dashboard numbers; the independent queries
// run concurrently.
func (s *Service) Overview(ctx context.Context) (*Stats, error) {
	var stats Stats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats.TotalUsers, err = s.userRepo.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalDepositsApproved, err = s.depositRepo.SumApproved(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalWithdrawalsApproved, err = s.withdrawalRepo.SumApproved(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.PendingDeposits, err = s.depositRepo.CountPending(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.PendingWithdrawals, err = s.withdrawalRepo.CountPending(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalInvestmentPool, err = s.userRepo.SumInvestmentBalance(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		startOfDay := time.Now().UTC().Truncate(24 * time.Hour)
		stats.TodayDistributed, err = s.distRepo.SumDistributedSince(ctx, startOfDay)
		return err
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to aggregate stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
