package statsservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockDepositRepo, *MockWithdrawalRepo, *MockDistributionRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	depositRepo := NewMockDepositRepo(ctrl)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	distRepo := NewMockDistributionRepo(ctrl)

	service := New(userRepo, depositRepo, withdrawalRepo, distRepo)
	defer ctrl.Finish()
	return service, userRepo, depositRepo, withdrawalRepo, distRepo
}

func TestOverview(t *testing.T) {
	service, userRepo, depositRepo, withdrawalRepo, distRepo := NewMock(t)
	ctx := context.Background()

	t.Run("Aggregates all dashboard numbers", func(t *testing.T) {
		userRepo.EXPECT().Count(gomock.Any()).Return(150, nil)
		userRepo.EXPECT().SumInvestmentBalance(gomock.Any()).Return(decimal.RequireFromString("750000"), nil)
		depositRepo.EXPECT().SumApproved(gomock.Any()).Return(decimal.RequireFromString("800000"), nil)
		depositRepo.EXPECT().CountPending(gomock.Any()).Return(4, nil)
		withdrawalRepo.EXPECT().SumApproved(gomock.Any()).Return(decimal.RequireFromString("50000"), nil)
		withdrawalRepo.EXPECT().CountPending(gomock.Any()).Return(2, nil)
		distRepo.EXPECT().SumDistributedSince(gomock.Any(), gomock.Any()).Return(decimal.RequireFromString("5250"), nil)

		stats, err := service.Overview(ctx)

		require.NoError(t, err)
		assert.Equal(t, 150, stats.TotalUsers)
		assert.Equal(t, 4, stats.PendingDeposits)
		assert.Equal(t, 2, stats.PendingWithdrawals)
		assert.Equal(t, "800000", stats.TotalDepositsApproved.String())
		assert.Equal(t, "50000", stats.TotalWithdrawalsApproved.String())
		assert.Equal(t, "750000", stats.TotalInvestmentPool.String())
		assert.Equal(t, "5250", stats.TodayDistributed.String())
	})

	t.Run("Any failing query fails the overview", func(t *testing.T) {
		userRepo.EXPECT().Count(gomock.Any()).Return(0, errors.New("connection lost"))
		userRepo.EXPECT().SumInvestmentBalance(gomock.Any()).Return(decimal.Zero, nil).AnyTimes()
		depositRepo.EXPECT().SumApproved(gomock.Any()).Return(decimal.Zero, nil).AnyTimes()
		depositRepo.EXPECT().CountPending(gomock.Any()).Return(0, nil).AnyTimes()
		withdrawalRepo.EXPECT().SumApproved(gomock.Any()).Return(decimal.Zero, nil).AnyTimes()
		withdrawalRepo.EXPECT().CountPending(gomock.Any()).Return(0, nil).AnyTimes()
		distRepo.EXPECT().SumDistributedSince(gomock.Any(), gomock.Any()).Return(decimal.Zero, nil).AnyTimes()

		stats, err := service.Overview(ctx)

		assert.Error(t, err)
		assert.Nil(t, stats)
	})
}
