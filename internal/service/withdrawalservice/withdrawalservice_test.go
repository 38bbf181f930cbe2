package withdrawalservice

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/blackvant/backend/internal/audit"
	"github.com/blackvant/backend/internal/domain"
	pgdb "github.com/blackvant/backend/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockWithdrawalRepo, *MockUserRepo, *MockAuditRecorder, *pgdb.MockTXManager) {
	ctrl := gomock.NewController(t)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	recorder := NewMockAuditRecorder(ctrl)
	txManager := pgdb.NewMockTXManager(ctrl)

	service := New(withdrawalRepo, userRepo, txManager, recorder)
	defer ctrl.Finish()
	return service, withdrawalRepo, userRepo, recorder, txManager
}

func passThrough(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func TestCreate(t *testing.T) {
	service, withdrawalRepo, userRepo, _, txManager := NewMock(t)
	ctx := context.Background()

	amount := decimal.RequireFromString("120")

	t.Run("Holds funds and inserts the pending row together", func(t *testing.T) {
		txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(passThrough)
		userRepo.EXPECT().DeductProfitBalance(ctx, 5, amount).Return(nil)
		withdrawalRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
				assert.Equal(t, 5, w.UserID)
				assert.True(t, w.Amount.Equal(amount))
				assert.Equal(t, "crypto", w.Method)
				w.ID = 21
				w.Status = domain.StatusPending
				return w, nil
			})

		withdrawal, err := service.Create(ctx, 5, amount, "USD", "crypto", "0xabc")

		require.NoError(t, err)
		assert.Equal(t, 21, withdrawal.ID)
	})

	t.Run("Insufficient balance leaves no record", func(t *testing.T) {
		txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(passThrough)
		userRepo.EXPECT().DeductProfitBalance(ctx, 5, amount).Return(pgx.ErrNoRows)

		withdrawal, err := service.Create(ctx, 5, amount, "USD", "crypto", "0xabc")

		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.Nil(t, withdrawal)
	})

	t.Run("Missing fields rejected", func(t *testing.T) {
		withdrawal, err := service.Create(ctx, 5, amount, "USD", "crypto", "")

		assert.ErrorIs(t, err, ErrMissingFields)
		assert.Nil(t, withdrawal)
	})

	t.Run("Card withdrawal validates the card number", func(t *testing.T) {
		withdrawal, err := service.Create(ctx, 5, amount, "USD", MethodCard, "1234567890123456")

		assert.ErrorIs(t, err, ErrInvalidCardNumber)
		assert.Nil(t, withdrawal)
	})

	t.Run("Card withdrawal accepts a valid card number", func(t *testing.T) {
		txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(passThrough)
		userRepo.EXPECT().DeductProfitBalance(ctx, 5, amount).Return(nil)
		withdrawalRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
				w.ID = 22
				return w, nil
			})

		withdrawal, err := service.Create(ctx, 5, amount, "USD", MethodCard, "4532015112830366")

		require.NoError(t, err)
		assert.Equal(t, 22, withdrawal.ID)
	})

	t.Run("Insert failure rolls the hold back", func(t *testing.T) {
		txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(passThrough)
		userRepo.EXPECT().DeductProfitBalance(ctx, 5, amount).Return(nil)
		withdrawalRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("connection lost"))

		withdrawal, err := service.Create(ctx, 5, amount, "USD", "crypto", "0xabc")

		assert.Error(t, err)
		assert.Nil(t, withdrawal)
	})
}

func TestApprove(t *testing.T) {
	service, withdrawalRepo, _, recorder, _ := NewMock(t)
	ctx := context.Background()

	pending := func() *domain.Withdrawal {
		return &domain.Withdrawal{ID: 21, UserID: 5, Amount: decimal.RequireFromString("120"), Status: domain.StatusPending}
	}

	t.Run("Records the transfer reference without touching balances", func(t *testing.T) {
		withdrawalRepo.EXPECT().FindByID(ctx, 21).Return(pending(), nil)
		withdrawalRepo.EXPECT().MarkApproved(ctx, 21, 99, "tx-777", "sent via SEPA").Return(nil)
		recorder.EXPECT().Record(99, audit.WithdrawalApproved, "withdrawal", 21, gomock.Any())

		err := service.Approve(ctx, 21, 99, "tx-777", "sent via SEPA")

		assert.NoError(t, err)
	})

	t.Run("Unknown withdrawal", func(t *testing.T) {
		withdrawalRepo.EXPECT().FindByID(ctx, 404).Return(nil, nil)

		err := service.Approve(ctx, 404, 99, "tx-777", "")

		assert.ErrorIs(t, err, ErrWithdrawalNotFound)
	})

	t.Run("Processed withdrawal cannot be approved again", func(t *testing.T) {
		processed := pending()
		processed.Status = domain.StatusApproved
		withdrawalRepo.EXPECT().FindByID(ctx, 21).Return(processed, nil)

		err := service.Approve(ctx, 21, 99, "tx-778", "")

		assert.ErrorIs(t, err, ErrAlreadyProcessed)
	})

	t.Run("Concurrent review loses the status race", func(t *testing.T) {
		withdrawalRepo.EXPECT().FindByID(ctx, 21).Return(pending(), nil)
		withdrawalRepo.EXPECT().MarkApproved(ctx, 21, 99, "tx-779", "").Return(pgx.ErrNoRows)

		err := service.Approve(ctx, 21, 99, "tx-779", "")

		assert.ErrorIs(t, err, ErrAlreadyProcessed)
	})
}

func TestReject(t *testing.T) {
	service, withdrawalRepo, userRepo, recorder, txManager := NewMock(t)
	ctx := context.Background()

	amount := decimal.RequireFromString("120")
	pending := func() *domain.Withdrawal {
		return &domain.Withdrawal{ID: 21, UserID: 5, Amount: amount, Status: domain.StatusPending}
	}

	t.Run("Refunds the exact held amount", func(t *testing.T) {
		withdrawalRepo.EXPECT().FindByID(ctx, 21).Return(pending(), nil)
		txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(passThrough)
		withdrawalRepo.EXPECT().MarkRejected(ctx, 21, 99, "wrong address").Return(nil)
		userRepo.EXPECT().AddToProfitBalance(ctx, 5, amount).Return(nil)
		recorder.EXPECT().Record(99, audit.WithdrawalRejected, "withdrawal", 21, gomock.Any())

		err := service.Reject(ctx, 21, 99, "wrong address")

		assert.NoError(t, err)
	})

	t.Run("Second rejection fails before any refund", func(t *testing.T) {
		rejected := pending()
		rejected.Status = domain.StatusRejected
		withdrawalRepo.EXPECT().FindByID(ctx, 21).Return(rejected, nil)

		err := service.Reject(ctx, 21, 99, "again")

		assert.ErrorIs(t, err, ErrAlreadyProcessed)
	})

	t.Run("Concurrent rejection refunds nothing", func(t *testing.T) {
		withdrawalRepo.EXPECT().FindByID(ctx, 21).Return(pending(), nil)
		txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(passThrough)
		withdrawalRepo.EXPECT().MarkRejected(ctx, 21, 99, "again").Return(pgx.ErrNoRows)

		err := service.Reject(ctx, 21, 99, "again")

		assert.ErrorIs(t, err, ErrAlreadyProcessed)
	})

	t.Run("Refund failure rolls the status change back", func(t *testing.T) {
		withdrawalRepo.EXPECT().FindByID(ctx, 21).Return(pending(), nil)
		txManager.EXPECT().Begin(ctx, gomock.Any()).DoAndReturn(passThrough)
		withdrawalRepo.EXPECT().MarkRejected(ctx, 21, 99, "wrong address").Return(nil)
		userRepo.EXPECT().AddToProfitBalance(ctx, 5, amount).Return(errors.New("connection lost"))

		err := service.Reject(ctx, 21, 99, "wrong address")

		assert.Error(t, err)
	})
}

func TestListByUser(t *testing.T) {
	service, withdrawalRepo, _, _, _ := NewMock(t)
	ctx := context.Background()

	withdrawals := []domain.Withdrawal{{ID: 2}, {ID: 1}}
	withdrawalRepo.EXPECT().ListByUserID(ctx, 5).Return(withdrawals, nil)

	got, err := service.ListByUser(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, withdrawals, got)
}

func TestListPending(t *testing.T) {
	service, withdrawalRepo, _, _, _ := NewMock(t)
	ctx := context.Background()

	withdrawals := []domain.Withdrawal{{ID: 3}}
	withdrawalRepo.EXPECT().ListPending(ctx).Return(withdrawals, nil)

	got, err := service.ListPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, withdrawals, got)
}
