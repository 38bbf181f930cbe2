package withdrawalservice

import (
	"context"
	"errors"

	"github.com/blackvant/backend/internal/audit"
	"github.com/blackvant/backend/internal/domain"
	"github.com/blackvant/backend/internal/pg"
	"github.com/blackvant/backend/pkg/validate"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WithdrawalRepo interface {
	Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	FindByID(ctx context.Context, id int) (*domain.Withdrawal, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	ListPending(ctx context.Context) ([]domain.Withdrawal, error)
	MarkApproved(ctx context.Context, id int, reviewerID int, txID, note string) error
	MarkRejected(ctx context.Context, id int, reviewerID int, reason string) error
}

type UserRepo interface {
	DeductProfitBalance(ctx context.Context, userID int, amount decimal.Decimal) error
	AddToProfitBalance(ctx context.Context, userID int, amount decimal.Decimal) error
}

type AuditRecorder interface {
	Record(actorID int, action, entityType string, entityID int, meta map[string]any)
}

type Service struct {
	withdrawalRepo WithdrawalRepo
	userRepo       UserRepo
	txManager      pg.TXManager
	recorder       AuditRecorder
}

func New(withdrawalRepo WithdrawalRepo, userRepo UserRepo, txManager pg.TXManager, recorder AuditRecorder) *Service {
	return &Service{
		withdrawalRepo: withdrawalRepo,
		userRepo:       userRepo,
		txManager:      txManager,
		recorder:       recorder,
	}
}

const MethodCard = "card"

var (
	ErrMissingFields       = errors.New("missing required fields")
	ErrInsufficientBalance = errors.New("insufficient profit balance")
	ErrInvalidCardNumber   = errors.New("invalid card number")
	ErrWithdrawalNotFound  = errors.New("withdrawal not found")
	ErrAlreadyProcessed    = errors.New("withdrawal already processed")
)

// Create places an optimistic hold: the profit balance is deducted at request
// time in the same transaction that inserts the pending row. Rejection later
// refunds it; approval does not touch balances again.
func (s *Service) Create(ctx context.Context, userID int, amount decimal.Decimal, currency, method, targetAddress string) (*domain.Withdrawal, error) {
	if amount.Sign() <= 0 || currency == "" || method == "" || targetAddress == "" {
		return nil, ErrMissingFields
	}
	if method == MethodCard && !validate.IsLuna(targetAddress) {
		return nil, ErrInvalidCardNumber
	}

	withdrawal := &domain.Withdrawal{
		UserID:        userID,
		Amount:        amount,
		Currency:      currency,
		Method:        method,
		TargetAddress: targetAddress,
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.userRepo.DeductProfitBalance(ctx, userID, amount); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrInsufficientBalance
			}
			return err
		}
		_, err := s.withdrawalRepo.Create(ctx, withdrawal)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to create withdrawal", zap.Error(err))
		}
		return nil, err
	}
	return withdrawal, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) ListPending(ctx context.Context) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.ListPending(ctx)
	if err != nil {
		zap.L().Error("failed to fetch pending withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

// Approve records the external transfer reference. The funds were already
// deducted when the request was created.
func (s *Service) Approve(ctx context.Context, id, reviewerID int, txID, note string) error {
	withdrawal, err := s.withdrawalRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if withdrawal == nil {
		return ErrWithdrawalNotFound
	}
	if withdrawal.Status != domain.StatusPending {
		return ErrAlreadyProcessed
	}

	if err := s.withdrawalRepo.MarkApproved(ctx, id, reviewerID, txID, note); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAlreadyProcessed
		}
		zap.L().Error("withdrawal approval failed", zap.Error(err), zap.Int("withdrawalID", id))
		return err
	}

	s.recorder.Record(reviewerID, audit.WithdrawalApproved, "withdrawal", id, map[string]any{
		"txId": txID,
	})
	return nil
}

// Reject restores the exact held amount. The pending status guard makes a
// second rejection fail before any refund, so double-crediting is impossible.
func (s *Service) Reject(ctx context.Context, id, reviewerID int, reason string) error {
	withdrawal, err := s.withdrawalRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if withdrawal == nil {
		return ErrWithdrawalNotFound
	}
	if withdrawal.Status != domain.StatusPending {
		return ErrAlreadyProcessed
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.withdrawalRepo.MarkRejected(ctx, id, reviewerID, reason); err != nil {
			return err
		}
		return s.userRepo.AddToProfitBalance(ctx, withdrawal.UserID, withdrawal.Amount)
	})
	if err != nil {
		// A concurrent rejection won the status transition; this one refunds
		// nothing.
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAlreadyProcessed
		}
		zap.L().Error("withdrawal rejection failed", zap.Error(err), zap.Int("withdrawalID", id))
		return err
	}

	s.recorder.Record(reviewerID, audit.WithdrawalRejected, "withdrawal", id, map[string]any{
		"reason": reason,
	})
	return nil
}
