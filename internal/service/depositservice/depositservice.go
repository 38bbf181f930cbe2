package depositservice

import (
	"context"
	"errors"

	"github.com/blackvant/backend/internal/audit"
	"github.com/blackvant/backend/internal/domain"
	"github.com/blackvant/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type DepositRepo interface {
	Create(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error)
	FindByID(ctx context.Context, id int) (*domain.Deposit, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.Deposit, error)
	ListPending(ctx context.Context) ([]domain.Deposit, error)
	MarkApproved(ctx context.Context, id int, reviewerID int) error
	MarkRejected(ctx context.Context, id int, reviewerID int, reason string) error
}

type UserRepo interface {
	AddToInvestmentBalance(ctx context.Context, userID int, amount decimal.Decimal) error
}

type AuditRecorder interface {
	Record(actorID int, action, entityType string, entityID int, meta map[string]any)
}

type Service struct {
	depositRepo DepositRepo
	userRepo    UserRepo
	txManager   pg.TXManager
	recorder    AuditRecorder
}

func New(depositRepo DepositRepo, userRepo UserRepo, txManager pg.TXManager, recorder AuditRecorder) *Service {
	return &Service{
		depositRepo: depositRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		recorder:    recorder,
	}
}

var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrDepositNotFound  = errors.New("deposit not found")
	ErrAlreadyProcessed = errors.New("deposit already processed")
)

func (s *Service) Create(ctx context.Context, userID int, amount decimal.Decimal, currency, method, proofURL, txID string) (*domain.Deposit, error) {
	if amount.Sign() <= 0 || currency == "" || method == "" {
		return nil, ErrMissingFields
	}

	deposit := &domain.Deposit{
		UserID:   userID,
		Amount:   amount,
		Currency: currency,
		Method:   method,
		ProofURL: proofURL,
		TxID:     txID,
	}
	deposit, err := s.depositRepo.Create(ctx, deposit)
	if err != nil {
		zap.L().Error("failed to create deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int) ([]domain.Deposit, error) {
	deposits, err := s.depositRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}

func (s *Service) ListPending(ctx context.Context) ([]domain.Deposit, error) {
	deposits, err := s.depositRepo.ListPending(ctx)
	if err != nil {
		zap.L().Error("failed to fetch pending deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}

// Approve moves a pending deposit to its terminal approved state and credits
// the owner's investment balance, both inside one transaction.
func (s *Service) Approve(ctx context.Context, id, reviewerID int) error {
	deposit, err := s.depositRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if deposit == nil {
		return ErrDepositNotFound
	}
	if deposit.Status != domain.StatusPending {
		return ErrAlreadyProcessed
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.depositRepo.MarkApproved(ctx, id, reviewerID); err != nil {
			return err
		}
		return s.userRepo.AddToInvestmentBalance(ctx, deposit.UserID, deposit.Amount)
	})
	if err != nil {
		// A concurrent review won the status transition; the balance credit
		// rolled back with it.
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAlreadyProcessed
		}
		zap.L().Error("deposit approval failed", zap.Error(err), zap.Int("depositID", id))
		return err
	}

	s.recorder.Record(reviewerID, audit.DepositApproved, "deposit", id, map[string]any{
		"amount": deposit.Amount,
	})
	return nil
}

func (s *Service) Reject(ctx context.Context, id, reviewerID int, reason string) error {
	deposit, err := s.depositRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if deposit == nil {
		return ErrDepositNotFound
	}
	if deposit.Status != domain.StatusPending {
		return ErrAlreadyProcessed
	}

	if err := s.depositRepo.MarkRejected(ctx, id, reviewerID, reason); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAlreadyProcessed
		}
		zap.L().Error("deposit rejection failed", zap.Error(err), zap.Int("depositID", id))
		return err
	}

	s.recorder.Record(reviewerID, audit.DepositRejected, "deposit", id, map[string]any{
		"reason": reason,
	})
	return nil
}
