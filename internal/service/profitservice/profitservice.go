package profitservice

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/blackvant/backend/internal/domain"
	"github.com/blackvant/backend/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type UserRepo interface {
	ListEligible(ctx context.Context) ([]domain.EligibleUser, error)
	AddToProfitBalance(ctx context.Context, userID int, amount decimal.Decimal) error
}

type DistributionRepo interface {
	AcquireDistributionLock(ctx context.Context) error
	CreateDistribution(ctx context.Context, dist *domain.ProfitDistribution) (*domain.ProfitDistribution, error)
	CreatePayout(ctx context.Context, payout *domain.ProfitPayout) error
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, limit, offset int) ([]domain.ProfitDistribution, error)
	ListAll(ctx context.Context) ([]domain.ProfitDistribution, error)
}

type AuditRepo interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
}

type Service struct {
	userRepo  UserRepo
	distRepo  DistributionRepo
	auditRepo AuditRepo
	txManager pg.TXManager
}

func New(userRepo UserRepo, distRepo DistributionRepo, auditRepo AuditRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:  userRepo,
		distRepo:  distRepo,
		auditRepo: auditRepo,
		txManager: txManager,
	}
}

var (
	ErrInvalidPercent = errors.New("distribution percent must be greater than zero")
	ErrMissingFields  = errors.New("missing required fields")
)

// Payout is one user's computed share of a distribution.
type Payout struct {
	UserID             int
	Email              string
	InvestmentSnapshot decimal.Decimal
	ShareAmount        decimal.Decimal
}

// Summary holds the per-user shares and the aggregates accumulated alongside
// them. TotalDistributed is the running sum of the emitted shares, so it
// equals their sum exactly.
type Summary struct {
	Payouts          []Payout
	InvestmentPool   decimal.Decimal
	TotalDistributed decimal.Decimal
	RecipientsCount  int
}

// Result describes a committed distribution.
type Result struct {
	DistributionID   int
	RecipientsCount  int
	TotalDistributed decimal.Decimal
}

// MoneyScale is the fractional-digit scale of the NUMERIC money columns.
// Shares are quantized to it before accumulation, so the value credited to a
// profit balance is the same value the payout row and the running total carry.
const MoneyScale = 8

// Calculate computes each eligible user's share of a distribution declared at
// the given percent. Pure: no I/O, callable repeatedly.
func Calculate(percent decimal.Decimal, eligible []domain.EligibleUser) (*Summary, error) {
	if percent.Sign() <= 0 {
		return nil, ErrInvalidPercent
	}

	fraction := percent.Div(decimal.NewFromInt(100))

	summary := &Summary{
		Payouts:          make([]Payout, 0, len(eligible)),
		InvestmentPool:   decimal.Zero,
		TotalDistributed: decimal.Zero,
		RecipientsCount:  len(eligible),
	}
	for _, u := range eligible {
		share := u.InvestmentBalance.Mul(fraction).Round(MoneyScale)
		summary.InvestmentPool = summary.InvestmentPool.Add(u.InvestmentBalance)
		summary.TotalDistributed = summary.TotalDistributed.Add(share)
		summary.Payouts = append(summary.Payouts, Payout{
			UserID:             u.UserID,
			Email:              u.Email,
			InvestmentSnapshot: u.InvestmentBalance,
			ShareAmount:        share,
		})
	}
	return summary, nil
}

// Preview reads the current eligible users and computes their shares without
// persisting anything.
func (s *Service) Preview(ctx context.Context, percent decimal.Decimal) (*Summary, error) {
	if percent.Sign() <= 0 {
		return nil, ErrInvalidPercent
	}
	eligible, err := s.userRepo.ListEligible(ctx)
	if err != nil {
		zap.L().Error("failed to load eligible users", zap.Error(err))
		return nil, err
	}
	return Calculate(percent, eligible)
}

type DistributeInput struct {
	DeclaredProfit decimal.Decimal
	Percent        decimal.Decimal
	Date           time.Time
	AdminID        int
}

// Distribute commits a profit distribution in one transaction: it re-reads
// the eligible users under an advisory lock (the preview snapshot is never
// trusted), recomputes the shares, persists the distribution and payout rows,
// credits each recipient's profit balance and appends the audit entry. Any
// failure rolls the whole transaction back.
func (s *Service) Distribute(ctx context.Context, in DistributeInput) (*Result, error) {
	if in.DeclaredProfit.IsZero() || in.Date.IsZero() || in.AdminID == 0 {
		return nil, ErrMissingFields
	}
	if in.Percent.Sign() <= 0 {
		return nil, ErrInvalidPercent
	}

	var result Result
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.distRepo.AcquireDistributionLock(ctx); err != nil {
			return err
		}

		eligible, err := s.userRepo.ListEligible(ctx)
		if err != nil {
			return err
		}
		summary, err := Calculate(in.Percent, eligible)
		if err != nil {
			return err
		}

		dist := &domain.ProfitDistribution{
			DeclaredProfit:      in.DeclaredProfit,
			DistributionPercent: in.Percent,
			DeclaredDate:        in.Date,
			InvestmentPool:      summary.InvestmentPool,
			TotalDistributed:    summary.TotalDistributed,
			RecipientsCount:     summary.RecipientsCount,
			CreatedBy:           in.AdminID,
			Status:              "distributed",
		}
		if _, err := s.distRepo.CreateDistribution(ctx, dist); err != nil {
			return err
		}

		for _, p := range summary.Payouts {
			payout := &domain.ProfitPayout{
				DistributionID:     dist.ID,
				UserID:             p.UserID,
				InvestmentSnapshot: p.InvestmentSnapshot,
				ShareAmount:        p.ShareAmount,
			}
			if err := s.distRepo.CreatePayout(ctx, payout); err != nil {
				return err
			}
			if err := s.userRepo.AddToProfitBalance(ctx, p.UserID, p.ShareAmount); err != nil {
				return err
			}
		}

		meta, err := json.Marshal(map[string]any{
			"recipients":       summary.RecipientsCount,
			"totalDistributed": summary.TotalDistributed,
		})
		if err != nil {
			return err
		}
		entry := &domain.AuditEntry{
			ActorID:    in.AdminID,
			Action:     "PROFIT_DISTRIBUTED",
			EntityType: "profitDistribution",
			EntityID:   dist.ID,
			Meta:       meta,
		}
		if err := s.auditRepo.Create(ctx, entry); err != nil {
			return err
		}

		result = Result{
			DistributionID:   dist.ID,
			RecipientsCount:  summary.RecipientsCount,
			TotalDistributed: summary.TotalDistributed,
		}
		return nil
	})
	if err != nil {
		zap.L().Error("distribution commit failed", zap.Error(err))
		return nil, err
	}

	zap.L().Info("profit distributed",
		zap.Int("distributionID", result.DistributionID),
		zap.Int("recipients", result.RecipientsCount),
		zap.String("totalDistributed", result.TotalDistributed.String()),
	)
	return &result, nil
}

// History returns one page of distributions, newest first, plus the total count.
func (s *Service) History(ctx context.Context, page, pageSize int) ([]domain.ProfitDistribution, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	total, err := s.distRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	records, err := s.distRepo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (s *Service) Export(ctx context.Context) ([]domain.ProfitDistribution, error) {
	records, err := s.distRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to export distributions", zap.Error(err))
		return nil, err
	}
	return records, nil
}
