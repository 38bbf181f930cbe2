package distributionrepo

import (
	"context"
	"time"

	"github.com/blackvant/backend/internal/domain"
	"github.com/blackvant/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// distributionLockKey serializes profit distribution commits across the
// cluster. The lock is transaction scoped and released on commit or rollback.
const distributionLockKey = 874219

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) AcquireDistributionLock(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, distributionLockKey); err != nil {
		zap.L().Error("can't acquire distribution lock", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateDistribution(ctx context.Context, dist *domain.ProfitDistribution) (*domain.ProfitDistribution, error) {
	query := `
		INSERT INTO profit_distributions
			(declared_profit, distribution_percent, declared_date, investment_pool, total_distributed, recipients_count, created_by, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		dist.DeclaredProfit, dist.DistributionPercent, dist.DeclaredDate,
		dist.InvestmentPool, dist.TotalDistributed, dist.RecipientsCount,
		dist.CreatedBy, dist.Status,
	).Scan(&dist.ID, &dist.CreatedAt)
	if err != nil {
		zap.L().Error("can't save distribution", zap.Error(err))
		return nil, err
	}
	return dist, nil
}

func (r *Repository) CreatePayout(ctx context.Context, payout *domain.ProfitPayout) error {
	query := `
		INSERT INTO profit_payouts (distribution_id, user_id, investment_snapshot, share_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		payout.DistributionID, payout.UserID, payout.InvestmentSnapshot, payout.ShareAmount,
	).Scan(&payout.ID)
	if err != nil {
		zap.L().Error("can't save payout", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM profit_distributions`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count distributions", zap.Error(err))
		return 0, err
	}
	return count, nil
}

const distributionColumns = `
        d.id, d.declared_profit, d.distribution_percent, d.declared_date,
        d.investment_pool, d.total_distributed, d.recipients_count,
        d.created_by, u.email, d.status, d.created_at`

func collectDistributions(rows pgx.Rows) ([]domain.ProfitDistribution, error) {
	var dists []domain.ProfitDistribution
	for rows.Next() {
		var d domain.ProfitDistribution
		err := rows.Scan(
			&d.ID, &d.DeclaredProfit, &d.DistributionPercent, &d.DeclaredDate,
			&d.InvestmentPool, &d.TotalDistributed, &d.RecipientsCount,
			&d.CreatedBy, &d.CreatedByEmail, &d.Status, &d.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan distribution row", zap.Error(err))
			return nil, err
		}
		dists = append(dists, d)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("distribution rows failed mid-stream", zap.Error(err))
		return nil, err
	}
	return dists, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.ProfitDistribution, error) {
	query := `
        SELECT ` + distributionColumns + `
        FROM profit_distributions d
        JOIN users u ON u.id = d.created_by
        ORDER BY d.declared_date DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't list distributions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectDistributions(rows)
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.ProfitDistribution, error) {
	query := `
        SELECT ` + distributionColumns + `
        FROM profit_distributions d
        JOIN users u ON u.id = d.created_by
        ORDER BY d.declared_date DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list all distributions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectDistributions(rows)
}

func (r *Repository) SumDistributedSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(total_distributed), 0) FROM profit_distributions WHERE declared_date >= $1`
	err := r.db.QueryRow(ctx, query, since).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum distributed profit", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}
