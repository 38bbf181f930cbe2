package depositrepo

import (
	"context"

	"github.com/blackvant/backend/internal/domain"
	"github.com/blackvant/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const depositColumns = `id, user_id, amount, currency, method, proof_url, tx_id, status, status_reason, reviewed_by, approved_at, created_at`

func scanDeposit(row pgx.Row, d *domain.Deposit) error {
	return row.Scan(
		&d.ID, &d.UserID, &d.Amount, &d.Currency, &d.Method, &d.ProofURL, &d.TxID,
		&d.Status, &d.StatusReason, &d.ReviewedBy, &d.ApprovedAt, &d.CreatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error) {
	query := `
		INSERT INTO deposits (user_id, amount, currency, method, proof_url, tx_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at
	`
	err := r.db.QueryRow(ctx, query,
		deposit.UserID, deposit.Amount, deposit.Currency, deposit.Method, deposit.ProofURL, deposit.TxID,
	).Scan(&deposit.ID, &deposit.Status, &deposit.CreatedAt)
	if err != nil {
		zap.L().Error("can't save deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE id = $1
    `
	var deposit domain.Deposit
	err := scanDeposit(r.db.QueryRow(ctx, query, id), &deposit)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find deposit", zap.Error(err))
		return nil, err
	}
	return &deposit, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectDeposits(rows)
}

func (r *Repository) ListPending(ctx context.Context) ([]domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE status = 'pending'
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get pending deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectDeposits(rows)
}

func collectDeposits(rows pgx.Rows) ([]domain.Deposit, error) {
	var deposits []domain.Deposit
	for rows.Next() {
		var d domain.Deposit
		if err := scanDeposit(rows, &d); err != nil {
			zap.L().Error("can't scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, d)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("deposit rows failed mid-stream", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}

// MarkApproved flips a pending deposit to approved. The status predicate makes
// the transition atomic under concurrent reviews; pgx.ErrNoRows reports that
// no pending row matched.
func (r *Repository) MarkApproved(ctx context.Context, id int, reviewerID int) error {
	query := `
		UPDATE deposits
		SET status = 'approved', reviewed_by = $1, approved_at = now()
		WHERE id = $2 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, reviewerID, id)
	if err != nil {
		zap.L().Error("can't approve deposit", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) MarkRejected(ctx context.Context, id int, reviewerID int, reason string) error {
	query := `
		UPDATE deposits
		SET status = 'rejected', status_reason = $1, reviewed_by = $2
		WHERE id = $3 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, reason, reviewerID, id)
	if err != nil {
		zap.L().Error("can't reject deposit", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) SumApproved(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM deposits WHERE status = 'approved'`).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum approved deposits", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *Repository) CountPending(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM deposits WHERE status = 'pending'`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count pending deposits", zap.Error(err))
		return 0, err
	}
	return count, nil
}
