package withdrawalrepo

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

const withdrawalColumns = `id, user_id, amount, currency, method, target_address, status, status_reason, tx_id, reviewed_by, approved_at, created_at`

func scanWithdrawal(row pgx.Row, wd *domain.Withdrawal) error {
	return row.Scan(
		&wd.ID, &wd.UserID, &wd.Amount, &wd.Currency, &wd.Method, &wd.TargetAddress,
		&wd.Status, &wd.StatusReason, &wd.TxID, &wd.ReviewedBy, &wd.ApprovedAt, &wd.CreatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (user_id, amount, currency, method, target_address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at
	`
	err := r.db.QueryRow(ctx, query,
		withdrawal.UserID, withdrawal.Amount, withdrawal.Currency, withdrawal.Method, withdrawal.TargetAddress,
	).Scan(&withdrawal.ID, &withdrawal.Status, &withdrawal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Withdrawal, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawals
        WHERE id = $1
    `
	var withdrawal domain.Withdrawal
	err := scanWithdrawal(r.db.QueryRow(ctx, query, id), &withdrawal)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal", zap.Error(err))
		return nil, err
	}
	return &withdrawal, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawals
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectWithdrawals(rows)
}

func (r *Repository) ListPending(ctx context.Context) ([]domain.Withdrawal, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawals
        WHERE status = 'pending'
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get pending withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectWithdrawals(rows)
}

func collectWithdrawals(rows pgx.Rows) ([]domain.Withdrawal, error) {
	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		if err := scanWithdrawal(rows, &wd); err != nil {
			zap.L().Error("can't scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("withdrawal rows failed mid-stream", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

// MarkApproved flips a pending withdrawal to approved. The status predicate
// makes the transition atomic under concurrent reviews; pgx.ErrNoRows reports
// that no pending row matched.
func (r *Repository) MarkApproved(ctx context.Context, id int, reviewerID int, txID, note string) error {
	query := `
		UPDATE withdrawals
		SET status = 'approved', tx_id = $1, status_reason = $2, reviewed_by = $3, approved_at = now()
		WHERE id = $4 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, txID, note, reviewerID, id)
	if err != nil {
		zap.L().Error("can't approve withdrawal", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) MarkRejected(ctx context.Context, id int, reviewerID int, reason string) error {
	query := `
		UPDATE withdrawals
		SET status = 'rejected', status_reason = $1, reviewed_by = $2
		WHERE id = $3 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, reason, reviewerID, id)
	if err != nil {
		zap.L().Error("can't reject withdrawal", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) SumApproved(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM withdrawals WHERE status = 'approved'`).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum approved withdrawals", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *Repository) CountPending(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM withdrawals WHERE status = 'pending'`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count pending withdrawals", zap.Error(err))
		return 0, err
	}
	return count, nil
}
