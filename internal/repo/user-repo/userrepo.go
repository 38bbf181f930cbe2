package userrepo

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

func (repo *Repository) FindBySubjectID(ctx context.Context, subjectID string) (*domain.User, error) {
	query := `
        SELECT id, subject_id, email, full_name, role, investment_balance, profit_balance, created_at
        FROM users
        WHERE subject_id = $1
    `
	var user domain.User
	err := repo.db.QueryRow(ctx, query, subjectID).Scan(
		&user.ID, &user.SubjectID, &user.Email, &user.FullName, &user.Role,
		&user.InvestmentBalance, &user.ProfitBalance, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by subject", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, subject_id, email, full_name, role, investment_balance, profit_balance, created_at
        FROM users
        WHERE id = $1
    `
	var user domain.User
	err := repo.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.SubjectID, &user.Email, &user.FullName, &user.Role,
		&user.InvestmentBalance, &user.ProfitBalance, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (subject_id, email, full_name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, investment_balance, profit_balance, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.SubjectID, user.Email, user.FullName, user.Role).
		Scan(&user.ID, &user.InvestmentBalance, &user.ProfitBalance, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// ListEligible returns every user with a strictly positive investment balance.
// A single statement, so all snapshots are consistent with each other.
func (repo *Repository) ListEligible(ctx context.Context) ([]domain.EligibleUser, error) {
	query := `
        SELECT id, email, investment_balance
        FROM users
        WHERE investment_balance > 0
    `
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list eligible users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var eligible []domain.EligibleUser
	for rows.Next() {
		var u domain.EligibleUser
		if err := rows.Scan(&u.UserID, &u.Email, &u.InvestmentBalance); err != nil {
			zap.L().Error("can't scan eligible user row", zap.Error(err))
			return nil, err
		}
		eligible = append(eligible, u)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("eligible user rows failed mid-stream", zap.Error(err))
		return nil, err
	}
	return eligible, nil
}

func (repo *Repository) AddToInvestmentBalance(ctx context.Context, userID int, amount decimal.Decimal) error {
	query := `
		UPDATE users
		SET investment_balance = investment_balance + $1
		WHERE id = $2
	`
	if _, err := repo.db.Exec(ctx, query, amount, userID); err != nil {
		zap.L().Error("can't increment investment balance", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) AddToProfitBalance(ctx context.Context, userID int, amount decimal.Decimal) error {
	query := `
		UPDATE users
		SET profit_balance = profit_balance + $1
		WHERE id = $2
	`
	if _, err := repo.db.Exec(ctx, query, amount, userID); err != nil {
		zap.L().Error("can't increment profit balance", zap.Error(err))
		return err
	}
	return nil
}

// DeductProfitBalance decrements atomically and reports pgx.ErrNoRows when the
// balance does not cover the amount.
func (repo *Repository) DeductProfitBalance(ctx context.Context, userID int, amount decimal.Decimal) error {
	query := `
		UPDATE users
		SET profit_balance = profit_balance - $1
		WHERE id = $2 AND profit_balance >= $1
		RETURNING profit_balance
	`
	var remaining decimal.Decimal
	err := repo.db.QueryRow(ctx, query, amount, userID).Scan(&remaining)
	if err != nil {
		if err != pgx.ErrNoRows {
			zap.L().Error("can't deduct profit balance", zap.Error(err))
		}
		return err
	}
	return nil
}

func (repo *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := repo.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (repo *Repository) SumInvestmentBalance(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := repo.db.QueryRow(ctx, `SELECT COALESCE(SUM(investment_balance), 0) FROM users`).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum investment balances", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}
