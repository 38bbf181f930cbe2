package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/blackvant/backend/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var userColumns = []string{"id", "subject_id", "email", "full_name", "role", "investment_balance", "profit_balance", "created_at"}

func TestRepository_FindBySubjectID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		subjectID string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:      "User found",
			subjectID: "sub-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "sub-1", "a@example.com", "Alice", "client",
						decimal.RequireFromString("100"), decimal.RequireFromString("5"), createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE subject_id = $1")).
					WithArgs("sub-1").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID: 1, SubjectID: "sub-1", Email: "a@example.com", FullName: "Alice", Role: "client",
				InvestmentBalance: decimal.RequireFromString("100"),
				ProfitBalance:     decimal.RequireFromString("5"),
				CreatedAt:         createdAt,
			},
		},
		{
			name:      "User not found",
			subjectID: "sub-missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE subject_id = $1")).
					WithArgs("sub-missing").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:      "Database error",
			subjectID: "sub-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE subject_id = $1")).
					WithArgs("sub-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindBySubjectID(context.Background(), tt.subjectID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("New user starts with zero balances", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "investment_balance", "profit_balance", "created_at"}).
			AddRow(2, decimal.Zero, decimal.Zero, createdAt)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (subject_id, email, full_name, role)")).
			WithArgs("sub-2", "b@example.com", "", "client").
			WillReturnRows(rows)

		user, err := repo.Create(context.Background(), &domain.User{
			SubjectID: "sub-2", Email: "b@example.com", Role: "client",
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, user.ID)
		assert.True(t, user.InvestmentBalance.IsZero())
		assert.True(t, user.ProfitBalance.IsZero())
	})

	t.Run("Duplicate subject fails", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (subject_id, email, full_name, role)")).
			WithArgs("sub-2", "b@example.com", "", "client").
			WillReturnError(errors.New("duplicate key value"))

		user, err := repo.Create(context.Background(), &domain.User{
			SubjectID: "sub-2", Email: "b@example.com", Role: "client",
		})

		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_ListEligible(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Only positive balances", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "email", "investment_balance"}).
			AddRow(1, "a@example.com", decimal.RequireFromString("10000")).
			AddRow(2, "b@example.com", decimal.RequireFromString("250.50"))
		mock.ExpectQuery(regexp.QuoteMeta("WHERE investment_balance > 0")).
			WillReturnRows(rows)

		eligible, err := repo.ListEligible(context.Background())

		assert.NoError(t, err)
		assert.Len(t, eligible, 2)
		assert.Equal(t, 1, eligible[0].UserID)
		assert.Equal(t, "10000", eligible[0].InvestmentBalance.String())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE investment_balance > 0")).
			WillReturnError(errors.New("database error"))

		eligible, err := repo.ListEligible(context.Background())

		assert.Error(t, err)
		assert.Nil(t, eligible)
	})
}

func TestRepository_AddToProfitBalance(t *testing.T) {
	repo, mock := NewMock(t)
	amount := decimal.RequireFromString("70")

	mock.ExpectExec(regexp.QuoteMeta("SET profit_balance = profit_balance + $1")).
		WithArgs(amount, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.AddToProfitBalance(context.Background(), 1, amount)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddToInvestmentBalance(t *testing.T) {
	repo, mock := NewMock(t)
	amount := decimal.RequireFromString("500")

	mock.ExpectExec(regexp.QuoteMeta("SET investment_balance = investment_balance + $1")).
		WithArgs(amount, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.AddToInvestmentBalance(context.Background(), 1, amount)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeductProfitBalance(t *testing.T) {
	repo, mock := NewMock(t)
	amount := decimal.RequireFromString("120")

	t.Run("Sufficient balance", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"profit_balance"}).AddRow(decimal.RequireFromString("30"))
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $2 AND profit_balance >= $1")).
			WithArgs(amount, 1).
			WillReturnRows(rows)

		err := repo.DeductProfitBalance(context.Background(), 1, amount)

		assert.NoError(t, err)
	})

	t.Run("Insufficient balance reports no rows", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $2 AND profit_balance >= $1")).
			WithArgs(amount, 1).
			WillReturnError(pgx.ErrNoRows)

		err := repo.DeductProfitBalance(context.Background(), 1, amount)

		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestRepository_Count(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"count"}).AddRow(42)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(rows)

	count, err := repo.Count(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestRepository_SumInvestmentBalance(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"sum"}).AddRow(decimal.RequireFromString("750000"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(investment_balance), 0) FROM users")).
		WillReturnRows(rows)

	sum, err := repo.SumInvestmentBalance(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "750000", sum.String())
}
