package depositrepo

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

var depositRowColumns = []string{
	"id", "user_id", "amount", "currency", "method", "proof_url", "tx_id",
	"status", "status_reason", "reviewed_by", "approved_at", "created_at",
}

func depositRow(id int, status string, createdAt time.Time) []any {
	return []any{
		id, 5, decimal.RequireFromString("250.50"), "USD", "bank_transfer", "", "",
		status, "", 0, (*time.Time)(nil), createdAt,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("250.50")

	t.Run("New deposit starts pending", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "status", "created_at"}).
			AddRow(11, "pending", createdAt)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO deposits (user_id, amount, currency, method, proof_url, tx_id)")).
			WithArgs(5, amount, "USD", "bank_transfer", "", "").
			WillReturnRows(rows)

		deposit, err := repo.Create(context.Background(), &domain.Deposit{
			UserID: 5, Amount: amount, Currency: "USD", Method: "bank_transfer",
		})

		assert.NoError(t, err)
		assert.Equal(t, 11, deposit.ID)
		assert.Equal(t, domain.StatusPending, deposit.Status)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO deposits")).
			WithArgs(5, amount, "USD", "bank_transfer", "", "").
			WillReturnError(errors.New("database error"))

		deposit, err := repo.Create(context.Background(), &domain.Deposit{
			UserID: 5, Amount: amount, Currency: "USD", Method: "bank_transfer",
		})

		assert.Error(t, err)
		assert.Nil(t, deposit)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Deposit found", func(t *testing.T) {
		rows := pgxmock.NewRows(depositRowColumns).AddRow(depositRow(11, "pending", createdAt)...)
		mock.ExpectQuery(regexp.QuoteMeta("FROM deposits")).
			WithArgs(11).
			WillReturnRows(rows)

		deposit, err := repo.FindByID(context.Background(), 11)

		assert.NoError(t, err)
		assert.Equal(t, 11, deposit.ID)
		assert.Equal(t, domain.StatusPending, deposit.Status)
	})

	t.Run("Deposit not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM deposits")).
			WithArgs(404).
			WillReturnError(pgx.ErrNoRows)

		deposit, err := repo.FindByID(context.Background(), 404)

		assert.NoError(t, err)
		assert.Nil(t, deposit)
	})
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(depositRowColumns).
		AddRow(depositRow(12, "approved", createdAt.Add(time.Hour))...).
		AddRow(depositRow(11, "pending", createdAt)...)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
		WithArgs(5).
		WillReturnRows(rows)

	deposits, err := repo.ListByUserID(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, deposits, 2)
	assert.Equal(t, 12, deposits[0].ID)
}

func TestRepository_ListPending(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(depositRowColumns).AddRow(depositRow(11, "pending", createdAt)...)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'pending'")).
		WillReturnRows(rows)

	deposits, err := repo.ListPending(context.Background())

	assert.NoError(t, err)
	assert.Len(t, deposits, 1)
	assert.Equal(t, domain.StatusPending, deposits[0].Status)
}

func TestRepository_MarkApproved(t *testing.T) {
	t.Run("Pending row approved", func(t *testing.T) {
		repo, mock := NewMock(t)

		mock.ExpectExec(regexp.QuoteMeta("WHERE id = $2 AND status = 'pending'")).
			WithArgs(99, 11).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.MarkApproved(context.Background(), 11, 99)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Row no longer pending", func(t *testing.T) {
		repo, mock := NewMock(t)

		mock.ExpectExec(regexp.QuoteMeta("WHERE id = $2 AND status = 'pending'")).
			WithArgs(99, 11).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.MarkApproved(context.Background(), 11, 99)

		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestRepository_MarkRejected(t *testing.T) {
	t.Run("Pending row rejected", func(t *testing.T) {
		repo, mock := NewMock(t)

		mock.ExpectExec(regexp.QuoteMeta("WHERE id = $3 AND status = 'pending'")).
			WithArgs("blurry receipt", 99, 11).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.MarkRejected(context.Background(), 11, 99, "blurry receipt")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Row no longer pending", func(t *testing.T) {
		repo, mock := NewMock(t)

		mock.ExpectExec(regexp.QuoteMeta("WHERE id = $3 AND status = 'pending'")).
			WithArgs("blurry receipt", 99, 11).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.MarkRejected(context.Background(), 11, 99, "blurry receipt")

		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestRepository_SumApproved(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"sum"}).AddRow(decimal.RequireFromString("800000"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0) FROM deposits WHERE status = 'approved'")).
		WillReturnRows(rows)

	sum, err := repo.SumApproved(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "800000", sum.String())
}

func TestRepository_CountPending(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"count"}).AddRow(4)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM deposits WHERE status = 'pending'")).
		WillReturnRows(rows)

	count, err := repo.CountPending(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 4, count)
}
