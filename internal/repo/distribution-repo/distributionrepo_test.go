package distributionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestRepository_AcquireDistributionLock(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Takes the advisory lock", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
			WithArgs(874219).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		err := repo.AcquireDistributionLock(context.Background())

		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
			WithArgs(874219).
			WillReturnError(errors.New("database error"))

		err := repo.AcquireDistributionLock(context.Background())

		assert.Error(t, err)
	})
}

func TestRepository_CreateDistribution(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	declaredDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	dist := &domain.ProfitDistribution{
		DeclaredProfit:      decimal.RequireFromString("500"),
		DistributionPercent: decimal.RequireFromString("0.7"),
		DeclaredDate:        declaredDate,
		InvestmentPool:      decimal.RequireFromString("20000"),
		TotalDistributed:    decimal.RequireFromString("140"),
		RecipientsCount:     2,
		CreatedBy:           99,
		Status:              "distributed",
	}

	rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(42, createdAt)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profit_distributions")).
		WithArgs(
			dist.DeclaredProfit, dist.DistributionPercent, dist.DeclaredDate,
			dist.InvestmentPool, dist.TotalDistributed, dist.RecipientsCount,
			dist.CreatedBy, dist.Status,
		).
		WillReturnRows(rows)

	saved, err := repo.CreateDistribution(context.Background(), dist)

	assert.NoError(t, err)
	assert.Equal(t, 42, saved.ID)
	assert.Equal(t, createdAt, saved.CreatedAt)
}

func TestRepository_CreatePayout(t *testing.T) {
	repo, mock := NewMock(t)

	payout := &domain.ProfitPayout{
		DistributionID:     42,
		UserID:             1,
		InvestmentSnapshot: decimal.RequireFromString("10000"),
		ShareAmount:        decimal.RequireFromString("70"),
	}

	t.Run("Payout saved", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id"}).AddRow(101)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profit_payouts (distribution_id, user_id, investment_snapshot, share_amount)")).
			WithArgs(42, 1, payout.InvestmentSnapshot, payout.ShareAmount).
			WillReturnRows(rows)

		err := repo.CreatePayout(context.Background(), payout)

		assert.NoError(t, err)
		assert.Equal(t, 101, payout.ID)
	})

	t.Run("Duplicate recipient fails", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profit_payouts")).
			WithArgs(42, 1, payout.InvestmentSnapshot, payout.ShareAmount).
			WillReturnError(errors.New("duplicate key value"))

		err := repo.CreatePayout(context.Background(), payout)

		assert.Error(t, err)
	})
}

var distributionRowColumns = []string{
	"id", "declared_profit", "distribution_percent", "declared_date",
	"investment_pool", "total_distributed", "recipients_count",
	"created_by", "email", "status", "created_at",
}

func distributionRow(id int, declaredDate time.Time) []any {
	return []any{
		id, decimal.RequireFromString("500"), decimal.RequireFromString("0.7"), declaredDate,
		decimal.RequireFromString("20000"), decimal.RequireFromString("140"), 2,
		99, "admin@example.com", "distributed", declaredDate.Add(12 * time.Hour),
	}
}

func TestRepository_List(t *testing.T) {
	declaredDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Returns one page, newest first", func(t *testing.T) {
		repo, mock := NewMock(t)

		rows := pgxmock.NewRows(distributionRowColumns).
			AddRow(distributionRow(43, declaredDate.AddDate(0, 0, 1))...).
			AddRow(distributionRow(42, declaredDate)...)
		mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
			WithArgs(20, 0).
			WillReturnRows(rows)

		dists, err := repo.List(context.Background(), 20, 0)

		assert.NoError(t, err)
		assert.Len(t, dists, 2)
		assert.Equal(t, 43, dists[0].ID)
		assert.Equal(t, "admin@example.com", dists[0].CreatedByEmail)
	})

	t.Run("Mid-stream row failure is not truncated silently", func(t *testing.T) {
		repo, mock := NewMock(t)

		rows := pgxmock.NewRows(distributionRowColumns).
			AddRow(distributionRow(43, declaredDate.AddDate(0, 0, 1))...).
			AddRow(distributionRow(42, declaredDate)...).
			RowError(1, errors.New("connection lost"))
		mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
			WithArgs(20, 0).
			WillReturnRows(rows)

		dists, err := repo.List(context.Background(), 20, 0)

		assert.Error(t, err)
		assert.Nil(t, dists)
	})
}

func TestRepository_ListAll(t *testing.T) {
	repo, mock := NewMock(t)
	declaredDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(distributionRowColumns).AddRow(distributionRow(42, declaredDate)...)
	mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.id = d.created_by")).
		WillReturnRows(rows)

	dists, err := repo.ListAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, dists, 1)
	assert.Equal(t, "140", dists[0].TotalDistributed.String())
}

func TestRepository_Count(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"count"}).AddRow(12)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM profit_distributions")).
		WillReturnRows(rows)

	count, err := repo.Count(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 12, count)
}

func TestRepository_SumDistributedSince(t *testing.T) {
	repo, mock := NewMock(t)
	since := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"sum"}).AddRow(decimal.RequireFromString("5250"))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE declared_date >= $1")).
		WithArgs(since).
		WillReturnRows(rows)

	sum, err := repo.SumDistributedSince(context.Background(), since)

	assert.NoError(t, err)
	assert.Equal(t, "5250", sum.String())
}
