package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleClient     string = "client"
	RoleAdmin      string = "admin"
	RoleSuperadmin string = "superadmin"
)

const (
	StatusPending  string = "pending"
	StatusApproved string = "approved"
	StatusRejected string = "rejected"
)

type User struct {
	ID                int             `db:"id"`
	SubjectID         string          `db:"subject_id"`
	Email             string          `db:"email"`
	FullName          string          `db:"full_name"`
	Role              string          `db:"role"`
	InvestmentBalance decimal.Decimal `db:"investment_balance"`
	ProfitBalance     decimal.Decimal `db:"profit_balance"`
	CreatedAt         time.Time       `db:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperadmin
}

type Deposit struct {
	ID           int             `db:"id"`
	UserID       int             `db:"user_id"`
	Amount       decimal.Decimal `db:"amount"`
	Currency     string          `db:"currency"`
	Method       string          `db:"method"`
	ProofURL     string          `db:"proof_url"`
	TxID         string          `db:"tx_id"`
	Status       string          `db:"status"`
	StatusReason string          `db:"status_reason"`
	ReviewedBy   int             `db:"reviewed_by"`
	ApprovedAt   *time.Time      `db:"approved_at"`
	CreatedAt    time.Time       `db:"created_at"`
}

type Withdrawal struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	Method        string          `db:"method"`
	TargetAddress string          `db:"target_address"`
	Status        string          `db:"status"`
	StatusReason  string          `db:"status_reason"`
	TxID          string          `db:"tx_id"`
	ReviewedBy    int             `db:"reviewed_by"`
	ApprovedAt    *time.Time      `db:"approved_at"`
	CreatedAt     time.Time       `db:"created_at"`
}

type ProfitDistribution struct {
	ID                  int             `db:"id"`
	DeclaredProfit      decimal.Decimal `db:"declared_profit"`
	DistributionPercent decimal.Decimal `db:"distribution_percent"`
	DeclaredDate        time.Time       `db:"declared_date"`
	InvestmentPool      decimal.Decimal `db:"investment_pool"`
	TotalDistributed    decimal.Decimal `db:"total_distributed"`
	RecipientsCount     int             `db:"recipients_count"`
	CreatedBy           int             `db:"created_by"`
	CreatedByEmail      string          `db:"-"`
	Status              string          `db:"status"`
	CreatedAt           time.Time       `db:"created_at"`
}

type ProfitPayout struct {
	ID                 int             `db:"id"`
	DistributionID     int             `db:"distribution_id"`
	UserID             int             `db:"user_id"`
	InvestmentSnapshot decimal.Decimal `db:"investment_snapshot"`
	ShareAmount        decimal.Decimal `db:"share_amount"`
	CreatedAt          time.Time       `db:"created_at"`
}

// EligibleUser is a user holding a strictly positive investment balance,
// snapshotted for one distribution computation.
type EligibleUser struct {
	UserID            int             `db:"id"`
	Email             string          `db:"email"`
	InvestmentBalance decimal.Decimal `db:"investment_balance"`
}

type AuditEntry struct {
	ID         int       `db:"id"`
	ActorID    int       `db:"actor_id"`
	Action     string    `db:"action"`
	EntityType string    `db:"entity_type"`
	EntityID   int       `db:"entity_id"`
	Meta       []byte    `db:"meta"`
	CreatedAt  time.Time `db:"created_at"`
}
