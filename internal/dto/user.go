package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProfileResponseDTO struct {
	ID                int             `json:"id" example:"1"`
	Email             string          `json:"email" example:"client@example.com"`
	FullName          string          `json:"fullName,omitempty" example:"Jane Doe"`
	Role              string          `json:"role" example:"client"`
	InvestmentBalance decimal.Decimal `json:"investmentBalance" example:"10000"`
	ProfitBalance     decimal.Decimal `json:"profitBalance" example:"70.00"`
	CreatedAt         time.Time       `json:"createdAt" example:"2025-12-09T16:09:57+03:00"`
}
