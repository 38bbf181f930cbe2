package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProfitRequestDTO struct {
	DeclaredProfit      decimal.Decimal `json:"declaredProfit" example:"14000"`
	DistributionPercent decimal.Decimal `json:"distributionPercent" example:"0.7"`
	DistributionDate    string          `json:"distributionDate" example:"2025-12-01"`
}

type ProfitPayoutPreviewDTO struct {
	UserID             int             `json:"userId" example:"3"`
	Email              string          `json:"email" example:"client@example.com"`
	InvestmentSnapshot decimal.Decimal `json:"investmentSnapshot" example:"10000"`
	ShareAmount        decimal.Decimal `json:"shareAmount" example:"70.00"`
}

type ProfitPreviewResponseDTO struct {
	InvestmentPool    decimal.Decimal          `json:"investmentPool" example:"20000"`
	TotalToDistribute decimal.Decimal          `json:"totalToDistribute" example:"140.00"`
	RecipientsCount   int                      `json:"recipientsCount" example:"2"`
	Preview           []ProfitPayoutPreviewDTO `json:"preview"`
}

type ProfitDistributeResponseDTO struct {
	Message          string          `json:"message" example:"Profit distributed successfully"`
	DistributionID   int             `json:"distributionId" example:"4"`
	Recipients       int             `json:"recipients" example:"2"`
	TotalDistributed decimal.Decimal `json:"totalDistributed" example:"140.00"`
}

type ProfitDistributionDTO struct {
	ID                  int             `json:"id" example:"4"`
	DeclaredProfit      decimal.Decimal `json:"declaredProfit" example:"14000"`
	DistributionPercent decimal.Decimal `json:"distributionPercent" example:"0.7"`
	DeclaredDate        time.Time       `json:"declaredDate"`
	InvestmentPool      decimal.Decimal `json:"investmentPool" example:"20000"`
	TotalDistributed    decimal.Decimal `json:"totalDistributed" example:"140.00"`
	RecipientsCount     int             `json:"recipientsCount" example:"2"`
	CreatedByEmail      string          `json:"createdBy" example:"admin@example.com"`
	Status              string          `json:"status" example:"distributed"`
}

type ProfitHistoryResponseDTO struct {
	Total    int                     `json:"total" example:"42"`
	Page     int                     `json:"page" example:"1"`
	PageSize int                     `json:"pageSize" example:"20"`
	Records  []ProfitDistributionDTO `json:"records"`
}
