package dto

import "github.com/shopspring/decimal"

type StatsResponseDTO struct {
	TotalUsers               int             `json:"totalUsers" example:"120"`
	TotalDepositsApproved    decimal.Decimal `json:"totalDepositsApproved" example:"250000"`
	TotalWithdrawalsApproved decimal.Decimal `json:"totalWithdrawalsApproved" example:"31000"`
	PendingDeposits          int             `json:"pendingDeposits" example:"3"`
	PendingWithdrawals       int             `json:"pendingWithdrawals" example:"2"`
	TotalInvestmentPool      decimal.Decimal `json:"totalInvestmentPool" example:"500000"`
	TodayDistributed         decimal.Decimal `json:"todayDistributed" example:"140.00"`
}
