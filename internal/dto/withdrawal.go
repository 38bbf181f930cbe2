package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateWithdrawalRequestDTO struct {
	Amount        decimal.Decimal `json:"amount" example:"500"`
	Currency      string          `json:"currency" example:"USDT"`
	Method        string          `json:"method" example:"crypto"`
	TargetAddress string          `json:"targetAddress" example:"0xdeadbeef"`
}

type WithdrawalResponseDTO struct {
	ID            int             `json:"id" example:"7"`
	UserID        int             `json:"userId" example:"1"`
	Amount        decimal.Decimal `json:"amount" example:"500"`
	Currency      string          `json:"currency" example:"USDT"`
	Method        string          `json:"method" example:"crypto"`
	TargetAddress string          `json:"targetAddress"`
	Status        string          `json:"status" example:"pending"`
	StatusReason  string          `json:"statusReason,omitempty"`
	TxID          string          `json:"txId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}
