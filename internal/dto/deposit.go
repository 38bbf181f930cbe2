package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateDepositRequestDTO struct {
	Amount   decimal.Decimal `json:"amount" example:"1000"`
	Currency string          `json:"currency" example:"USDT"`
	Method   string          `json:"method" example:"crypto"`
	ProofURL string          `json:"proofUrl,omitempty"`
	TxID     string          `json:"txId,omitempty"`
}

type DepositResponseDTO struct {
	ID           int             `json:"id" example:"12"`
	UserID       int             `json:"userId" example:"1"`
	Amount       decimal.Decimal `json:"amount" example:"1000"`
	Currency     string          `json:"currency" example:"USDT"`
	Method       string          `json:"method" example:"crypto"`
	ProofURL     string          `json:"proofUrl,omitempty"`
	TxID         string          `json:"txId,omitempty"`
	Status       string          `json:"status" example:"pending"`
	StatusReason string          `json:"statusReason,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type ReviewRequestDTO struct {
	Reason string `json:"reason,omitempty" example:"proof of payment missing"`
	TxID   string `json:"txId,omitempty" example:"0xabc123"`
	Note   string `json:"note,omitempty"`
}
