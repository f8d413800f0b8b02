package dto

import "github.com/shopspring/decimal"

type LedgerResponseDTO struct {
	WiremanID      int             `json:"wireman_id" example:"1"`
	TotalPoints    decimal.Decimal `json:"total_points" swaggertype:"string" example:"10"`
	RedeemedPoints decimal.Decimal `json:"redeemed_points" swaggertype:"string" example:"2"`
	BalancePoints  decimal.Decimal `json:"balance_points" swaggertype:"string" example:"8"`
}

type RedeemRequestDTO struct {
	Points decimal.Decimal `json:"points" swaggertype:"string" example:"5"`
}
