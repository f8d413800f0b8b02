package dto

import "github.com/shopspring/decimal"

type CreateBillRequestDTO struct {
	WiremanID     int             `json:"wireman_id" example:"1"`
	ClientName    string          `json:"client_name" example:"Sharma Electricals"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"2500.00"`
	Date          string          `json:"date" example:"2024-06-15"`
	PaymentStatus string          `json:"payment_status" example:"Paid"`
}

type UpdateBillRequestDTO struct {
	ClientName    string          `json:"client_name" example:"Sharma Electricals"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"1800.00"`
	Date          string          `json:"date" example:"2024-06-15"`
	PaymentStatus string          `json:"payment_status" example:"Partially Paid"`
}

type BillResponseDTO struct {
	ID            int             `json:"id" example:"7"`
	WiremanID     int             `json:"wireman_id" example:"1"`
	ClientName    string          `json:"client_name" example:"Sharma Electricals"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"2500.00"`
	Date          string          `json:"date" example:"2024-06-15"`
	PaymentStatus string          `json:"payment_status" example:"Paid"`
	PointsEarned  decimal.Decimal `json:"points_earned" swaggertype:"string" example:"2"`
}

type CreateBillResponseDTO struct {
	Bill    BillResponseDTO `json:"bill"`
	Message string          `json:"message" example:"Bill submitted successfully! 2 points earned."`
}

type TotalBilledResponseDTO struct {
	TotalAmount decimal.Decimal `json:"total_amount" swaggertype:"string" example:"125000.00"`
}
