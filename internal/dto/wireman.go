package dto

import "github.com/shopspring/decimal"

type WiremanRequestDTO struct {
	Name        string `json:"name" validate:"required" example:"Ramesh Kumar"`
	ContactInfo string `json:"contact_info" example:"+919876543210"`
}

type WiremanResponseDTO struct {
	ID             int    `json:"id" example:"1"`
	Name           string `json:"name" example:"Ramesh Kumar"`
	ContactInfo    string `json:"contact_info" example:"+919876543210"`
	DateRegistered string `json:"date_registered" example:"2024-01-10"`
}

type WiremanValueDTO struct {
	ID    int             `json:"id" example:"1"`
	Name  string          `json:"name" example:"Ramesh Kumar"`
	Value decimal.Decimal `json:"value" swaggertype:"string" example:"12500.00"`
}

type LeaderboardEntryDTO struct {
	Rank  int             `json:"rank" example:"1"`
	Name  string          `json:"name" example:"Ramesh Kumar"`
	Value decimal.Decimal `json:"value" swaggertype:"string" example:"42"`
}

type DashboardResponseDTO struct {
	Wireman        WiremanResponseDTO `json:"wireman"`
	TotalBills     int                `json:"total_bills" example:"12"`
	TotalBusiness  decimal.Decimal    `json:"total_business" swaggertype:"string" example:"36500.00"`
	LatestBillDate string             `json:"latest_bill_date,omitempty" example:"2024-06-15"`
	TotalPoints    decimal.Decimal    `json:"total_points" swaggertype:"string" example:"36"`
	BalancePoints  decimal.Decimal    `json:"balance_points" swaggertype:"string" example:"30"`
}

type SummaryResponseDTO struct {
	TotalWiremen  int             `json:"total_wiremen" example:"8"`
	TotalBills    int             `json:"total_bills" example:"120"`
	TotalBusiness decimal.Decimal `json:"total_business" swaggertype:"string" example:"480000.00"`
}
