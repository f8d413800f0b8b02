package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Operator struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Wireman struct {
	ID             int       `db:"id"`
	Name           string    `db:"name"`
	ContactInfo    string    `db:"contact_info"`
	DateRegistered time.Time `db:"date_registered"`
}

type Bill struct {
	ID            int             `db:"id"`
	WiremanID     int             `db:"wireman_id"`
	ClientName    string          `db:"client_name"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"date"`
	PaymentStatus string          `db:"payment_status"`
	PointsEarned  decimal.Decimal `db:"points_earned"`
}

type Ledger struct {
	ID             int             `db:"id"`
	WiremanID      int             `db:"wireman_id"`
	TotalPoints    decimal.Decimal `db:"total_points"`
	RedeemedPoints decimal.Decimal `db:"redeemed_points"`
	BalancePoints  decimal.Decimal `db:"balance_points"`
}

// WiremanValue pairs a wireman with a single aggregate value, e.g. a
// leaderboard metric or a filter column.
type WiremanValue struct {
	Wireman Wireman
	Value   decimal.Decimal
}

// BillStats aggregates the bills of a single wireman.
type BillStats struct {
	TotalBills     int
	TotalBusiness  decimal.Decimal
	LatestBillDate *time.Time
}
