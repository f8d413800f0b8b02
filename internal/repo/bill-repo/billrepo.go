package billrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/voltwire/referral/internal/domain"
	"github.com/voltwire/referral/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, billID int) (*domain.Bill, error) {
	query := `
        SELECT id, wireman_id, client_name, amount, date, payment_status, points_earned
        FROM bills
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, billID)

	var bill domain.Bill
	err := row.Scan(&bill.ID, &bill.WiremanID, &bill.ClientName, &bill.Amount, &bill.Date, &bill.PaymentStatus, &bill.PointsEarned)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find bill", zap.Error(err))
		return nil, err
	}
	return &bill, nil
}

func (r *Repository) FindByWiremanID(ctx context.Context, wiremanID int) ([]domain.Bill, error) {
	query := `
        SELECT id, wireman_id, client_name, amount, date, payment_status, points_earned
        FROM bills
        WHERE wireman_id = $1
        ORDER BY date DESC
    `
	rows, err := r.db.Query(ctx, query, wiremanID)
	if err != nil {
		zap.L().Error("can't get bills for wireman", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanBills(rows)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Bill, error) {
	query := `
        SELECT id, wireman_id, client_name, amount, date, payment_status, points_earned
        FROM bills
        ORDER BY date DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get bills", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanBills(rows)
}

func scanBills(rows pgx.Rows) ([]domain.Bill, error) {
	var bills []domain.Bill
	for rows.Next() {
		var bill domain.Bill
		err := rows.Scan(&bill.ID, &bill.WiremanID, &bill.ClientName, &bill.Amount, &bill.Date, &bill.PaymentStatus, &bill.PointsEarned)
		if err != nil {
			zap.L().Error("can't scan bill row", zap.Error(err))
			return nil, err
		}
		bills = append(bills, bill)
	}
	return bills, nil
}

func (r *Repository) Save(ctx context.Context, bill *domain.Bill) (*domain.Bill, error) {
	query := `
        INSERT INTO bills (wireman_id, client_name, amount, date, payment_status, points_earned)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	row := r.db.QueryRow(ctx, query, bill.WiremanID, bill.ClientName, bill.Amount, bill.Date, bill.PaymentStatus, bill.PointsEarned)
	if err := row.Scan(&bill.ID); err != nil {
		zap.L().Error("can't save bill", zap.Error(err))
		return nil, err
	}
	return bill, nil
}

func (r *Repository) Update(ctx context.Context, bill *domain.Bill) error {
	query := `
        UPDATE bills
        SET client_name = $1, amount = $2, date = $3, payment_status = $4, points_earned = $5
        WHERE id = $6
    `
	_, err := r.db.Exec(ctx, query, bill.ClientName, bill.Amount, bill.Date, bill.PaymentStatus, bill.PointsEarned, bill.ID)
	if err != nil {
		zap.L().Error("failed to update bill", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, billID int) error {
	query := `
        DELETE FROM bills
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, billID)
	if err != nil {
		zap.L().Error("failed to delete bill", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) TotalAmount(ctx context.Context) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM bills
    `
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		zap.L().Error("failed to sum bill amounts", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}

func (r *Repository) CountAll(ctx context.Context) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM bills
    `
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		zap.L().Error("failed to count bills", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) StatsForWireman(ctx context.Context, wiremanID int) (*domain.BillStats, error) {
	query := `
        SELECT COUNT(*), COALESCE(SUM(amount), 0), MAX(date)
        FROM bills
        WHERE wireman_id = $1
    `
	var stats domain.BillStats
	err := r.db.QueryRow(ctx, query, wiremanID).Scan(&stats.TotalBills, &stats.TotalBusiness, &stats.LatestBillDate)
	if err != nil {
		zap.L().Error("failed to get bill stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
