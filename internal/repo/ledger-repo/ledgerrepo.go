package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

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

func (r *Repository) FindByWiremanID(ctx context.Context, wiremanID int) (*domain.Ledger, error) {
	query := `
        SELECT id, wireman_id, total_points, redeemed_points, balance_points
        FROM points
        WHERE wireman_id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, wiremanID))
}

// FindByWiremanIDForUpdate locks the ledger row for the rest of the enclosing
// transaction, serializing concurrent operations on the same wireman.
func (r *Repository) FindByWiremanIDForUpdate(ctx context.Context, wiremanID int) (*domain.Ledger, error) {
	query := `
        SELECT id, wireman_id, total_points, redeemed_points, balance_points
        FROM points
        WHERE wireman_id = $1
        FOR UPDATE
    `
	return r.scanOne(r.db.QueryRow(ctx, query, wiremanID))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Ledger, error) {
	var ledger domain.Ledger
	err := row.Scan(&ledger.ID, &ledger.WiremanID, &ledger.TotalPoints, &ledger.RedeemedPoints, &ledger.BalancePoints)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get ledger record", zap.Error(err))
		return nil, err
	}
	return &ledger, nil
}

func (r *Repository) Create(ctx context.Context, ledger *domain.Ledger) (*domain.Ledger, error) {
	query := `
        INSERT INTO points (wireman_id, total_points, redeemed_points, balance_points)
        VALUES ($1, $2, $3, $4)
        RETURNING id, wireman_id, total_points, redeemed_points, balance_points
    `
	row := r.db.QueryRow(ctx, query, ledger.WiremanID, ledger.TotalPoints, ledger.RedeemedPoints, ledger.BalancePoints)
	var created domain.Ledger
	err := row.Scan(&created.ID, &created.WiremanID, &created.TotalPoints, &created.RedeemedPoints, &created.BalancePoints)
	if err != nil {
		zap.L().Error("failed to create ledger record", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) Update(ctx context.Context, ledger *domain.Ledger) error {
	query := `
        UPDATE points
        SET total_points = $1, redeemed_points = $2, balance_points = $3
        WHERE wireman_id = $4
    `
	_, err := r.db.Exec(ctx, query, ledger.TotalPoints, ledger.RedeemedPoints, ledger.BalancePoints, ledger.WiremanID)
	if err != nil {
		zap.L().Error("failed to update ledger record", zap.Error(err))
		return err
	}
	return nil
}
