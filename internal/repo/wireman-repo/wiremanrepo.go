package wiremanrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/voltwire/referral/internal/domain"
	"github.com/voltwire/referral/internal/pg"
	"go.uber.org/zap"
)

// Each leaderboard category maps to a fixed aggregate query; the category
// string never reaches the SQL text.
var leaderboardQueries = map[string]string{
	"total_bill_amount": `
        SELECT w.id, w.name, w.contact_info, w.date_registered, COALESCE(SUM(b.amount), 0) AS value
        FROM wiremen w
        LEFT JOIN bills b ON b.wireman_id = w.id
        GROUP BY w.id
        ORDER BY value DESC
        LIMIT $1
    `,
	"number_of_bills": `
        SELECT w.id, w.name, w.contact_info, w.date_registered, COUNT(b.id) AS value
        FROM wiremen w
        LEFT JOIN bills b ON b.wireman_id = w.id
        GROUP BY w.id
        ORDER BY value DESC
        LIMIT $1
    `,
	"balance_points": `
        SELECT w.id, w.name, w.contact_info, w.date_registered, COALESCE(p.balance_points, 0) AS value
        FROM wiremen w
        LEFT JOIN points p ON p.wireman_id = w.id
        ORDER BY value DESC
        LIMIT $1
    `,
	"total_points_scored": `
        SELECT w.id, w.name, w.contact_info, w.date_registered, COALESCE(p.total_points, 0) AS value
        FROM wiremen w
        LEFT JOIN points p ON p.wireman_id = w.id
        ORDER BY value DESC
        LIMIT $1
    `,
}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, wireman *domain.Wireman) (*domain.Wireman, error) {
	query := `
        INSERT INTO wiremen (name, contact_info, date_registered)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	row := r.db.QueryRow(ctx, query, wireman.Name, wireman.ContactInfo, wireman.DateRegistered)
	if err := row.Scan(&wireman.ID); err != nil {
		zap.L().Error("can't save wireman", zap.Error(err))
		return nil, err
	}
	return wireman, nil
}

func (r *Repository) Update(ctx context.Context, wireman *domain.Wireman) error {
	query := `
        UPDATE wiremen
        SET name = $1, contact_info = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, wireman.Name, wireman.ContactInfo, wireman.ID)
	if err != nil {
		zap.L().Error("failed to update wireman", zap.Error(err))
		return err
	}
	return nil
}

// Delete removes the wireman; the schema cascades the delete to the
// wireman's bills and ledger record.
func (r *Repository) Delete(ctx context.Context, wiremanID int) error {
	query := `
        DELETE FROM wiremen
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, wiremanID)
	if err != nil {
		zap.L().Error("failed to delete wireman", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, wiremanID int) (*domain.Wireman, error) {
	query := `
        SELECT id, name, contact_info, date_registered
        FROM wiremen
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, wiremanID)

	var wireman domain.Wireman
	err := row.Scan(&wireman.ID, &wireman.Name, &wireman.ContactInfo, &wireman.DateRegistered)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find wireman", zap.Error(err))
		return nil, err
	}
	return &wireman, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Wireman, error) {
	query := `
        SELECT id, name, contact_info, date_registered
        FROM wiremen
        ORDER BY name ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get wiremen", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var wiremen []domain.Wireman
	for rows.Next() {
		var wireman domain.Wireman
		err := rows.Scan(&wireman.ID, &wireman.Name, &wireman.ContactInfo, &wireman.DateRegistered)
		if err != nil {
			zap.L().Error("can't scan wireman row", zap.Error(err))
			return nil, err
		}
		wiremen = append(wiremen, wireman)
	}
	return wiremen, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM wiremen
    `
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		zap.L().Error("failed to count wiremen", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) FilterByBalancePoints(ctx context.Context, min, max decimal.Decimal) ([]domain.WiremanValue, error) {
	query := `
        SELECT w.id, w.name, w.contact_info, w.date_registered, COALESCE(p.balance_points, 0) AS value
        FROM wiremen w
        LEFT JOIN points p ON p.wireman_id = w.id
        WHERE COALESCE(p.balance_points, 0) BETWEEN $1 AND $2
        ORDER BY value DESC
    `
	return r.queryValues(ctx, query, min, max)
}

func (r *Repository) FilterByBilledAmount(ctx context.Context, min, max decimal.Decimal) ([]domain.WiremanValue, error) {
	query := `
        SELECT w.id, w.name, w.contact_info, w.date_registered, COALESCE(SUM(b.amount), 0) AS value
        FROM wiremen w
        LEFT JOIN bills b ON b.wireman_id = w.id
        GROUP BY w.id
        HAVING COALESCE(SUM(b.amount), 0) BETWEEN $1 AND $2
        ORDER BY value DESC
    `
	return r.queryValues(ctx, query, min, max)
}

func (r *Repository) Leaderboard(ctx context.Context, category string, limit int) ([]domain.WiremanValue, error) {
	query, ok := leaderboardQueries[category]
	if !ok {
		return nil, fmt.Errorf("unknown leaderboard category: %s", category)
	}
	return r.queryValues(ctx, query, limit)
}

func (r *Repository) queryValues(ctx context.Context, query string, args ...any) ([]domain.WiremanValue, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get wiremen values", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var values []domain.WiremanValue
	for rows.Next() {
		var value domain.WiremanValue
		err := rows.Scan(&value.Wireman.ID, &value.Wireman.Name, &value.Wireman.ContactInfo, &value.Wireman.DateRegistered, &value.Value)
		if err != nil {
			zap.L().Error("can't scan wireman value row", zap.Error(err))
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}
