package operatorrepo

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

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.Operator, error) {
	var operator domain.Operator
	err := r.db.QueryRow(ctx, "SELECT id, login, password_hash FROM operators WHERE login = $1", login).
		Scan(&operator.ID, &operator.Login, &operator.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find operator", zap.Error(err))
		return nil, err
	}
	return &operator, nil
}

func (r *Repository) Create(ctx context.Context, operator *domain.Operator) (*domain.Operator, error) {
	query := `
		INSERT INTO operators (login, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, operator.Login, operator.PasswordHash).Scan(&operator.ID)
	if err != nil {
		zap.L().Error("can't save operator", zap.Error(err))
		return nil, err
	}
	return operator, nil
}
