package ledgerservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/voltwire/referral/internal/domain"
	"github.com/voltwire/referral/internal/pg"
)

type Repo interface {
	FindByWiremanID(ctx context.Context, wiremanID int) (*domain.Ledger, error)
	FindByWiremanIDForUpdate(ctx context.Context, wiremanID int) (*domain.Ledger, error)
	Update(ctx context.Context, ledger *domain.Ledger) error
}

var (
	ErrLedgerNotFound    = errors.New("no points record found for this wireman")
	ErrInvalidRedemption = errors.New("redemption exceeds available balance")
)

// Service owns the redemption side of the points ledger. Redemptions move
// points from balance to redeemed and never touch the total.
type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// GetLedger returns the wireman's ledger record, or nil when no record
// exists yet. Absence is an observable state, not an error.
func (s *Service) GetLedger(ctx context.Context, wiremanID int) (*domain.Ledger, error) {
	ledger, err := s.repo.FindByWiremanID(ctx, wiremanID)
	if err != nil {
		zap.L().Error("failed to get ledger", zap.Error(err))
		return nil, err
	}
	return ledger, nil
}

func (s *Service) RedeemSpecific(ctx context.Context, wiremanID int, pts decimal.Decimal) error {
	if pts.IsNegative() {
		return ErrInvalidRedemption
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ledger, err := s.repo.FindByWiremanIDForUpdate(ctx, wiremanID)
		if err != nil {
			return err
		}
		if ledger == nil {
			return ErrLedgerNotFound
		}
		if pts.GreaterThan(ledger.BalancePoints) {
			return ErrInvalidRedemption
		}

		ledger.RedeemedPoints = ledger.RedeemedPoints.Add(pts)
		ledger.BalancePoints = ledger.BalancePoints.Sub(pts)
		return s.repo.Update(ctx, ledger)
	})
	if err != nil {
		if !errors.Is(err, ErrLedgerNotFound) && !errors.Is(err, ErrInvalidRedemption) {
			zap.L().Error("failed to redeem points", zap.Error(err))
		}
		return err
	}

	zap.L().Info("points redeemed",
		zap.Int("wireman_id", wiremanID),
		zap.String("points", pts.String()))
	return nil
}

func (s *Service) RedeemAll(ctx context.Context, wiremanID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ledger, err := s.repo.FindByWiremanIDForUpdate(ctx, wiremanID)
		if err != nil {
			return err
		}
		if ledger == nil {
			return ErrLedgerNotFound
		}

		ledger.RedeemedPoints = ledger.TotalPoints
		ledger.BalancePoints = decimal.Zero
		return s.repo.Update(ctx, ledger)
	})
	if err != nil {
		if !errors.Is(err, ErrLedgerNotFound) {
			zap.L().Error("failed to redeem all points", zap.Error(err))
		}
		return err
	}
	return nil
}

// ResetPoints zeroes the whole ledger record. Irreversible.
func (s *Service) ResetPoints(ctx context.Context, wiremanID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ledger, err := s.repo.FindByWiremanIDForUpdate(ctx, wiremanID)
		if err != nil {
			return err
		}
		if ledger == nil {
			return ErrLedgerNotFound
		}

		ledger.TotalPoints = decimal.Zero
		ledger.RedeemedPoints = decimal.Zero
		ledger.BalancePoints = decimal.Zero
		return s.repo.Update(ctx, ledger)
	})
	if err != nil {
		if !errors.Is(err, ErrLedgerNotFound) {
			zap.L().Error("failed to reset points", zap.Error(err))
		}
		return err
	}
	return nil
}
