package billservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/voltwire/referral/internal/domain"
	"github.com/voltwire/referral/internal/pg"
	"github.com/voltwire/referral/internal/points"
)

type BillRepo interface {
	FindByID(ctx context.Context, billID int) (*domain.Bill, error)
	FindByWiremanID(ctx context.Context, wiremanID int) ([]domain.Bill, error)
	FindAll(ctx context.Context) ([]domain.Bill, error)
	Save(ctx context.Context, bill *domain.Bill) (*domain.Bill, error)
	Update(ctx context.Context, bill *domain.Bill) error
	Delete(ctx context.Context, billID int) error
	TotalAmount(ctx context.Context) (decimal.Decimal, error)
}

type WiremanRepo interface {
	FindByID(ctx context.Context, wiremanID int) (*domain.Wireman, error)
}

type LedgerRepo interface {
	FindByWiremanIDForUpdate(ctx context.Context, wiremanID int) (*domain.Ledger, error)
	Create(ctx context.Context, ledger *domain.Ledger) (*domain.Ledger, error)
	Update(ctx context.Context, ledger *domain.Ledger) error
}

const (
	PaidStatus          string = "Paid"
	PartiallyPaidStatus string = "Partially Paid"
	NotPaidStatus       string = "Not paid"
)

var (
	ErrClientNameRequired = errors.New("client name is required")
	ErrAmountNotPositive  = errors.New("bill amount must be greater than zero")
	ErrWiremanNotFound    = errors.New("wireman not found")
	ErrBillNotFound       = errors.New("bill not found")
)

// Service applies bill lifecycle events to the bill table and the points
// ledger. Every mutation runs the bill write and the ledger compensation in
// one transaction, so neither is ever visible without the other.
type Service struct {
	billRepo    BillRepo
	wiremanRepo WiremanRepo
	ledgerRepo  LedgerRepo
	txManager   pg.TXManager
}

func New(billRepo BillRepo, wiremanRepo WiremanRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		billRepo:    billRepo,
		wiremanRepo: wiremanRepo,
		ledgerRepo:  ledgerRepo,
		txManager:   txManager,
	}
}

// ValidateBillInput gates user input before any storage is touched.
func ValidateBillInput(clientName string, amount decimal.Decimal) error {
	if strings.TrimSpace(clientName) == "" {
		return ErrClientNameRequired
	}
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	return nil
}

func (s *Service) CreateBill(ctx context.Context, wiremanID int, clientName string, amount decimal.Decimal, date time.Time, status string) (*domain.Bill, error) {
	if err := ValidateBillInput(clientName, amount); err != nil {
		return nil, err
	}

	wireman, err := s.wiremanRepo.FindByID(ctx, wiremanID)
	if err != nil {
		zap.L().Error("can't find wireman", zap.Error(err))
		return nil, err
	}
	if wireman == nil {
		return nil, ErrWiremanNotFound
	}

	earned := points.Earned(amount)
	bill := &domain.Bill{
		WiremanID:     wiremanID,
		ClientName:    clientName,
		Amount:        amount,
		Date:          date,
		PaymentStatus: status,
		PointsEarned:  earned,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.billRepo.Save(ctx, bill); err != nil {
			return err
		}
		return s.accrue(ctx, wiremanID, earned)
	})
	if err != nil {
		zap.L().Error("can't create bill", zap.Error(err))
		return nil, err
	}

	zap.L().Info("bill created",
		zap.Int("wireman_id", wiremanID),
		zap.String("points_earned", earned.String()))
	return bill, nil
}

func (s *Service) UpdateBill(ctx context.Context, billID int, clientName string, amount decimal.Decimal, date time.Time, status string) (*domain.Bill, error) {
	if err := ValidateBillInput(clientName, amount); err != nil {
		return nil, err
	}

	bill, err := s.billRepo.FindByID(ctx, billID)
	if err != nil {
		zap.L().Error("can't find bill", zap.Error(err))
		return nil, err
	}
	if bill == nil {
		return nil, ErrBillNotFound
	}

	oldPoints := bill.PointsEarned
	newPoints := points.Earned(amount)
	delta := newPoints.Sub(oldPoints)

	bill.ClientName = clientName
	bill.Amount = amount
	bill.Date = date
	bill.PaymentStatus = status
	bill.PointsEarned = newPoints

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.billRepo.Update(ctx, bill); err != nil {
			return err
		}
		if delta.IsZero() {
			return nil
		}
		return s.adjust(ctx, bill.WiremanID, delta)
	})
	if err != nil {
		zap.L().Error("can't update bill", zap.Error(err))
		return nil, err
	}

	return bill, nil
}

func (s *Service) DeleteBill(ctx context.Context, billID int) error {
	bill, err := s.billRepo.FindByID(ctx, billID)
	if err != nil {
		zap.L().Error("can't find bill", zap.Error(err))
		return err
	}
	if bill == nil {
		return ErrBillNotFound
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.adjust(ctx, bill.WiremanID, bill.PointsEarned.Neg()); err != nil {
			return err
		}
		return s.billRepo.Delete(ctx, billID)
	})
	if err != nil {
		zap.L().Error("can't delete bill", zap.Error(err))
		return err
	}
	return nil
}

// accrue adds earned points to the wireman's ledger, creating the ledger
// record on first accrual.
func (s *Service) accrue(ctx context.Context, wiremanID int, earned decimal.Decimal) error {
	ledger, err := s.ledgerRepo.FindByWiremanIDForUpdate(ctx, wiremanID)
	if err != nil {
		return err
	}
	if ledger == nil {
		_, err := s.ledgerRepo.Create(ctx, &domain.Ledger{
			WiremanID:      wiremanID,
			TotalPoints:    earned,
			RedeemedPoints: decimal.Zero,
			BalancePoints:  earned,
		})
		return err
	}

	ledger.TotalPoints = ledger.TotalPoints.Add(earned)
	ledger.BalancePoints = ledger.BalancePoints.Add(earned)
	return s.ledgerRepo.Update(ctx, ledger)
}

// adjust applies a signed points delta to the wireman's ledger. A missing
// ledger record means there is nothing to compensate and is not an error.
// The subtraction is deliberately unclamped: removing a bill whose points
// were already redeemed drives the balance negative.
func (s *Service) adjust(ctx context.Context, wiremanID int, delta decimal.Decimal) error {
	ledger, err := s.ledgerRepo.FindByWiremanIDForUpdate(ctx, wiremanID)
	if err != nil {
		return err
	}
	if ledger == nil {
		return nil
	}

	ledger.TotalPoints = ledger.TotalPoints.Add(delta)
	ledger.BalancePoints = ledger.BalancePoints.Add(delta)
	return s.ledgerRepo.Update(ctx, ledger)
}

func (s *Service) GetBillsForWireman(ctx context.Context, wiremanID int) ([]domain.Bill, error) {
	bills, err := s.billRepo.FindByWiremanID(ctx, wiremanID)
	if err != nil {
		zap.L().Error("failed to get bills for wireman", zap.Error(err))
		return nil, err
	}
	return bills, nil
}

func (s *Service) GetAllBills(ctx context.Context) ([]domain.Bill, error) {
	bills, err := s.billRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get bills", zap.Error(err))
		return nil, err
	}
	return bills, nil
}

func (s *Service) TotalBilledAmount(ctx context.Context) (decimal.Decimal, error) {
	total, err := s.billRepo.TotalAmount(ctx)
	if err != nil {
		zap.L().Error("failed to get total billed amount", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}
