package wiremanservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/voltwire/referral/internal/domain"
	"github.com/voltwire/referral/pkg/validate"
)

type Repo interface {
	Create(ctx context.Context, wireman *domain.Wireman) (*domain.Wireman, error)
	Update(ctx context.Context, wireman *domain.Wireman) error
	Delete(ctx context.Context, wiremanID int) error
	FindByID(ctx context.Context, wiremanID int) (*domain.Wireman, error)
	FindAll(ctx context.Context) ([]domain.Wireman, error)
	Count(ctx context.Context) (int, error)
	FilterByBalancePoints(ctx context.Context, min, max decimal.Decimal) ([]domain.WiremanValue, error)
	FilterByBilledAmount(ctx context.Context, min, max decimal.Decimal) ([]domain.WiremanValue, error)
	Leaderboard(ctx context.Context, category string, limit int) ([]domain.WiremanValue, error)
}

type BillStatsRepo interface {
	CountAll(ctx context.Context) (int, error)
	TotalAmount(ctx context.Context) (decimal.Decimal, error)
	StatsForWireman(ctx context.Context, wiremanID int) (*domain.BillStats, error)
}

type LedgerRepo interface {
	FindByWiremanID(ctx context.Context, wiremanID int) (*domain.Ledger, error)
}

// List filter keys.
const (
	FilterBalancePoints = "balance_points"
	FilterBilledAmount  = "total_bill_amount"
)

// Leaderboard categories.
const (
	CategoryBilledAmount  = "total_bill_amount"
	CategoryBillCount     = "number_of_bills"
	CategoryBalancePoints = "balance_points"
	CategoryTotalPoints   = "total_points_scored"
)

var (
	ErrNameRequired       = errors.New("wireman name is required")
	ErrInvalidContactInfo = errors.New("contact info must be a valid phone number")
	ErrWiremanNotFound    = errors.New("wireman not found")
	ErrUnknownFilter      = errors.New("unknown filter key")
	ErrUnknownCategory    = errors.New("unknown leaderboard category")
)

type Dashboard struct {
	Wireman        domain.Wireman
	TotalBills     int
	TotalBusiness  decimal.Decimal
	LatestBillDate *time.Time
	TotalPoints    decimal.Decimal
	BalancePoints  decimal.Decimal
}

type Summary struct {
	TotalWiremen  int
	TotalBills    int
	TotalBusiness decimal.Decimal
}

type Service struct {
	repo       Repo
	billRepo   BillStatsRepo
	ledgerRepo LedgerRepo
}

func New(repo Repo, billRepo BillStatsRepo, ledgerRepo LedgerRepo) *Service {
	return &Service{
		repo:       repo,
		billRepo:   billRepo,
		ledgerRepo: ledgerRepo,
	}
}

func validateWireman(name, contactInfo string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if contactInfo != "" && !validate.IsPhone(contactInfo) {
		return ErrInvalidContactInfo
	}
	return nil
}

func (s *Service) Register(ctx context.Context, name, contactInfo string) (*domain.Wireman, error) {
	if err := validateWireman(name, contactInfo); err != nil {
		return nil, err
	}

	wireman := &domain.Wireman{
		Name:           name,
		ContactInfo:    contactInfo,
		DateRegistered: time.Now(),
	}
	created, err := s.repo.Create(ctx, wireman)
	if err != nil {
		zap.L().Error("can't register wireman", zap.Error(err))
		return nil, err
	}

	zap.L().Info("wireman registered", zap.String("name", name))
	return created, nil
}

func (s *Service) UpdateWireman(ctx context.Context, wiremanID int, name, contactInfo string) (*domain.Wireman, error) {
	if err := validateWireman(name, contactInfo); err != nil {
		return nil, err
	}

	wireman, err := s.repo.FindByID(ctx, wiremanID)
	if err != nil {
		zap.L().Error("can't find wireman", zap.Error(err))
		return nil, err
	}
	if wireman == nil {
		return nil, ErrWiremanNotFound
	}

	wireman.Name = name
	wireman.ContactInfo = contactInfo
	if err := s.repo.Update(ctx, wireman); err != nil {
		zap.L().Error("can't update wireman", zap.Error(err))
		return nil, err
	}
	return wireman, nil
}

// DeleteWireman removes the wireman together with all owned bills and the
// ledger record.
func (s *Service) DeleteWireman(ctx context.Context, wiremanID int) error {
	wireman, err := s.repo.FindByID(ctx, wiremanID)
	if err != nil {
		zap.L().Error("can't find wireman", zap.Error(err))
		return err
	}
	if wireman == nil {
		return ErrWiremanNotFound
	}

	if err := s.repo.Delete(ctx, wiremanID); err != nil {
		zap.L().Error("can't delete wireman", zap.Error(err))
		return err
	}

	zap.L().Info("wireman deleted", zap.Int("wireman_id", wiremanID))
	return nil
}

func (s *Service) GetWireman(ctx context.Context, wiremanID int) (*domain.Wireman, error) {
	wireman, err := s.repo.FindByID(ctx, wiremanID)
	if err != nil {
		zap.L().Error("can't find wireman", zap.Error(err))
		return nil, err
	}
	if wireman == nil {
		return nil, ErrWiremanNotFound
	}
	return wireman, nil
}

func (s *Service) ListWiremen(ctx context.Context) ([]domain.Wireman, error) {
	wiremen, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to list wiremen", zap.Error(err))
		return nil, err
	}
	return wiremen, nil
}

func (s *Service) FilterWiremen(ctx context.Context, filterBy string, min, max decimal.Decimal) ([]domain.WiremanValue, error) {
	switch filterBy {
	case FilterBalancePoints:
		return s.repo.FilterByBalancePoints(ctx, min, max)
	case FilterBilledAmount:
		return s.repo.FilterByBilledAmount(ctx, min, max)
	default:
		return nil, ErrUnknownFilter
	}
}

func (s *Service) Leaderboard(ctx context.Context, category string, limit int) ([]domain.WiremanValue, error) {
	switch category {
	case CategoryBilledAmount, CategoryBillCount, CategoryBalancePoints, CategoryTotalPoints:
	default:
		return nil, ErrUnknownCategory
	}

	leaders, err := s.repo.Leaderboard(ctx, category, limit)
	if err != nil {
		zap.L().Error("failed to build leaderboard", zap.Error(err))
		return nil, err
	}
	return leaders, nil
}

func (s *Service) Dashboard(ctx context.Context, wiremanID int) (*Dashboard, error) {
	wireman, err := s.repo.FindByID(ctx, wiremanID)
	if err != nil {
		zap.L().Error("can't find wireman", zap.Error(err))
		return nil, err
	}
	if wireman == nil {
		return nil, ErrWiremanNotFound
	}

	stats, err := s.billRepo.StatsForWireman(ctx, wiremanID)
	if err != nil {
		zap.L().Error("failed to get bill stats", zap.Error(err))
		return nil, err
	}

	dashboard := &Dashboard{
		Wireman:        *wireman,
		TotalBills:     stats.TotalBills,
		TotalBusiness:  stats.TotalBusiness,
		LatestBillDate: stats.LatestBillDate,
		TotalPoints:    decimal.Zero,
		BalancePoints:  decimal.Zero,
	}

	ledger, err := s.ledgerRepo.FindByWiremanID(ctx, wiremanID)
	if err != nil {
		zap.L().Error("failed to get ledger", zap.Error(err))
		return nil, err
	}
	if ledger != nil {
		dashboard.TotalPoints = ledger.TotalPoints
		dashboard.BalancePoints = ledger.BalancePoints
	}

	return dashboard, nil
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	totalWiremen, err := s.repo.Count(ctx)
	if err != nil {
		zap.L().Error("failed to count wiremen", zap.Error(err))
		return nil, err
	}
	totalBills, err := s.billRepo.CountAll(ctx)
	if err != nil {
		zap.L().Error("failed to count bills", zap.Error(err))
		return nil, err
	}
	totalBusiness, err := s.billRepo.TotalAmount(ctx)
	if err != nil {
		zap.L().Error("failed to sum bill amounts", zap.Error(err))
		return nil, err
	}

	return &Summary{
		TotalWiremen:  totalWiremen,
		TotalBills:    totalBills,
		TotalBusiness: totalBusiness,
	}, nil
}
