package billrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/voltwire/referral/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		billID    int
		mockSetup func()
		expectErr bool
		result    *domain.Bill
	}{
		{
			name:   "Existing bill is returned",
			billID: 7,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "wireman_id", "client_name", "amount", "date", "payment_status", "points_earned"}).
					AddRow(7, 1, "Sharma Electricals", decimal.NewFromInt(2500), date, "Paid", decimal.NewFromInt(2))
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, wireman_id, client_name, amount, date, payment_status, points_earned
        FROM bills
        WHERE id = $1
    `)).
					WithArgs(7).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Bill{
				ID:            7,
				WiremanID:     1,
				ClientName:    "Sharma Electricals",
				Amount:        decimal.NewFromInt(2500),
				Date:          date,
				PaymentStatus: "Paid",
				PointsEarned:  decimal.NewFromInt(2),
			},
		},
		{
			name:   "Non-existing bill returns nil",
			billID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, wireman_id, client_name, amount, date, payment_status, points_earned
        FROM bills
        WHERE id = $1
    `)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			billID: 7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, wireman_id, client_name, amount, date, payment_status, points_earned
        FROM bills
        WHERE id = $1
    `)).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.billID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByWiremanID(t *testing.T) {
	repo, mock := NewMock(t)
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "wireman_id", "client_name", "amount", "date", "payment_status", "points_earned"}).
		AddRow(2, 1, "Verma Hardware", decimal.NewFromInt(1800), date, "Paid", decimal.NewFromInt(1)).
		AddRow(1, 1, "Sharma Electricals", decimal.NewFromInt(2500), date.AddDate(0, -1, 0), "Paid", decimal.NewFromInt(2))
	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, wireman_id, client_name, amount, date, payment_status, points_earned
        FROM bills
        WHERE wireman_id = $1
        ORDER BY date DESC
    `)).
		WithArgs(1).
		WillReturnRows(rows)

	bills, err := repo.FindByWiremanID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, bills, 2)
	assert.Equal(t, "Verma Hardware", bills[0].ClientName)
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		bill      *domain.Bill
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully saves bill",
			bill: &domain.Bill{
				WiremanID:     1,
				ClientName:    "Sharma Electricals",
				Amount:        decimal.NewFromInt(2500),
				Date:          date,
				PaymentStatus: "Paid",
				PointsEarned:  decimal.NewFromInt(2),
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO bills (wireman_id, client_name, amount, date, payment_status, points_earned)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `)).
					WithArgs(1, "Sharma Electricals", decimal.NewFromInt(2500), date, "Paid", decimal.NewFromInt(2)).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			bill: &domain.Bill{
				WiremanID:     1,
				ClientName:    "Sharma Electricals",
				Amount:        decimal.NewFromInt(2500),
				Date:          date,
				PaymentStatus: "Paid",
				PointsEarned:  decimal.NewFromInt(2),
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO bills (wireman_id, client_name, amount, date, payment_status, points_earned)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `)).
					WithArgs(1, "Sharma Electricals", decimal.NewFromInt(2500), date, "Paid", decimal.NewFromInt(2)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.Save(context.Background(), tt.bill)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, result.ID)
			}
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`
        DELETE FROM bills
        WHERE id = $1
    `)).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), 7)
	assert.NoError(t, err)
}

func TestRepository_TotalAmount(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  decimal.Decimal
	}{
		{
			name: "Sum over all bills",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT COALESCE(SUM(amount), 0)
        FROM bills
    `)).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(decimal.NewFromInt(36500)))
			},
			expectErr: false,
			expected:  decimal.NewFromInt(36500),
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT COALESCE(SUM(amount), 0)
        FROM bills
    `)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expected:  decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			total, err := repo.TotalAmount(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, tt.expected.Equal(total))
		})
	}
}

func TestRepository_StatsForWireman(t *testing.T) {
	repo, mock := NewMock(t)
	latest := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"count", "coalesce", "max"}).
		AddRow(12, decimal.NewFromInt(36500), &latest)
	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT COUNT(*), COALESCE(SUM(amount), 0), MAX(date)
        FROM bills
        WHERE wireman_id = $1
    `)).
		WithArgs(1).
		WillReturnRows(rows)

	stats, err := repo.StatsForWireman(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 12, stats.TotalBills)
	assert.True(t, stats.TotalBusiness.Equal(decimal.NewFromInt(36500)))
	assert.Equal(t, &latest, stats.LatestBillDate)
}
