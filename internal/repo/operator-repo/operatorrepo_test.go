package operatorrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
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

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.Operator
	}{
		{
			name:  "Existing operator is returned",
			login: "testoperator",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash"}).
					AddRow(1, "testoperator", "hashedpassword")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login, password_hash FROM operators WHERE login = $1`)).
					WithArgs("testoperator").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Operator{
				ID:           1,
				Login:        "testoperator",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name:  "Non-existing operator returns nil",
			login: "ghost",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login, password_hash FROM operators WHERE login = $1`)).
					WithArgs("ghost").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			login: "testoperator",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login, password_hash FROM operators WHERE login = $1`)).
					WithArgs("testoperator").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		operator  *domain.Operator
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates operator",
			operator: &domain.Operator{
				Login:        "testoperator",
				PasswordHash: "hashedpassword",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO operators (login, password_hash)
			VALUES ($1, $2)
			RETURNING id
		`)).
					WithArgs("testoperator", "hashedpassword").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			operator: &domain.Operator{
				Login:        "testoperator",
				PasswordHash: "hashedpassword",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO operators (login, password_hash)
			VALUES ($1, $2)
			RETURNING id
		`)).
					WithArgs("testoperator", "hashedpassword").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.Create(context.Background(), tt.operator)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
			}
		})
	}
}
