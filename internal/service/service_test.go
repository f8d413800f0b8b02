package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/voltwire/referral/internal/pg"
	"github.com/voltwire/referral/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB)
	txManager := pg.NewMockTXManager(ctrl)

	services := New(repos, txManager)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.BillService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.WiremanService)
}
