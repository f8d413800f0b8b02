package repo

import (
	"github.com/voltwire/referral/internal/pg"
	billrepo "github.com/voltwire/referral/internal/repo/bill-repo"
	ledgerrepo "github.com/voltwire/referral/internal/repo/ledger-repo"
	operatorrepo "github.com/voltwire/referral/internal/repo/operator-repo"
	wiremanrepo "github.com/voltwire/referral/internal/repo/wireman-repo"
)

type Repositories struct {
	OperatorRepo *operatorrepo.Repository
	WiremanRepo  *wiremanrepo.Repository
	BillRepo     *billrepo.Repository
	LedgerRepo   *ledgerrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		OperatorRepo: operatorrepo.New(conn),
		WiremanRepo:  wiremanrepo.New(conn),
		BillRepo:     billrepo.New(conn),
		LedgerRepo:   ledgerrepo.New(conn),
	}
}
