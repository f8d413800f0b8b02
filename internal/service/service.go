package service

import (
	"github.com/voltwire/referral/internal/handlers/auth"
	"github.com/voltwire/referral/internal/handlers/bills"
	"github.com/voltwire/referral/internal/handlers/ledger"
	"github.com/voltwire/referral/internal/handlers/wiremen"

	pkgauth "github.com/voltwire/referral/pkg/auth"

	"github.com/voltwire/referral/internal/pg"
	"github.com/voltwire/referral/internal/repo"
	authservice "github.com/voltwire/referral/internal/service/authservice"
	billservice "github.com/voltwire/referral/internal/service/billservice"
	ledgerservice "github.com/voltwire/referral/internal/service/ledgerservice"
	wiremanservice "github.com/voltwire/referral/internal/service/wiremanservice"
)

type Services struct {
	AuthService    auth.Service
	BillService    bills.Service
	LedgerService  ledger.Service
	WiremanService wiremen.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	billService := billservice.New(repo.BillRepo, repo.WiremanRepo, repo.LedgerRepo, txManager)
	ledgerService := ledgerservice.New(repo.LedgerRepo, txManager)
	wiremanService := wiremanservice.New(repo.WiremanRepo, repo.BillRepo, repo.LedgerRepo)
	authService := authservice.New(repo.OperatorRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		BillService:    billService,
		LedgerService:  ledgerService,
		WiremanService: wiremanService,
	}
}
