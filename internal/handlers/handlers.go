package handlers

import (
	"net/http"

	_ "github.com/voltwire/referral/docs"
	authhandlers "github.com/voltwire/referral/internal/handlers/auth"
	billhandlers "github.com/voltwire/referral/internal/handlers/bills"
	ledgerhandlers "github.com/voltwire/referral/internal/handlers/ledger"
	wiremanhandlers "github.com/voltwire/referral/internal/handlers/wiremen"
	"github.com/voltwire/referral/internal/service"
	"github.com/voltwire/referral/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BillHandler interface {
	CreateBill(w http.ResponseWriter, r *http.Request)
	UpdateBill(w http.ResponseWriter, r *http.Request)
	DeleteBill(w http.ResponseWriter, r *http.Request)
	GetAllBills(w http.ResponseWriter, r *http.Request)
	GetBillsForWireman(w http.ResponseWriter, r *http.Request)
	TotalBilledAmount(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetLedger(w http.ResponseWriter, r *http.Request)
	RedeemSpecific(w http.ResponseWriter, r *http.Request)
	RedeemAll(w http.ResponseWriter, r *http.Request)
	ResetPoints(w http.ResponseWriter, r *http.Request)
}

type WiremanHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	UpdateWireman(w http.ResponseWriter, r *http.Request)
	DeleteWireman(w http.ResponseWriter, r *http.Request)
	GetWireman(w http.ResponseWriter, r *http.Request)
	ListWiremen(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	BillHandler    BillHandler
	LedgerHandler  LedgerHandler
	WiremanHandler WiremanHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		BillHandler:    billhandlers.New(s.BillService),
		LedgerHandler:  ledgerhandlers.New(s.LedgerService),
		WiremanHandler: wiremanhandlers.New(s.WiremanService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/wiremen", func(r chi.Router) {
				r.Post("/", h.WiremanHandler.Register)
				r.Get("/", h.WiremanHandler.ListWiremen)
				r.Get("/leaderboard", h.WiremanHandler.Leaderboard)
				r.Route("/{wiremanID}", func(r chi.Router) {
					r.Get("/", h.WiremanHandler.GetWireman)
					r.Put("/", h.WiremanHandler.UpdateWireman)
					r.Delete("/", h.WiremanHandler.DeleteWireman)
					r.Get("/dashboard", h.WiremanHandler.Dashboard)
					r.Get("/bills", h.BillHandler.GetBillsForWireman)
					r.Route("/ledger", func(r chi.Router) {
						r.Get("/", h.LedgerHandler.GetLedger)
						r.Post("/redeem", h.LedgerHandler.RedeemSpecific)
						r.Post("/redeem-all", h.LedgerHandler.RedeemAll)
						r.Post("/reset", h.LedgerHandler.ResetPoints)
					})
				})
			})
			r.Route("/bills", func(r chi.Router) {
				r.Post("/", h.BillHandler.CreateBill)
				r.Get("/", h.BillHandler.GetAllBills)
				r.Get("/total", h.BillHandler.TotalBilledAmount)
				r.Put("/{billID}", h.BillHandler.UpdateBill)
				r.Delete("/{billID}", h.BillHandler.DeleteBill)
			})
			r.Get("/summary", h.WiremanHandler.Summary)
		})
	})

	return r
}
