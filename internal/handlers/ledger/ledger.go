package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/voltwire/referral/internal/domain"
	"github.com/voltwire/referral/internal/dto"
	ledgerservice "github.com/voltwire/referral/internal/service/ledgerservice"
	"github.com/voltwire/referral/pkg/utils"
)

type Service interface {
	GetLedger(ctx context.Context, wiremanID int) (*domain.Ledger, error)
	RedeemSpecific(ctx context.Context, wiremanID int, pts decimal.Decimal) error
	RedeemAll(ctx context.Context, wiremanID int) error
	ResetPoints(ctx context.Context, wiremanID int) error
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// GetLedger godoc
//
//	@Summary		Get wireman points ledger
//	@Description	Retrieve total, redeemed and balance points for a wireman
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			wiremanID	path		int	true	"Wireman ID"
//	@Success		200			{object}	dto.LedgerResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid wireman id"
//	@Failure		404			{object}	utils.Response	"No points record"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wiremen/{wiremanID}/ledger [get]
func (h *LedgerHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	wiremanID, err := strconv.Atoi(chi.URLParam(r, "wiremanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wireman id")
		return
	}

	ledger, err := h.ledgerService.GetLedger(r.Context(), wiremanID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if ledger == nil {
		utils.RespondWithError(w, http.StatusNotFound, "No points record found for this wireman")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.LedgerResponseDTO{
		WiremanID:      ledger.WiremanID,
		TotalPoints:    ledger.TotalPoints,
		RedeemedPoints: ledger.RedeemedPoints,
		BalancePoints:  ledger.BalancePoints,
	})
}

// RedeemSpecific godoc
//
//	@Summary		Redeem points
//	@Description	Redeem a specific number of points from the wireman's balance
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			wiremanID	path		int					true	"Wireman ID"
//	@Param			request		body		dto.RedeemRequestDTO	true	"Points to redeem"
//	@Success		200			{object}	utils.Response	"Points redeemed"
//	@Failure		400			{object}	utils.Response	"Invalid input"
//	@Failure		402			{object}	utils.Response	"Redemption exceeds balance"
//	@Failure		404			{object}	utils.Response	"No points record"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wiremen/{wiremanID}/ledger/redeem [post]
func (h *LedgerHandler) RedeemSpecific(w http.ResponseWriter, r *http.Request) {
	wiremanID, err := strconv.Atoi(chi.URLParam(r, "wiremanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wireman id")
		return
	}

	var req dto.RedeemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.ledgerService.RedeemSpecific(r.Context(), wiremanID, req.Points)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidRedemption):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, ledgerservice.ErrLedgerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Points redeemed successfully"})
}

// RedeemAll godoc
//
//	@Summary		Redeem all points
//	@Description	Redeem the wireman's entire points balance
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			wiremanID	path		int	true	"Wireman ID"
//	@Success		200			{object}	utils.Response	"Points redeemed"
//	@Failure		400			{object}	utils.Response	"Invalid wireman id"
//	@Failure		404			{object}	utils.Response	"No points record"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wiremen/{wiremanID}/ledger/redeem-all [post]
func (h *LedgerHandler) RedeemAll(w http.ResponseWriter, r *http.Request) {
	wiremanID, err := strconv.Atoi(chi.URLParam(r, "wiremanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wireman id")
		return
	}

	if err := h.ledgerService.RedeemAll(r.Context(), wiremanID); err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrLedgerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "All points redeemed successfully"})
}

// ResetPoints godoc
//
//	@Summary		Reset points ledger
//	@Description	Zero the wireman's entire points ledger. Irreversible.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			wiremanID	path		int	true	"Wireman ID"
//	@Success		200			{object}	utils.Response	"Points reset"
//	@Failure		400			{object}	utils.Response	"Invalid wireman id"
//	@Failure		404			{object}	utils.Response	"No points record"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wiremen/{wiremanID}/ledger/reset [post]
func (h *LedgerHandler) ResetPoints(w http.ResponseWriter, r *http.Request) {
	wiremanID, err := strconv.Atoi(chi.URLParam(r, "wiremanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wireman id")
		return
	}

	if err := h.ledgerService.ResetPoints(r.Context(), wiremanID); err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrLedgerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Points reset successfully"})
}
