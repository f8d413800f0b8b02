package wiremen

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
	wiremanservice "github.com/voltwire/referral/internal/service/wiremanservice"
	"github.com/voltwire/referral/pkg/utils"
)

const (
	dateLayout       = "2006-01-02"
	defaultLeaders   = 10
	maxLeaders       = 100
	defaultFilterMax = "10000"
)

type Service interface {
	Register(ctx context.Context, name, contactInfo string) (*domain.Wireman, error)
	UpdateWireman(ctx context.Context, wiremanID int, name, contactInfo string) (*domain.Wireman, error)
	DeleteWireman(ctx context.Context, wiremanID int) error
	GetWireman(ctx context.Context, wiremanID int) (*domain.Wireman, error)
	ListWiremen(ctx context.Context) ([]domain.Wireman, error)
	FilterWiremen(ctx context.Context, filterBy string, min, max decimal.Decimal) ([]domain.WiremanValue, error)
	Leaderboard(ctx context.Context, category string, limit int) ([]domain.WiremanValue, error)
	Dashboard(ctx context.Context, wiremanID int) (*wiremanservice.Dashboard, error)
	Summary(ctx context.Context) (*wiremanservice.Summary, error)
}

type WiremanHandler struct {
	wiremanService Service
}

func New(wiremanService Service) *WiremanHandler {
	return &WiremanHandler{
		wiremanService: wiremanService,
	}
}

// Register godoc
//
//	@Summary		Register a new wireman
//	@Description	Create a wireman record; the points ledger is created lazily on the first bill
//	@Tags			Wiremen
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WiremanRequestDTO	true	"Wireman payload"
//	@Success		201		{object}	dto.WiremanResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wiremen [post]
func (h *WiremanHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.WiremanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	wireman, err := h.wiremanService.Register(r.Context(), req.Name, req.ContactInfo)
	if err != nil {
		switch {
		case errors.Is(err, wiremanservice.ErrNameRequired), errors.Is(err, wiremanservice.ErrInvalidContactInfo):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, toWiremanDTO(wireman))
}

// UpdateWireman godoc
//
//	@Summary		Update a wireman
//	@Description	Change a wireman's name or contact info
//	@Tags			Wiremen
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			wiremanID	path		int					true	"Wireman ID"
//	@Param			request		body		dto.WiremanRequestDTO	true	"Wireman payload"
//	@Success		200			{object}	dto.WiremanResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid input"
//	@Failure		404			{object}	utils.Response	"Wireman not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wiremen/{wiremanID} [put]
func (h *WiremanHandler) UpdateWireman(w http.ResponseWriter, r *http.Request) {
	wiremanID, err := strconv.Atoi(chi.URLParam(r, "wiremanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wireman id")
		return
	}

	var req dto.WiremanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	wireman, err := h.wiremanService.UpdateWireman(r.Context(), wiremanID, req.Name, req.ContactInfo)
	if err != nil {
		switch {
		case errors.Is(err, wiremanservice.ErrNameRequired), errors.Is(err, wiremanservice.ErrInvalidContactInfo):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, wiremanservice.ErrWiremanNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toWiremanDTO(wireman))
}

// DeleteWireman godoc
//
//	@Summary		Delete a wireman
//	@Description	Remove a wireman together with all associated bills and the points record
//	@Tags			Wiremen
//	@Security		BearerAuth
//	@Produce		json
//	@Param			wiremanID	path		int	true	"Wireman ID"
//	@Success		200			{object}	utils.Response	"Wireman deleted"
//	@Failure		400			{object}	utils.Response	"Invalid wireman id"
//	@Failure		404			{object}	utils.Response	"Wireman not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wiremen/{wiremanID} [delete]
func (h *WiremanHandler) DeleteWireman(w http.ResponseWriter, r *http.Request) {
	wiremanID, err := strconv.Atoi(chi.URLParam(r, "wiremanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wireman id")
		return
	}

	if err := h.wiremanService.DeleteWireman(r.Context(), wiremanID); err != nil {
		switch {
		case errors.Is(err, wiremanservice.ErrWiremanNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Wireman deleted successfully"})
}

// GetWireman godoc
//
//	@Summary		Get a wireman
//	@Description	Fetch a single wireman by id
//	@Tags			Wiremen
//	@Security		BearerAuth
//	@Produce		json
//	@Param			wiremanID	path		int	true	"Wireman ID"
//	@Success		200			{object}	dto.WiremanResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid wireman id"
//	@Failure		404			{object}	utils.Response	"Wireman not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wiremen/{wiremanID} [get]
func (h *WiremanHandler) GetWireman(w http.ResponseWriter, r *http.Request) {
	wiremanID, err := strconv.Atoi(chi.URLParam(r, "wiremanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wireman id")
		return
	}

	wireman, err := h.wiremanService.GetWireman(r.Context(), wiremanID)
	if err != nil {
		switch {
		case errors.Is(err, wiremanservice.ErrWiremanNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toWiremanDTO(wireman))
}

// ListWiremen godoc
//
//	@Summary		List wiremen
//	@Description	List all wiremen, or filter by balance points / total billed amount range
//	@Tags			Wiremen
//	@Security		BearerAuth
//	@Produce		json
//	@Param			filter_by	query		string	false	"balance_points or total_bill_amount"
//	@Param			min			query		string	false	"Minimum value"
//	@Param			max			query		string	false	"Maximum value"
//	@Success		200			{array}		dto.WiremanResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid filter"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wiremen [get]
func (h *WiremanHandler) ListWiremen(w http.ResponseWriter, r *http.Request) {
	filterBy := r.URL.Query().Get("filter_by")
	if filterBy == "" {
		wiremen, err := h.wiremanService.ListWiremen(r.Context())
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		response := make([]dto.WiremanResponseDTO, len(wiremen))
		for i := range wiremen {
			response[i] = toWiremanDTO(&wiremen[i])
		}
		utils.RespondWithJSON(w, http.StatusOK, response)
		return
	}

	min, err := parseDecimalParam(r, "min", "0")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid min value")
		return
	}
	max, err := parseDecimalParam(r, "max", defaultFilterMax)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid max value")
		return
	}

	values, err := h.wiremanService.FilterWiremen(r.Context(), filterBy, min, max)
	if err != nil {
		switch {
		case errors.Is(err, wiremanservice.ErrUnknownFilter):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := make([]dto.WiremanValueDTO, len(values))
	for i, v := range values {
		response[i] = dto.WiremanValueDTO{
			ID:    v.Wireman.ID,
			Name:  v.Wireman.Name,
			Value: v.Value,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Leaderboard godoc
//
//	@Summary		Wiremen leaderboard
//	@Description	Rank wiremen by billed amount, bill count, balance points or total points
//	@Tags			Wiremen
//	@Security		BearerAuth
//	@Produce		json
//	@Param			category	query		string	false	"total_bill_amount, number_of_bills, balance_points or total_points_scored"
//	@Param			limit		query		int		false	"Max entries (default 10)"
//	@Success		200			{array}		dto.LeaderboardEntryDTO
//	@Failure		400			{object}	utils.Response	"Unknown category"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wiremen/leaderboard [get]
func (h *WiremanHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = wiremanservice.CategoryBilledAmount
	}

	limit := defaultLeaders
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxLeaders {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	leaders, err := h.wiremanService.Leaderboard(r.Context(), category, limit)
	if err != nil {
		switch {
		case errors.Is(err, wiremanservice.ErrUnknownCategory):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := make([]dto.LeaderboardEntryDTO, len(leaders))
	for i, l := range leaders {
		response[i] = dto.LeaderboardEntryDTO{
			Rank:  i + 1,
			Name:  l.Wireman.Name,
			Value: l.Value,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Dashboard godoc
//
//	@Summary		Wireman dashboard
//	@Description	Bill and points aggregates for a single wireman
//	@Tags			Wiremen
//	@Security		BearerAuth
//	@Produce		json
//	@Param			wiremanID	path		int	true	"Wireman ID"
//	@Success		200			{object}	dto.DashboardResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid wireman id"
//	@Failure		404			{object}	utils.Response	"Wireman not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wiremen/{wiremanID}/dashboard [get]
func (h *WiremanHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	wiremanID, err := strconv.Atoi(chi.URLParam(r, "wiremanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wireman id")
		return
	}

	dashboard, err := h.wiremanService.Dashboard(r.Context(), wiremanID)
	if err != nil {
		switch {
		case errors.Is(err, wiremanservice.ErrWiremanNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := dto.DashboardResponseDTO{
		Wireman:       toWiremanDTO(&dashboard.Wireman),
		TotalBills:    dashboard.TotalBills,
		TotalBusiness: dashboard.TotalBusiness,
		TotalPoints:   dashboard.TotalPoints,
		BalancePoints: dashboard.BalancePoints,
	}
	if dashboard.LatestBillDate != nil {
		response.LatestBillDate = dashboard.LatestBillDate.Format(dateLayout)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Summary godoc
//
//	@Summary		Global summary
//	@Description	Wireman count, bill count and total billed amount across the system
//	@Tags			Wiremen
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SummaryResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/summary [get]
func (h *WiremanHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.wiremanService.Summary(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SummaryResponseDTO{
		TotalWiremen:  summary.TotalWiremen,
		TotalBills:    summary.TotalBills,
		TotalBusiness: summary.TotalBusiness,
	})
}

func parseDecimalParam(r *http.Request, name, fallback string) (decimal.Decimal, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		raw = fallback
	}
	return decimal.NewFromString(raw)
}

func toWiremanDTO(wireman *domain.Wireman) dto.WiremanResponseDTO {
	return dto.WiremanResponseDTO{
		ID:             wireman.ID,
		Name:           wireman.Name,
		ContactInfo:    wireman.ContactInfo,
		DateRegistered: wireman.DateRegistered.Format(dateLayout),
	}
}
