package bills

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/voltwire/referral/internal/domain"
	"github.com/voltwire/referral/internal/dto"
	billservice "github.com/voltwire/referral/internal/service/billservice"
	"github.com/voltwire/referral/pkg/utils"
)

const dateLayout = "2006-01-02"

type Service interface {
	CreateBill(ctx context.Context, wiremanID int, clientName string, amount decimal.Decimal, date time.Time, status string) (*domain.Bill, error)
	UpdateBill(ctx context.Context, billID int, clientName string, amount decimal.Decimal, date time.Time, status string) (*domain.Bill, error)
	DeleteBill(ctx context.Context, billID int) error
	GetBillsForWireman(ctx context.Context, wiremanID int) ([]domain.Bill, error)
	GetAllBills(ctx context.Context) ([]domain.Bill, error)
	TotalBilledAmount(ctx context.Context) (decimal.Decimal, error)
}

type BillHandler struct {
	billService Service
}

func New(billService Service) *BillHandler {
	return &BillHandler{
		billService: billService,
	}
}

// CreateBill godoc
//
//	@Summary		Submit a new bill
//	@Description	Record a client bill for a wireman and accrue loyalty points in the same transaction
//	@Tags			Bills
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBillRequestDTO	true	"Bill payload"
//	@Success		201		{object}	dto.CreateBillResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input"
//	@Failure		404		{object}	utils.Response	"Wireman not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bills [post]
func (h *BillHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBillRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	bill, err := h.billService.CreateBill(r.Context(), req.WiremanID, req.ClientName, req.Amount, date, req.PaymentStatus)
	if err != nil {
		switch {
		case errors.Is(err, billservice.ErrClientNameRequired), errors.Is(err, billservice.ErrAmountNotPositive):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, billservice.ErrWiremanNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateBillResponseDTO{
		Bill:    toBillDTO(bill),
		Message: fmt.Sprintf("Bill submitted successfully! %s points earned.", bill.PointsEarned),
	})
}

// UpdateBill godoc
//
//	@Summary		Update a bill
//	@Description	Overwrite a bill's fields, recompute its points and apply the points delta to the wireman's ledger
//	@Tags			Bills
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			billID	path		int						true	"Bill ID"
//	@Param			request	body		dto.UpdateBillRequestDTO	true	"Bill payload"
//	@Success		200		{object}	dto.BillResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input"
//	@Failure		404		{object}	utils.Response	"Bill not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bills/{billID} [put]
func (h *BillHandler) UpdateBill(w http.ResponseWriter, r *http.Request) {
	billID, err := strconv.Atoi(chi.URLParam(r, "billID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bill id")
		return
	}

	var req dto.UpdateBillRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	bill, err := h.billService.UpdateBill(r.Context(), billID, req.ClientName, req.Amount, date, req.PaymentStatus)
	if err != nil {
		switch {
		case errors.Is(err, billservice.ErrClientNameRequired), errors.Is(err, billservice.ErrAmountNotPositive):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, billservice.ErrBillNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toBillDTO(bill))
}

// DeleteBill godoc
//
//	@Summary		Delete a bill
//	@Description	Remove a bill and subtract its points from the wireman's ledger in the same transaction
//	@Tags			Bills
//	@Security		BearerAuth
//	@Produce		json
//	@Param			billID	path		int	true	"Bill ID"
//	@Success		200		{object}	utils.Response	"Bill deleted"
//	@Failure		400		{object}	utils.Response	"Invalid bill id"
//	@Failure		404		{object}	utils.Response	"Bill not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bills/{billID} [delete]
func (h *BillHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	billID, err := strconv.Atoi(chi.URLParam(r, "billID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bill id")
		return
	}

	if err := h.billService.DeleteBill(r.Context(), billID); err != nil {
		switch {
		case errors.Is(err, billservice.ErrBillNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Bill deleted successfully"})
}

// GetAllBills godoc
//
//	@Summary		Get all bills
//	@Description	List every bill ordered by date descending
//	@Tags			Bills
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.BillResponseDTO
//	@Success		204	{object}	utils.Response	"No bills recorded"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bills [get]
func (h *BillHandler) GetAllBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.billService.GetAllBills(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(bills) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No bills recorded")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toBillDTOs(bills))
}

// GetBillsForWireman godoc
//
//	@Summary		Get bills for a wireman
//	@Description	List a wireman's bills ordered by date descending
//	@Tags			Bills
//	@Security		BearerAuth
//	@Produce		json
//	@Param			wiremanID	path		int	true	"Wireman ID"
//	@Success		200			{array}		dto.BillResponseDTO
//	@Success		204			{object}	utils.Response	"No bills recorded"
//	@Failure		400			{object}	utils.Response	"Invalid wireman id"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wiremen/{wiremanID}/bills [get]
func (h *BillHandler) GetBillsForWireman(w http.ResponseWriter, r *http.Request) {
	wiremanID, err := strconv.Atoi(chi.URLParam(r, "wiremanID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wireman id")
		return
	}

	bills, err := h.billService.GetBillsForWireman(r.Context(), wiremanID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(bills) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No bills recorded")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toBillDTOs(bills))
}

// TotalBilledAmount godoc
//
//	@Summary		Get total billed amount
//	@Description	Sum of bill amounts across all wiremen
//	@Tags			Bills
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TotalBilledResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bills/total [get]
func (h *BillHandler) TotalBilledAmount(w http.ResponseWriter, r *http.Request) {
	total, err := h.billService.TotalBilledAmount(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TotalBilledResponseDTO{TotalAmount: total})
}

func toBillDTO(bill *domain.Bill) dto.BillResponseDTO {
	return dto.BillResponseDTO{
		ID:            bill.ID,
		WiremanID:     bill.WiremanID,
		ClientName:    bill.ClientName,
		Amount:        bill.Amount,
		Date:          bill.Date.Format(dateLayout),
		PaymentStatus: bill.PaymentStatus,
		PointsEarned:  bill.PointsEarned,
	}
}

func toBillDTOs(bills []domain.Bill) []dto.BillResponseDTO {
	response := make([]dto.BillResponseDTO, len(bills))
	for i := range bills {
		response[i] = toBillDTO(&bills[i])
	}
	return response
}
