package bills

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/voltwire/referral/internal/domain"
	"github.com/voltwire/referral/internal/dto"
	billservice "github.com/voltwire/referral/internal/service/billservice"
)

func NewMock(t *testing.T) (*BillHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateBillHandler(t *testing.T) {
	handler, service := NewMock(t)
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"wireman_id":1,"client_name":"Sharma Electricals","amount":"2500.00","date":"2024-06-15","payment_status":"Paid"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateBill(gomock.Any(), 1, "Sharma Electricals", decimal.RequireFromString("2500.00"), date, "Paid").
					Return(&domain.Bill{
						ID:            7,
						WiremanID:     1,
						ClientName:    "Sharma Electricals",
						Amount:        decimal.RequireFromString("2500.00"),
						Date:          date,
						PaymentStatus: "Paid",
						PointsEarned:  decimal.NewFromInt(2),
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"wireman_id":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Invalid date",
			body:          `{"wireman_id":1,"client_name":"Sharma Electricals","amount":"2500.00","date":"15-06-2024","payment_status":"Paid"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid date",
		},
		{
			name: "Amount not positive",
			body: `{"wireman_id":1,"client_name":"Sharma Electricals","amount":"0","date":"2024-06-15","payment_status":"Paid"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateBill(gomock.Any(), 1, "Sharma Electricals", decimal.RequireFromString("0"), date, "Paid").
					Return(nil, billservice.ErrAmountNotPositive)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "bill amount must be greater than zero",
		},
		{
			name: "Wireman not found",
			body: `{"wireman_id":99,"client_name":"Sharma Electricals","amount":"2500.00","date":"2024-06-15","payment_status":"Paid"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateBill(gomock.Any(), 99, "Sharma Electricals", decimal.RequireFromString("2500.00"), date, "Paid").
					Return(nil, billservice.ErrWiremanNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "wireman not found",
		},
		{
			name: "Internal server error",
			body: `{"wireman_id":1,"client_name":"Sharma Electricals","amount":"2500.00","date":"2024-06-15","payment_status":"Paid"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateBill(gomock.Any(), 1, "Sharma Electricals", decimal.RequireFromString("2500.00"), date, "Paid").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/bills", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.CreateBill(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.CreateBillResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 7, body.Bill.ID)
				assert.Contains(t, body.Message, "2 points earned")
			}
		})
	}
}

func TestUpdateBillHandler(t *testing.T) {
	handler, service := NewMock(t)
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		billID        string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Successful update",
			billID: "7",
			body:   `{"client_name":"Sharma Electricals","amount":"500.00","date":"2024-06-15","payment_status":"Partially Paid"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateBill(gomock.Any(), 7, "Sharma Electricals", decimal.RequireFromString("500.00"), date, "Partially Paid").
					Return(&domain.Bill{
						ID:            7,
						WiremanID:     1,
						ClientName:    "Sharma Electricals",
						Amount:        decimal.RequireFromString("500.00"),
						Date:          date,
						PaymentStatus: "Partially Paid",
						PointsEarned:  decimal.Zero,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid bill id",
			billID:        "abc",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid bill id",
		},
		{
			name:   "Bill not found",
			billID: "99",
			body:   `{"client_name":"Sharma Electricals","amount":"500.00","date":"2024-06-15","payment_status":"Paid"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateBill(gomock.Any(), 99, "Sharma Electricals", decimal.RequireFromString("500.00"), date, "Paid").
					Return(nil, billservice.ErrBillNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "bill not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPut, "/api/bills/"+tt.billID, bytes.NewBufferString(tt.body))
			r = withURLParam(r, "billID", tt.billID)
			w := httptest.NewRecorder()

			handler.UpdateBill(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestDeleteBillHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		billID        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Successful delete",
			billID: "7",
			prepareMock: func() {
				service.EXPECT().DeleteBill(gomock.Any(), 7).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid bill id",
			billID:        "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid bill id",
		},
		{
			name:   "Bill not found",
			billID: "99",
			prepareMock: func() {
				service.EXPECT().DeleteBill(gomock.Any(), 99).Return(billservice.ErrBillNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "bill not found",
		},
		{
			name:   "Internal server error",
			billID: "7",
			prepareMock: func() {
				service.EXPECT().DeleteBill(gomock.Any(), 7).Return(errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodDelete, "/api/bills/"+tt.billID, nil)
			r = withURLParam(r, "billID", tt.billID)
			w := httptest.NewRecorder()

			handler.DeleteBill(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetAllBillsHandler(t *testing.T) {
	handler, service := NewMock(t)
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetAllBills(gomock.Any()).Return([]domain.Bill{
					{
						ID:            1,
						WiremanID:     1,
						ClientName:    "Sharma Electricals",
						Amount:        decimal.NewFromInt(2500),
						Date:          date,
						PaymentStatus: "Paid",
						PointsEarned:  decimal.NewFromInt(2),
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "No bills",
			prepareMock: func() {
				service.EXPECT().GetAllBills(gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetAllBills(gomock.Any()).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/bills", nil)
			w := httptest.NewRecorder()

			handler.GetAllBills(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.BillResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
				assert.Equal(t, "2024-06-15", body[0].Date)
			}
		})
	}
}

func TestGetBillsForWiremanHandler(t *testing.T) {
	handler, service := NewMock(t)
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		wiremanID    string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:      "Successful retrieval",
			wiremanID: "1",
			prepareMock: func() {
				service.EXPECT().GetBillsForWireman(gomock.Any(), 1).Return([]domain.Bill{
					{ID: 1, WiremanID: 1, ClientName: "Sharma Electricals", Amount: decimal.NewFromInt(2500), Date: date, PointsEarned: decimal.NewFromInt(2)},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid wireman id",
			wiremanID:    "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "No bills",
			wiremanID: "2",
			prepareMock: func() {
				service.EXPECT().GetBillsForWireman(gomock.Any(), 2).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/wiremen/"+tt.wiremanID+"/bills", nil)
			r = withURLParam(r, "wiremanID", tt.wiremanID)
			w := httptest.NewRecorder()

			handler.GetBillsForWireman(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestTotalBilledAmountHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().TotalBilledAmount(gomock.Any()).Return(decimal.NewFromInt(36500), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().TotalBilledAmount(gomock.Any()).Return(decimal.Zero, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/bills/total", nil)
			w := httptest.NewRecorder()

			handler.TotalBilledAmount(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.TotalBilledResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.True(t, body.TotalAmount.Equal(decimal.NewFromInt(36500)))
			}
		})
	}
}
