package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"crm_assistencia/internal/adapter/http/handlers/mocks"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestSalePaymentHandler_ChargeSale(t *testing.T) {
	t.Run("empty body uses sandbox payer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISalePaymentUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/sales/:id/payments", NewSalePaymentHandler(uc).ChargeSale)

		uc.EXPECT().ChargeSale(gomock.Any(), "s1", "").Return(entities.SalePayment{
			ID:     "pay-1",
			SaleID: "s1",
			Status: entities.PaymentStatusPendente,
			Amount: decimal.RequireFromString("960"),
			QRCode: "00020101",
			Date:   time.Now().UTC(),
		}, nil)

		w := performRequest(r, http.MethodPost, "/v1/sales/s1/payments", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		got := decodeBody(t, w)
		if got["payment_id"] != "pay-1" || got["amount"] != "960.00" || got["qr_code"] != "00020101" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("explicit payer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISalePaymentUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/sales/:id/payments", NewSalePaymentHandler(uc).ChargeSale)

		uc.EXPECT().ChargeSale(gomock.Any(), "s1", "cliente@ex.com").Return(entities.SalePayment{ID: "pay-2", SaleID: "s1"}, nil)

		if w := performRequest(r, http.MethodPost, "/v1/sales/s1/payments", `{"payer_email":"cliente@ex.com"}`); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISalePaymentUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/sales/:id/payments", NewSalePaymentHandler(uc).ChargeSale)

		if w := performRequest(r, http.MethodPost, "/v1/sales/s1/payments", `{"payer_email":`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	errCases := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown sale", fmt.Errorf("sale s9: %w", entities.ErrNotFound), http.StatusNotFound},
		{"invalid payer", usecase.ErrInvalidPayerEmail, http.StatusBadRequest},
		{"gateway unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{"gateway invalid users", usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{"gateway not configured", usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockISalePaymentUseCase(ctrl)
			r := newTestRouter()
			r.POST("/v1/sales/:id/payments", NewSalePaymentHandler(uc).ChargeSale)

			uc.EXPECT().ChargeSale(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.SalePayment{}, tc.err)

			if w := performRequest(r, http.MethodPost, "/v1/sales/s1/payments", ""); w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestSalePaymentHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISalePaymentUseCase(ctrl)
	h := NewSalePaymentHandler(uc)
	r := newTestRouter()
	r.GET("/v1/sales/:id/payments", h.ListSalePayments)
	r.GET("/v1/sales/:id/payments/:payment_id", h.GetSalePayment)

	uc.EXPECT().ListBySaleID(gomock.Any(), "s1").Return([]entities.SalePayment{{ID: "pay-1", SaleID: "s1"}}, nil)
	w := performRequest(r, http.MethodGet, "/v1/sales/s1/payments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.SalePayment{ID: "pay-1", SaleID: "s1"}, nil).Times(2)
	if w := performRequest(r, http.MethodGet, "/v1/sales/s1/payments/pay-1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := performRequest(r, http.MethodGet, "/v1/sales/s2/payments/pay-1", ""); w.Code != http.StatusNotFound {
		t.Fatalf("payment of another sale must be 404, got %d", w.Code)
	}

	uc.EXPECT().GetByID(gomock.Any(), "pay-9").Return(entities.SalePayment{}, usecase.ErrSalePaymentNotFound)
	if w := performRequest(r, http.MethodGet, "/v1/sales/s1/payments/pay-9", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
