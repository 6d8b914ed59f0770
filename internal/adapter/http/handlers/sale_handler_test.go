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

func TestSaleHandler_CreateSale(t *testing.T) {
	const body = `{"customer_id":"c1","technician":"João","items":[{"product_id":"p1","quantity":3}]}`
	wantInput := usecase.SaleInput{
		CustomerID: "c1",
		Technician: "João",
		Items:      []usecase.SaleItemInput{{ProductID: "p1", Quantity: 3}},
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISaleUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/sales", NewSaleHandler(uc).CreateSale)

		w := performRequest(r, http.MethodPost, "/v1/sales", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISaleUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/sales", NewSaleHandler(uc).CreateSale)

		uc.EXPECT().CreateSale(gomock.Any(), wantInput).Return(entities.Sale{
			ID:         "s1",
			CustomerID: "c1",
			Items:      []entities.SaleItem{{ProductID: "p1", Quantity: 3, UnitPrice: decimal.RequireFromString("320")}},
			Total:      decimal.RequireFromString("960"),
			CreatedAt:  time.Now().UTC(),
		}, nil)

		w := performRequest(r, http.MethodPost, "/v1/sales", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		got := decodeBody(t, w)
		if got["id"] != "s1" || got["total"] != "960.00" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"insufficient stock", &entities.StockError{ProductID: "p1", Available: 8, Requested: 10}, http.StatusConflict, "INSUFFICIENT_STOCK"},
		{"unknown product", fmt.Errorf("product p9: %w", entities.ErrInvalidReference), http.StatusUnprocessableEntity, "INVALID_REFERENCE"},
		{"no items", entities.Invalid("items", "must not be empty"), http.StatusBadRequest, "VALIDATION_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockISaleUseCase(ctrl)
			r := newTestRouter()
			r.POST("/v1/sales", NewSaleHandler(uc).CreateSale)

			uc.EXPECT().CreateSale(gomock.Any(), gomock.Any()).Return(entities.Sale{}, tc.err)

			w := performRequest(r, http.MethodPost, "/v1/sales", body)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if got := decodeBody(t, w); got["code"] != tc.code {
				t.Fatalf("expected code %s, got %v", tc.code, got["code"])
			}
		})
	}
}

func TestSaleHandler_GetAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISaleUseCase(ctrl)
	h := NewSaleHandler(uc)
	r := newTestRouter()
	r.GET("/v1/sales", h.ListSales)
	r.GET("/v1/sales/:id", h.GetSale)

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Sale{}, fmt.Errorf("sale missing: %w", entities.ErrNotFound))
	if w := performRequest(r, http.MethodGet, "/v1/sales/missing", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local)
	uc.EXPECT().List(gomock.Any(), usecase.SaleFilter{CustomerID: "c1", From: from, To: to}).Return([]entities.Sale{{ID: "s1"}}, nil)
	w := performRequest(r, http.MethodGet, "/v1/sales?customer_id=c1&from=2024-01-01&to=2024-01-31", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if w := performRequest(r, http.MethodGet, "/v1/sales?from=01/01/2024", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", w.Code)
	}
}
