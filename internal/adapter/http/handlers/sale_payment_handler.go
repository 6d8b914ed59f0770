package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "crm_assistencia/internal/adapter/http/dto/request"
	response "crm_assistencia/internal/adapter/http/dto/response"
	"crm_assistencia/internal/usecase"
	"crm_assistencia/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SalePaymentHandler handles PIX charges issued for sales.
type SalePaymentHandler struct {
	usecase usecase.ISalePaymentUseCase
}

func NewSalePaymentHandler(uc usecase.ISalePaymentUseCase) *SalePaymentHandler {
	return &SalePaymentHandler{usecase: uc}
}

// ChargeSale godoc
// @Summary  Issue a PIX charge for a sale
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    id      path string                    true  "Sale id"
// @Param    payload body request.ChargeSaleRequest false "Payer"
// @Success  201 {object} response.SalePaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /sales/{id}/payments [post]
func (h *SalePaymentHandler) ChargeSale(c *gin.Context) {
	saleID := c.Param("id")
	log.Info().Str("sale_id", saleID).Msg("[payment][handler] charge start")

	payload, err := readChargeRequest(c)
	if err != nil {
		log.Warn().Err(err).Str("sale_id", saleID).Msg("[payment][handler] invalid payload")
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.ChargeSale(c.Request.Context(), saleID, payload.PayerEmail)
	if err != nil {
		log.Error().Err(err).Str("sale_id", saleID).Msg("[payment][handler] charge failed")
		appErr := mapSalePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info().Str("sale_id", saleID).Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("[payment][handler] charge success")

	c.JSON(http.StatusCreated, response.FromSalePayment(created))
}

// ListSalePayments returns every charge issued for a sale.
func (h *SalePaymentHandler) ListSalePayments(c *gin.Context) {
	saleID := c.Param("id")
	payments, err := h.usecase.ListBySaleID(c.Request.Context(), saleID)
	if err != nil {
		appErr := mapSalePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSalePayments(payments))
}

func (h *SalePaymentHandler) GetSalePayment(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapSalePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if payment.SaleID != c.Param("id") {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSalePayment(payment))
}

// readChargeRequest accepts an empty body.
func readChargeRequest(c *gin.Context) (request.ChargeSaleRequest, error) {
	var payload request.ChargeSaleRequest
	raw, err := c.GetRawData()
	if err != nil {
		return payload, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, err
	}
	return payload, nil
}

func mapSalePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrSalePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return mapError(err)
	}
}
