package usecase

import (
	"context"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase/interfaces"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrSalePaymentNotFound            = fmt.Errorf("sale payment not found: %w", entities.ErrNotFound)
	ErrInvalidPayerEmail              = fmt.Errorf("invalid payer email: %w", entities.ErrValidation)
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ISalePaymentUseCase issues PIX charges for sales and keeps their records.
type ISalePaymentUseCase interface {
	ChargeSale(ctx context.Context, saleID, payerEmail string) (entities.SalePayment, error)
	GetByID(ctx context.Context, id string) (entities.SalePayment, error)
	ListBySaleID(ctx context.Context, saleID string) ([]entities.SalePayment, error)
}

type SalePaymentUseCase struct {
	store   interfaces.IStore
	repo    interfaces.ISalePaymentRepository
	gateway interfaces.IPaymentGateway
	// sandboxPayerEmail is used when the caller gives no payer e-mail.
	sandboxPayerEmail string
}

var _ ISalePaymentUseCase = (*SalePaymentUseCase)(nil)

func NewSalePaymentUseCase(store interfaces.IStore, repo interfaces.ISalePaymentRepository, gateway interfaces.IPaymentGateway, sandboxPayerEmail string) *SalePaymentUseCase {
	return &SalePaymentUseCase{store: store, repo: repo, gateway: gateway, sandboxPayerEmail: strings.TrimSpace(sandboxPayerEmail)}
}

func (u *SalePaymentUseCase) ChargeSale(ctx context.Context, saleID, payerEmail string) (entities.SalePayment, error) {
	log.Info().Str("raw_sale_id", saleID).Msg("[payment][usecase] charge start")
	saleID, err := requireID("sale_id", saleID)
	if err != nil {
		return entities.SalePayment{}, err
	}
	payerEmail = strings.TrimSpace(payerEmail)
	if payerEmail == "" {
		payerEmail = u.sandboxPayerEmail
	}
	if _, err := mail.ParseAddress(payerEmail); err != nil {
		log.Warn().Str("sale_id", saleID).Msg("[payment][usecase] invalid payer email")
		return entities.SalePayment{}, ErrInvalidPayerEmail
	}
	if u.gateway == nil {
		log.Warn().Str("sale_id", saleID).Msg("[payment][usecase] gateway not configured")
		return entities.SalePayment{}, ErrPaymentGatewayNotConfigured
	}
	if u.repo == nil {
		return entities.SalePayment{}, errors.New("sale payment repository not configured")
	}

	var sale entities.Sale
	err = u.store.View(ctx, func(v interfaces.IStoreView) error {
		sale, err = v.GetSale(saleID)
		return err
	})
	if err != nil {
		log.Warn().Err(err).Str("sale_id", saleID).Msg("[payment][usecase] failed loading sale")
		return entities.SalePayment{}, err
	}

	// The sale total is the source of truth for the amount.
	payload, err := json.Marshal(map[string]any{
		"transaction_amount": sale.Total.InexactFloat64(),
		"description":        entities.SaleMovementReason(sale.ID),
		"payment_method_id":  "pix",
		"external_reference": sale.ID,
		"payer": map[string]any{
			"type":  "customer",
			"email": payerEmail,
		},
	})
	if err != nil {
		return entities.SalePayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Warn().Err(err).Str("sale_id", saleID).Msg("[payment][usecase] payment gateway failed")
		return entities.SalePayment{}, classifyGatewayError(err)
	}
	log.Info().Str("sale_id", saleID).Str("provider_payment_id", providerPaymentID).Str("provider_status", providerStatus).Msg("[payment][usecase] payment gateway success")

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn().Err(err).Str("sale_id", saleID).Msg("[payment][usecase] provider response unmarshal failed")
	}

	p := entities.SalePayment{
		ID:                uuid.NewString(),
		SaleID:            sale.ID,
		ProviderPaymentID: providerPaymentID,
		Status:            entities.PaymentStatusFromProvider(providerStatus),
		Amount:            sale.Total,
		Date:              time.Now().UTC(),
		MPPayloadRaw:      providerResp,
		MPPayload:         parsed,
	}
	p.QRCode, p.QRCodeBase64, p.TicketURL = pixTransactionData(parsed)

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error().Err(err).Str("sale_id", saleID).Str("payment_id", p.ID).Msg("[payment][usecase] payment repository create failed")
		return entities.SalePayment{}, err
	}
	log.Info().Str("sale_id", saleID).Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("[payment][usecase] charge success")
	return created, nil
}

// pixTransactionData reads point_of_interaction.transaction_data from a
// Mercado Pago payment body.
func pixTransactionData(body map[string]any) (qrCode, qrCodeBase64, ticketURL string) {
	poi, _ := body["point_of_interaction"].(map[string]any)
	data, _ := poi["transaction_data"].(map[string]any)
	qrCode, _ = data["qr_code"].(string)
	qrCodeBase64, _ = data["qr_code_base64"].(string)
	ticketURL, _ = data["ticket_url"].(string)
	return qrCode, qrCodeBase64, ticketURL
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *SalePaymentUseCase) GetByID(ctx context.Context, id string) (entities.SalePayment, error) {
	id, err := requireID("payment_id", id)
	if err != nil {
		return entities.SalePayment{}, err
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SalePayment{}, err
	}
	if p.ID == "" {
		return entities.SalePayment{}, ErrSalePaymentNotFound
	}
	return p, nil
}

func (u *SalePaymentUseCase) ListBySaleID(ctx context.Context, saleID string) ([]entities.SalePayment, error) {
	saleID, err := requireID("sale_id", saleID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListBySaleID(ctx, saleID)
}
