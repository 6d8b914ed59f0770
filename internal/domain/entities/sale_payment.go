package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the outcome reported by the payment provider.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// PaymentStatusFromProvider maps Mercado Pago statuses to ours.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved", "authorized":
		return PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusNegado
	}
	return PaymentStatusPendente
}

// SalePayment is a PIX charge issued for a sale.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (sale_id-index): sale_id
//
// MPPayloadRaw keeps the provider body for audit; MPPayload is its parsed form.
type SalePayment struct {
	ID                string          `json:"id"`
	SaleID            string          `json:"sale_id"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	Status            PaymentStatus   `json:"status"`
	Amount            decimal.Decimal `json:"amount"`
	QRCode            string          `json:"qr_code,omitempty"`
	QRCodeBase64      string          `json:"qr_code_base64,omitempty"`
	TicketURL         string          `json:"ticket_url,omitempty"`
	Date              time.Time       `json:"date"`

	MPPayloadRaw json.RawMessage `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any  `json:"mp_payload,omitempty"`
}
