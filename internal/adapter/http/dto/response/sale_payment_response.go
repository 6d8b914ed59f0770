package response

import (
	"crm_assistencia/internal/domain/entities"
	"time"
)

type SalePaymentResponse struct {
	PaymentID         string    `json:"payment_id"`
	SaleID            string    `json:"sale_id"`
	ProviderPaymentID string    `json:"provider_payment_id"`
	Status            string    `json:"status"`
	Amount            string    `json:"amount"`
	QRCode            string    `json:"qr_code,omitempty"`
	QRCodeBase64      string    `json:"qr_code_base64,omitempty"`
	TicketURL         string    `json:"ticket_url,omitempty"`
	PaymentDate       time.Time `json:"payment_date"`

	MPPayload map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromSalePayment(p entities.SalePayment) SalePaymentResponse {
	return SalePaymentResponse{
		PaymentID:         p.ID,
		SaleID:            p.SaleID,
		ProviderPaymentID: p.ProviderPaymentID,
		Status:            string(p.Status),
		Amount:            Money(p.Amount),
		QRCode:            p.QRCode,
		QRCodeBase64:      p.QRCodeBase64,
		TicketURL:         p.TicketURL,
		PaymentDate:       p.Date,
		MPPayload:         p.MPPayload,
	}
}

func FromSalePayments(ps []entities.SalePayment) []SalePaymentResponse {
	out := make([]SalePaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromSalePayment(p))
	}
	return out
}
