package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/infrastructure/config"
	"crm_assistencia/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

var ErrNoRecipient = errors.New("no alert recipient configured")

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailNotifier mails the list of products at or below their minimum stock.
type EmailNotifier struct {
	from string
	to   []string
	mail sender
}

var _ interfaces.IStockAlertNotifier = (*EmailNotifier)(nil)

func NewEmailNotifier(cfg config.SMTPConfig) *EmailNotifier {
	return &EmailNotifier{
		from: cfg.From,
		to:   splitRecipients(cfg.AlertTo),
		mail: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

func (n *EmailNotifier) NotifyLowStock(ctx context.Context, products []entities.Product) error {
	if len(products) == 0 {
		return nil
	}
	if len(n.to) == 0 {
		return ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to...)
	m.SetHeader("Subject", lowStockSubject(products))
	m.SetBody("text/plain", lowStockBody(products))

	if err := n.mail.DialAndSend(m); err != nil {
		return fmt.Errorf("send low stock alert: %w", err)
	}
	log.Info().Int("products", len(products)).Strs("to", n.to).Msg("[stock][email] low stock alert sent")
	return nil
}

func lowStockSubject(products []entities.Product) string {
	if len(products) == 1 {
		return fmt.Sprintf("Estoque baixo: %s", products[0].Name)
	}
	return fmt.Sprintf("Estoque baixo: %d produtos", len(products))
}

func lowStockBody(products []entities.Product) string {
	var b strings.Builder
	b.WriteString("Os produtos abaixo atingiram a quantidade mínima:\n\n")
	for _, p := range products {
		fmt.Fprintf(&b, "- %s: %d em estoque (mínimo %d)\n", p.Name, p.Quantity, p.MinQuantity)
	}
	return b.String()
}

func splitRecipients(s string) []string {
	var out []string
	for _, r := range strings.Split(s, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
