// internal/adapters/out/mail/confirmation_mailer.go
package mail

import (
	"context"
	"fmt"
	"strings"

	"voltmart/internal/domain/i18n"
	"voltmart/internal/domain/reservation"
)

// EmailClient abstracts the low-level mail transport (SendGrid, SMTP).
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// ConfirmationMailer sends the localized order confirmation after checkout.
// It implements the checkout usecase's ConfirmationMailer port.
type ConfirmationMailer struct {
	client      EmailClient
	fromAddress string
}

func NewConfirmationMailer(client EmailClient, fromAddress string) *ConfirmationMailer {
	return &ConfirmationMailer{
		client:      client,
		fromAddress: strings.TrimSpace(fromAddress),
	}
}

// SendConfirmation sends the confirmation for res in the visitor's language.
func (m *ConfirmationMailer) SendConfirmation(ctx context.Context, to string, locale i18n.Locale, res reservation.Result) error {
	subject := i18n.CheckoutSubject(locale)

	body := fmt.Sprintf(
		"%s\n\nOrder #%d\nStatus: %s\nTotal: %.2f EUR\n\n-- \nVoltmart",
		i18n.CheckoutBody(locale),
		res.ID,
		res.Status,
		res.Total,
	)

	return m.client.Send(ctx, m.fromAddress, strings.TrimSpace(to), subject, body)
}
