package mail

import (
	"log"
	"os"
)

// Environment variable names (Cloud Run and local).
const (
	envSendGridAPIKey = "SENDGRID_API_KEY"
	envSendGridFrom   = "SENDGRID_FROM" // e.g. no-reply@voltmart.lv
)

// NewConfirmationMailerWithSendGrid builds a ConfirmationMailer backed by
// SendGrid, configured from the environment. Missing settings are logged, not
// fatal: checkout treats mail as best-effort.
func NewConfirmationMailerWithSendGrid() *ConfirmationMailer {
	apiKey := os.Getenv(envSendGridAPIKey)
	fromAddr := os.Getenv(envSendGridFrom)

	if apiKey == "" {
		log.Printf("[mail] WARN: SENDGRID_API_KEY is empty. ConfirmationMailer will fail to send mail.")
	}
	if fromAddr == "" {
		log.Printf("[mail] WARN: SENDGRID_FROM is empty. ConfirmationMailer will fail to send mail.")
	}

	client := NewSendGridClient(apiKey)
	mailer := NewConfirmationMailer(client, fromAddr)

	log.Printf("[mail] ConfirmationMailerWithSendGrid initialized. from=%s", fromAddr)

	return mailer
}
