// internal/domain/reservation/entity.go
package reservation

import (
	"errors"
	"strings"

	"voltmart/internal/domain/cart"
)

var ErrInvalidReservation = errors.New("reservation: invalid")

// Customer is the contact block of a checkout submission. Required fields are
// validated before the remote call; per-field failures block submission.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Comment   string `json:"comment,omitempty"`
}

// FieldErrors maps a field name to a violation code, surfaced inline per
// field by the caller.
type FieldErrors map[string]string

// Validate returns one entry per missing required field; nil when valid.
func (c Customer) Validate() FieldErrors {
	fe := FieldErrors{}
	for field, v := range map[string]string{
		"firstName": c.FirstName,
		"lastName":  c.LastName,
		"email":     c.Email,
		"phone":     c.Phone,
		"city":      c.City,
		"address":   c.Address,
	} {
		if strings.TrimSpace(v) == "" {
			fe[field] = "required"
		}
	}
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// GuestRequest is the payload of POST /reservation/create-guest.
type GuestRequest struct {
	Customer Customer    `json:"customer"`
	Lines    []cart.Line `json:"lines"`
}

// Request is the payload of POST /reservation/create (authenticated; the
// server takes the lines from the account cart).
type Request struct {
	Customer Customer `json:"customer"`
}

// Result is the commerce API's reservation confirmation.
type Result struct {
	ID     int64   `json:"id"`
	Status string  `json:"status"`
	Total  float64 `json:"total"`
}
