// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"voltmart/internal/domain/i18n"
	"voltmart/internal/domain/reservation"
)

var (
	ErrCheckoutInvalidArgument = errors.New("checkout_usecase: invalid argument")
	ErrEmptyCart               = errors.New("checkout_usecase: cart is empty")
)

// ValidationError reports per-field form failures; submission is blocked and
// the caller surfaces them inline.
type ValidationError struct {
	Fields reservation.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout_usecase: validation failed (%d fields)", len(e.Fields))
}

// ReservationGateway is the outbound port to the commerce API's checkout
// endpoints.
type ReservationGateway interface {
	CreateReservation(ctx context.Context, bearer string, req reservation.Request) (reservation.Result, error)
	CreateGuestReservation(ctx context.Context, req reservation.GuestRequest) (reservation.Result, error)
}

// ConfirmationMailer sends the localized order confirmation. Optional;
// checkout succeeds even when mail fails.
type ConfirmationMailer interface {
	SendConfirmation(ctx context.Context, to string, locale i18n.Locale, res reservation.Result) error
}

// CheckoutUsecase submits reservations and finishes the guest cart lifecycle.
type CheckoutUsecase struct {
	carts   *CartUsecase
	gateway ReservationGateway
	mailer  ConfirmationMailer
}

func NewCheckoutUsecase(carts *CartUsecase, gateway ReservationGateway, mailer ConfirmationMailer) *CheckoutUsecase {
	return &CheckoutUsecase{carts: carts, gateway: gateway, mailer: mailer}
}

// Guest submits a guest checkout with the local cart's lines.
// On success the guest cart is cleared entirely, never partially; on any
// remote failure the cart is left exactly as it was.
func (uc *CheckoutUsecase) Guest(ctx context.Context, guestID string, cust reservation.Customer, locale i18n.Locale) (reservation.Result, error) {
	gid := strings.TrimSpace(guestID)
	if gid == "" {
		return reservation.Result{}, ErrCheckoutInvalidArgument
	}

	if fe := cust.Validate(); fe != nil {
		return reservation.Result{}, &ValidationError{Fields: fe}
	}

	lines, err := uc.carts.Lines(ctx, gid)
	if err != nil {
		return reservation.Result{}, err
	}
	if len(lines) == 0 {
		return reservation.Result{}, ErrEmptyCart
	}

	res, err := uc.gateway.CreateGuestReservation(ctx, reservation.GuestRequest{
		Customer: cust,
		Lines:    lines,
	})
	if err != nil {
		return reservation.Result{}, err
	}

	// order is placed; a failed clear must not fail the checkout
	if err := uc.carts.Clear(ctx, gid); err != nil {
		log.Printf("[checkout_usecase] WARN: guest cart clear failed guestId=%q err=%v", gid, err)
	}

	uc.sendConfirmation(ctx, cust.Email, locale, res)
	return res, nil
}

// Account submits an authenticated checkout; the commerce API consumes the
// account cart server-side.
func (uc *CheckoutUsecase) Account(ctx context.Context, bearer string, cust reservation.Customer, locale i18n.Locale) (reservation.Result, error) {
	if strings.TrimSpace(bearer) == "" {
		return reservation.Result{}, ErrCheckoutInvalidArgument
	}

	if fe := cust.Validate(); fe != nil {
		return reservation.Result{}, &ValidationError{Fields: fe}
	}

	res, err := uc.gateway.CreateReservation(ctx, bearer, reservation.Request{Customer: cust})
	if err != nil {
		return reservation.Result{}, err
	}

	uc.sendConfirmation(ctx, cust.Email, locale, res)
	return res, nil
}

func (uc *CheckoutUsecase) sendConfirmation(ctx context.Context, to string, locale i18n.Locale, res reservation.Result) {
	if uc.mailer == nil || strings.TrimSpace(to) == "" {
		return
	}
	if err := uc.mailer.SendConfirmation(ctx, to, locale, res); err != nil {
		log.Printf("[checkout_usecase] WARN: confirmation mail failed to=%q err=%v", to, err)
	}
}
