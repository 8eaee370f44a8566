package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "voltmart/internal/domain/cart"
	"voltmart/internal/domain/i18n"
	"voltmart/internal/domain/reservation"
)

type fakeReservationGateway struct {
	guestReqs []reservation.GuestRequest
	authReqs  []reservation.Request
	fail      bool
}

func (g *fakeReservationGateway) CreateReservation(_ context.Context, _ string, req reservation.Request) (reservation.Result, error) {
	if g.fail {
		return reservation.Result{}, errors.New("remote down")
	}
	g.authReqs = append(g.authReqs, req)
	return reservation.Result{ID: 100, Status: "created"}, nil
}

func (g *fakeReservationGateway) CreateGuestReservation(_ context.Context, req reservation.GuestRequest) (reservation.Result, error) {
	if g.fail {
		return reservation.Result{}, errors.New("remote down")
	}
	g.guestReqs = append(g.guestReqs, req)
	return reservation.Result{ID: 55, Status: "created", Total: 40}, nil
}

type fakeMailer struct {
	sent []string
	fail bool
}

func (m *fakeMailer) SendConfirmation(_ context.Context, to string, _ i18n.Locale, _ reservation.Result) error {
	if m.fail {
		return errors.New("mail down")
	}
	m.sent = append(m.sent, to)
	return nil
}

func validCustomer() reservation.Customer {
	return reservation.Customer{
		FirstName: "Anna",
		LastName:  "Berzina",
		Email:     "anna@example.com",
		Phone:     "+371 20000000",
		City:      "Riga",
		Address:   "Brivibas iela 1",
	}
}

func seedGuestCart(t *testing.T, uc *CartUsecase, guestID string) {
	t.Helper()
	_, err := uc.AddLine(context.Background(), guestID, 7, 2)
	require.NoError(t, err)
	_, err = uc.AddLine(context.Background(), guestID, 9, 1)
	require.NoError(t, err)
}

func TestGuestCheckoutClearsCartOnSuccess(t *testing.T) {
	ctx := context.Background()
	carts := newCartUC(newMemCartRepo())
	seedGuestCart(t, carts, "g1")

	gw := &fakeReservationGateway{}
	mail := &fakeMailer{}
	uc := NewCheckoutUsecase(carts, gw, mail)

	res, err := uc.Guest(ctx, "g1", validCustomer(), i18n.LocaleLV)
	require.NoError(t, err)
	assert.Equal(t, int64(55), res.ID)

	require.Len(t, gw.guestReqs, 1)
	assert.Equal(t, []cartdom.Line{{ProductID: 7, Qty: 2}, {ProductID: 9, Qty: 1}}, gw.guestReqs[0].Lines)

	lines, err := carts.Lines(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, lines, "cart must be cleared entirely on success")

	assert.Equal(t, []string{"anna@example.com"}, mail.sent)
}

func TestGuestCheckoutRemoteFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	carts := newCartUC(newMemCartRepo())
	seedGuestCart(t, carts, "g1")

	uc := NewCheckoutUsecase(carts, &fakeReservationGateway{fail: true}, nil)

	_, err := uc.Guest(ctx, "g1", validCustomer(), i18n.LocaleEN)
	require.Error(t, err)

	lines, err := carts.Lines(ctx, "g1")
	require.NoError(t, err)
	assert.Len(t, lines, 2, "failed checkout must leave the cart untouched")
}

func TestGuestCheckoutValidationBlocksSubmission(t *testing.T) {
	ctx := context.Background()
	carts := newCartUC(newMemCartRepo())
	seedGuestCart(t, carts, "g1")

	gw := &fakeReservationGateway{}
	uc := NewCheckoutUsecase(carts, gw, nil)

	cust := validCustomer()
	cust.Email = ""
	cust.Phone = "  "

	_, err := uc.Guest(ctx, "g1", cust, i18n.LocaleEN)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, reservation.FieldErrors{"email": "required", "phone": "required"}, ve.Fields)
	assert.Empty(t, gw.guestReqs, "validation failure must not reach the gateway")
}

func TestGuestCheckoutEmptyCart(t *testing.T) {
	carts := newCartUC(newMemCartRepo())
	uc := NewCheckoutUsecase(carts, &fakeReservationGateway{}, nil)

	_, err := uc.Guest(context.Background(), "g1", validCustomer(), i18n.LocaleEN)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestGuestCheckoutMailFailureDoesNotFailOrder(t *testing.T) {
	ctx := context.Background()
	carts := newCartUC(newMemCartRepo())
	seedGuestCart(t, carts, "g1")

	uc := NewCheckoutUsecase(carts, &fakeReservationGateway{}, &fakeMailer{fail: true})

	_, err := uc.Guest(ctx, "g1", validCustomer(), i18n.LocaleRU)
	assert.NoError(t, err)
}

func TestAccountCheckout(t *testing.T) {
	gw := &fakeReservationGateway{}
	uc := NewCheckoutUsecase(newCartUC(newMemCartRepo()), gw, nil)

	res, err := uc.Account(context.Background(), "tok-1", validCustomer(), i18n.LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, int64(100), res.ID)
	require.Len(t, gw.authReqs, 1)

	_, err = uc.Account(context.Background(), "", validCustomer(), i18n.LocaleEN)
	assert.ErrorIs(t, err, ErrCheckoutInvalidArgument)
}
