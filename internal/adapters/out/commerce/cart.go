// internal/adapters/out/commerce/cart.go
package commerce

import (
	"context"
	"net/http"
	"strconv"

	"voltmart/internal/domain/cart"
	"voltmart/internal/domain/reservation"
)

// Authenticated cart endpoints. The server's cart is authoritative for lines
// and totals; callers must re-fetch after every mutation instead of trusting
// an optimistic local view.

type cartItemPayload struct {
	ProductID int64 `json:"productId"`
	Qty       int   `json:"qty"`
}

// FetchCart returns the account cart of the bearer's user.
func (c *Client) FetchCart(ctx context.Context, bearer string) (cart.RemoteCart, error) {
	var out cart.RemoteCart
	if err := c.doJSON(ctx, http.MethodGet, "/cart", bearer, nil, &out); err != nil {
		return cart.RemoteCart{}, err
	}
	if out.Lines == nil {
		out.Lines = []cart.RemoteLine{}
	}
	return out, nil
}

// AddCartItem adds qty of productID to the account cart.
func (c *Client) AddCartItem(ctx context.Context, bearer string, productID int64, qty int) error {
	return c.doJSON(ctx, http.MethodPost, "/cart/items", bearer,
		cartItemPayload{ProductID: productID, Qty: qty}, nil)
}

// UpdateCartItem sets the quantity of productID in the account cart.
func (c *Client) UpdateCartItem(ctx context.Context, bearer string, productID int64, qty int) error {
	return c.doJSON(ctx, http.MethodPut, "/cart/items", bearer,
		cartItemPayload{ProductID: productID, Qty: qty}, nil)
}

// RemoveCartItem deletes productID from the account cart.
func (c *Client) RemoveCartItem(ctx context.Context, bearer string, productID int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/cart/items/"+strconv.FormatInt(productID, 10), bearer, nil, nil)
}

// ClearCart empties the account cart.
func (c *Client) ClearCart(ctx context.Context, bearer string) error {
	return c.doJSON(ctx, http.MethodDelete, "/cart", bearer, nil, nil)
}

// CreateReservation submits an authenticated checkout; the server consumes
// the account cart.
func (c *Client) CreateReservation(ctx context.Context, bearer string, req reservation.Request) (reservation.Result, error) {
	var out reservation.Result
	if err := c.doJSON(ctx, http.MethodPost, "/reservation/create", bearer, req, &out); err != nil {
		return reservation.Result{}, err
	}
	return out, nil
}

// CreateGuestReservation submits a guest checkout with the guest cart lines.
func (c *Client) CreateGuestReservation(ctx context.Context, req reservation.GuestRequest) (reservation.Result, error) {
	var out reservation.Result
	if err := c.doJSON(ctx, http.MethodPost, "/reservation/create-guest", "", req, &out); err != nil {
		return reservation.Result{}, err
	}
	return out, nil
}
