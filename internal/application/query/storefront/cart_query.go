// internal/application/query/storefront/cart_query.go
package storefront

import (
	"context"
	"log"
	"strings"

	dto "voltmart/internal/application/query/storefront/dto"

	cartdom "voltmart/internal/domain/cart"
	"voltmart/internal/domain/i18n"
	"voltmart/internal/domain/product"
)

// ============================================================
// Ports (minimal contracts for this reconciler)
// ============================================================

// LocalCart is the guest-side cart store (implemented by the cart usecase).
type LocalCart interface {
	Lines(ctx context.Context, guestID string) ([]cartdom.Line, error)
	AddLine(ctx context.Context, guestID string, productID int64, qty int) (*cartdom.Cart, error)
	SetLineQty(ctx context.Context, guestID string, productID int64, qty int) (*cartdom.Cart, error)
	RemoveLine(ctx context.Context, guestID string, productID int64) (*cartdom.Cart, error)
	Clear(ctx context.Context, guestID string) error
}

// RemoteCartGateway is the account-side cart owned by the commerce API.
type RemoteCartGateway interface {
	FetchCart(ctx context.Context, bearer string) (cartdom.RemoteCart, error)
	AddCartItem(ctx context.Context, bearer string, productID int64, qty int) error
	UpdateCartItem(ctx context.Context, bearer string, productID int64, qty int) error
	RemoveCartItem(ctx context.Context, bearer string, productID int64) error
	ClearCart(ctx context.Context, bearer string) error
}

// ProductBulkResolver resolves display data for guest-cart lines.
type ProductBulkResolver interface {
	ProductsByIDs(ctx context.Context, ids []int64) ([]product.Product, error)
}

// ============================================================
// Identity
// ============================================================

// Identity is the per-request visitor context the reconciler routes on.
type Identity struct {
	GuestID string
	Bearer  string
	Locale  i18n.Locale
}

// Authenticated reports whether the account path applies.
func (id Identity) Authenticated() bool {
	return strings.TrimSpace(id.Bearer) != ""
}

// ============================================================
// Reconciler
// ============================================================

// CartReconciler presents one cart view regardless of authentication state
// and dual-routes every mutation:
//   - authenticated: remote API call, then a full re-fetch. Server-computed
//     totals (tax, stock limits) are authoritative and a locally optimistic
//     mutation is never trusted;
//   - guest: local store mutation, then local recomputation of the total.
type CartReconciler struct {
	Local    LocalCart
	Remote   RemoteCartGateway
	Resolver ProductBulkResolver
}

func NewCartReconciler(local LocalCart, remote RemoteCartGateway, resolver ProductBulkResolver) *CartReconciler {
	return &CartReconciler{Local: local, Remote: remote, Resolver: resolver}
}

// View returns the current cart view for id.
func (r *CartReconciler) View(ctx context.Context, id Identity) (dto.CartViewDTO, error) {
	if id.Authenticated() {
		return r.accountView(ctx, id)
	}
	return r.guestView(ctx, id)
}

// Add routes an add mutation and returns the reconciled view.
func (r *CartReconciler) Add(ctx context.Context, id Identity, productID int64, qty int) (dto.CartViewDTO, error) {
	if id.Authenticated() {
		if err := r.Remote.AddCartItem(ctx, id.Bearer, productID, qty); err != nil {
			return dto.CartViewDTO{}, err
		}
		return r.accountView(ctx, id)
	}

	if _, err := r.Local.AddLine(ctx, id.GuestID, productID, qty); err != nil {
		return dto.CartViewDTO{}, err
	}
	return r.guestView(ctx, id)
}

// SetQty routes a quantity update and returns the reconciled view.
func (r *CartReconciler) SetQty(ctx context.Context, id Identity, productID int64, qty int) (dto.CartViewDTO, error) {
	if id.Authenticated() {
		if err := r.Remote.UpdateCartItem(ctx, id.Bearer, productID, qty); err != nil {
			return dto.CartViewDTO{}, err
		}
		return r.accountView(ctx, id)
	}

	if _, err := r.Local.SetLineQty(ctx, id.GuestID, productID, qty); err != nil {
		return dto.CartViewDTO{}, err
	}
	return r.guestView(ctx, id)
}

// Remove routes a line removal and returns the reconciled view.
func (r *CartReconciler) Remove(ctx context.Context, id Identity, productID int64) (dto.CartViewDTO, error) {
	if id.Authenticated() {
		if err := r.Remote.RemoveCartItem(ctx, id.Bearer, productID); err != nil {
			return dto.CartViewDTO{}, err
		}
		return r.accountView(ctx, id)
	}

	if _, err := r.Local.RemoveLine(ctx, id.GuestID, productID); err != nil {
		return dto.CartViewDTO{}, err
	}
	return r.guestView(ctx, id)
}

// Clear routes a full clear and returns the (empty) reconciled view.
func (r *CartReconciler) Clear(ctx context.Context, id Identity) (dto.CartViewDTO, error) {
	if id.Authenticated() {
		if err := r.Remote.ClearCart(ctx, id.Bearer); err != nil {
			return dto.CartViewDTO{}, err
		}
		return r.accountView(ctx, id)
	}

	if err := r.Local.Clear(ctx, id.GuestID); err != nil {
		return dto.CartViewDTO{}, err
	}
	return r.guestView(ctx, id)
}

// -------------------------
// view builders
// -------------------------

func (r *CartReconciler) accountView(ctx context.Context, id Identity) (dto.CartViewDTO, error) {
	rc, err := r.Remote.FetchCart(ctx, id.Bearer)
	if err != nil {
		return dto.CartViewDTO{}, err
	}

	out := dto.CartViewDTO{
		Mode:  dto.CartModeAccount,
		Lines: make([]dto.CartLineDTO, 0, len(rc.Lines)),
		Total: rc.Total,
	}
	for _, l := range rc.Lines {
		out.Lines = append(out.Lines, dto.CartLineDTO{
			ProductID: l.ProductID,
			Name:      l.Name.Pick(id.Locale),
			UnitPrice: l.UnitPrice,
			Qty:       l.Qty,
			LineTotal: l.UnitPrice * float64(l.Qty),
			PictureID: l.PictureID,
		})
	}
	return out, nil
}

func (r *CartReconciler) guestView(ctx context.Context, id Identity) (dto.CartViewDTO, error) {
	out := dto.CartViewDTO{
		Mode:  dto.CartModeGuest,
		Lines: []dto.CartLineDTO{},
	}

	lines, err := r.Local.Lines(ctx, id.GuestID)
	if err != nil {
		return dto.CartViewDTO{}, err
	}
	if len(lines) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}

	products, err := r.Resolver.ProductsByIDs(ctx, ids)
	if err != nil {
		return dto.CartViewDTO{}, err
	}

	byID := make(map[int64]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, l := range lines {
		p, ok := byID[l.ProductID]
		if !ok {
			// product no longer exists upstream; keep the stored line but
			// leave it out of the view
			log.Printf("[cart_reconciler] guest line unresolved productId=%d guestId=%q", l.ProductID, id.GuestID)
			continue
		}
		lineTotal := p.Price * float64(l.Qty)
		out.Lines = append(out.Lines, dto.CartLineDTO{
			ProductID: l.ProductID,
			Name:      p.Name.Pick(id.Locale),
			UnitPrice: p.Price,
			Qty:       l.Qty,
			LineTotal: lineTotal,
			PictureID: p.PictureID,
		})
		out.Total += lineTotal
	}
	return out, nil
}
