// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "voltmart/internal/domain/cart"
)

// CartRepositoryFS implements cart.Repository using Firestore.
//
// Collection design:
// - collection: guest_carts
// - docId: guestId (docId is the source of truth for Cart.ID)
// - fields: lines(array), createdAt, updatedAt, expiresAt
//
// TTL:
// - Configure Firestore TTL on "expiresAt" so abandoned guest carts expire
//   server-side without a sweeper.
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("guest_carts")
}

// GetByGuestID returns (nil, nil) if not found (nil policy).
func (r *CartRepositoryFS) GetByGuestID(ctx context.Context, guestID string) (*cartdom.Cart, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}

	gid := strings.TrimSpace(guestID)
	if gid == "" {
		return nil, errors.New("cart_repository_fs: guestID is empty")
	}

	snap, err := r.col().Doc(gid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	// Parse snap.Data() by hand: an older schema stored lines as a
	// productId->qty map, and DataTo on the current struct would fail on
	// those docs.
	doc, err := cartDocFromSnapshot(snap)
	if err != nil {
		return nil, err
	}

	d := doc.toDomain()
	// docId is the source of truth even when the doc carries no id field
	d.ID = gid
	return d, nil
}

// Upsert saves cart by docId=cart.ID (= guestId). Full-doc overwrite.
func (r *CartRepositoryFS) Upsert(ctx context.Context, c *cartdom.Cart) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	if c == nil {
		return errors.New("cart_repository_fs: cart is nil")
	}

	gid := strings.TrimSpace(c.ID)
	if gid == "" {
		return errors.New("cart_repository_fs: Upsert requires cart.ID (= guestId) as docId")
	}

	doc := cartDocFromDomain(c)

	_, err := r.col().Doc(gid).Set(ctx, doc)
	return err
}

func (r *CartRepositoryFS) DeleteByGuestID(ctx context.Context, guestID string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}

	gid := strings.TrimSpace(guestID)
	if gid == "" {
		return errors.New("cart_repository_fs: guestID is empty")
	}

	_, err := r.col().Doc(gid).Delete(ctx)
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type cartDoc struct {
	Lines []cartLineDoc `firestore:"lines"`

	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
	ExpiresAt time.Time `firestore:"expiresAt"`
}

type cartLineDoc struct {
	ProductID int64 `firestore:"productId"`
	Qty       int   `firestore:"qty"`
}

// cartDocFromSnapshot parses Firestore document data with backward
// compatibility.
//
// Supported shapes:
// 1) lines: [{productId, qty}, ...]
// 2) lines: map[productId] = qty (legacy)
func cartDocFromSnapshot(snap *firestore.DocumentSnapshot) (cartDoc, error) {
	if snap == nil {
		return cartDoc{}, errors.New("cart_repository_fs: snapshot is nil")
	}

	raw := snap.Data()
	if raw == nil {
		return cartDoc{}, nil
	}

	var out cartDoc

	if t, ok := raw["createdAt"]; ok {
		if tt, ok2 := asTime(t); ok2 {
			out.CreatedAt = tt
		}
	}
	if t, ok := raw["updatedAt"]; ok {
		if tt, ok2 := asTime(t); ok2 {
			out.UpdatedAt = tt
		}
	}
	if t, ok := raw["expiresAt"]; ok {
		if tt, ok2 := asTime(t); ok2 {
			out.ExpiresAt = tt
		}
	}

	switch lines := raw["lines"].(type) {
	case []any:
		for _, v := range lines {
			mv, ok := v.(map[string]any)
			if !ok {
				continue
			}
			pid := asInt64(mv["productId"])
			qty := asInt(mv["qty"])
			if pid <= 0 || qty <= 0 {
				continue
			}
			out.Lines = append(out.Lines, cartLineDoc{ProductID: pid, Qty: qty})
		}
	case map[string]any:
		// legacy map shape; ordering was lost back then too
		for k, v := range lines {
			pid := parseInt64(k)
			qty := asInt(v)
			if pid <= 0 || qty <= 0 {
				continue
			}
			out.Lines = append(out.Lines, cartLineDoc{ProductID: pid, Qty: qty})
		}
	}

	return out, nil
}

func cartDocFromDomain(c *cartdom.Cart) cartDoc {
	var lines []cartLineDoc
	for _, l := range c.Lines {
		if l.ProductID <= 0 || l.Qty <= 0 {
			continue
		}
		lines = append(lines, cartLineDoc{ProductID: l.ProductID, Qty: l.Qty})
	}

	return cartDoc{
		Lines:     lines,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		ExpiresAt: c.ExpiresAt,
	}
}

func (d cartDoc) toDomain() *cartdom.Cart {
	lines := make([]cartdom.Line, 0, len(d.Lines))
	for _, l := range d.Lines {
		if l.ProductID <= 0 || l.Qty <= 0 {
			continue
		}
		lines = append(lines, cartdom.Line{ProductID: l.ProductID, Qty: l.Qty})
	}

	return &cartdom.Cart{
		// ID is filled by the caller from the docId
		Lines:     lines,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		ExpiresAt: d.ExpiresAt,
	}
}
