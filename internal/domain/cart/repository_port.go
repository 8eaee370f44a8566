// internal/domain/cart/repository_port.go
package cart

import "context"

// Repository is a persistence port for guest carts.
//
// Storage recommendation (Firestore):
// - collection: guest_carts
// - docId: guestId
// - fields: lines(array), createdAt, updatedAt, expiresAt
//
// TTL:
// - Configure Firestore TTL on the "expiresAt" field.
// - expiresAt is refreshed on each cart mutation (handled by domain via touch()).
type Repository interface {
	// GetByGuestID returns the cart for the guest.
	// Not-found policy: return (nil, nil) and let the application layer treat
	// nil as "empty cart".
	GetByGuestID(ctx context.Context, guestID string) (*Cart, error)

	// Upsert saves the cart (create or update). Last write wins; concurrent
	// writers are an accepted limitation.
	Upsert(ctx context.Context, c *Cart) error

	// DeleteByGuestID deletes the cart for the guest (e.g., after checkout).
	DeleteByGuestID(ctx context.Context, guestID string) error
}
