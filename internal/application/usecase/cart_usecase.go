// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	cartdom "voltmart/internal/domain/cart"
)

var (
	ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")
	ErrCartNotFound        = errors.New("cart_usecase: not found")
	ErrCartLineNotFound    = errors.New("cart_usecase: line not found")
)

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

// CartUsecase coordinates guest cart operations. Every mutation loads, applies
// and persists in one call: operations are synchronous and immediately
// durable, with no batching.
type CartUsecase struct {
	repo  cartdom.Repository
	clock Clock
}

func NewCartUsecase(repo cartdom.Repository) *CartUsecase {
	return &CartUsecase{
		repo:  repo,
		clock: systemClock{},
	}
}

// NewCartUsecaseWithClock is useful for tests.
func NewCartUsecaseWithClock(repo cartdom.Repository, clock Clock) *CartUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CartUsecase{repo: repo, clock: clock}
}

// Get returns the cart for guestID.
// If the cart does not exist, returns (nil, ErrCartNotFound).
func (uc *CartUsecase) Get(ctx context.Context, guestID string) (*cartdom.Cart, error) {
	gid := strings.TrimSpace(guestID)
	if gid == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.repo.GetByGuestID(ctx, gid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}
	return c, nil
}

// Lines returns the ordered lines for guestID; a missing cart reads as empty.
func (uc *CartUsecase) Lines(ctx context.Context, guestID string) ([]cartdom.Line, error) {
	c, err := uc.Get(ctx, guestID)
	if errors.Is(err, ErrCartNotFound) {
		return []cartdom.Line{}, nil
	}
	if err != nil {
		return nil, err
	}
	return c.Lines, nil
}

// AddLine increments qty for productID, creating the cart when absent.
// qty must be >= 1; callers validate before calling.
func (uc *CartUsecase) AddLine(ctx context.Context, guestID string, productID int64, qty int) (*cartdom.Cart, error) {
	gid := strings.TrimSpace(guestID)
	if gid == "" || productID <= 0 || qty <= 0 {
		return nil, ErrCartInvalidArgument
	}

	now := uc.clock.Now()

	c, err := uc.repo.GetByGuestID(ctx, gid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = cartdom.NewCart(gid, nil, now)
		if err != nil {
			return nil, err
		}
	}

	if err := c.Add(productID, qty, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetLineQty sets qty for productID. qty <= 0 removes the line.
// Updating a line that does not exist is reported as ErrCartLineNotFound, not
// silently dropped.
func (uc *CartUsecase) SetLineQty(ctx context.Context, guestID string, productID int64, qty int) (*cartdom.Cart, error) {
	gid := strings.TrimSpace(guestID)
	if gid == "" || productID <= 0 {
		return nil, ErrCartInvalidArgument
	}

	now := uc.clock.Now()

	c, err := uc.repo.GetByGuestID(ctx, gid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		if qty <= 0 {
			// removing from a missing cart is a no-op
			return cartdom.NewCart(gid, nil, now)
		}
		return nil, ErrCartLineNotFound
	}

	if err := c.SetQty(productID, qty, now); err != nil {
		if errors.Is(err, cartdom.ErrLineNotFound) {
			return nil, ErrCartLineNotFound
		}
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveLine removes productID from the cart; no-op when absent.
func (uc *CartUsecase) RemoveLine(ctx context.Context, guestID string, productID int64) (*cartdom.Cart, error) {
	return uc.SetLineQty(ctx, guestID, productID, 0)
}

// Clear deletes the cart doc entirely.
func (uc *CartUsecase) Clear(ctx context.Context, guestID string) error {
	gid := strings.TrimSpace(guestID)
	if gid == "" {
		return ErrCartInvalidArgument
	}
	return uc.repo.DeleteByGuestID(ctx, gid)
}
