// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidCart  = errors.New("cart: invalid")
	ErrLineNotFound = errors.New("cart: line not found")
)

// DefaultCartTTL is the inactivity window after which a guest cart becomes
// eligible for auto deletion (Firestore TTL should be configured on expiresAt).
const DefaultCartTTL = 30 * 24 * time.Hour

// Line represents one line item in a guest cart.
// ProductID is unique within a cart; Qty is always >= 1.
type Line struct {
	ProductID int64 `json:"productId" firestore:"productId"`
	Qty       int   `json:"qty" firestore:"qty"`
}

// Cart represents a guest cart document.
//   - docId = guestID (Firestore)
//   - Lines: ordered by first insertion; no two lines share a ProductID
//   - ExpiresAt: for Firestore TTL, refreshed on each mutation
type Cart struct {
	// ID is the Firestore docId (= guestID).
	ID string `json:"id" firestore:"id"`

	// Lines is the ordered list of line items.
	Lines []Line `json:"lines" firestore:"lines"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`

	// ExpiresAt is used for Firestore TTL.
	ExpiresAt time.Time `json:"expiresAt" firestore:"expiresAt"`
}

// NewCart creates a new cart doc. id is the Firestore docId (guestID).
// lines can be nil (treated as empty).
func NewCart(id string, lines []Line, now time.Time) (*Cart, error) {
	c := &Cart{
		ID:        strings.TrimSpace(id),
		Lines:     cloneLines(lines),
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(DefaultCartTTL),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Add increases quantity for productID, appending a new line when absent.
// qty must be >= 1.
func (c *Cart) Add(productID int64, qty int, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	if productID <= 0 || qty <= 0 {
		return ErrInvalidCart
	}

	if idx := findLineIndex(c.Lines, productID); idx >= 0 {
		c.Lines[idx].Qty += qty
	} else {
		c.Lines = append(c.Lines, Line{ProductID: productID, Qty: qty})
	}

	c.touch(now)
	return c.validate()
}

// SetQty sets quantity for an existing productID.
// If qty <= 0, the line is removed; removing an absent line is a no-op.
// Setting a positive qty on an absent line returns ErrLineNotFound
// (reported error, not a silent no-op and not an insert).
func (c *Cart) SetQty(productID int64, qty int, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	if productID <= 0 {
		return ErrInvalidCart
	}

	idx := findLineIndex(c.Lines, productID)

	if qty <= 0 {
		if idx >= 0 {
			c.Lines = removeIndex(c.Lines, idx)
		}
		c.touch(now)
		return c.validate()
	}

	if idx < 0 {
		return ErrLineNotFound
	}

	c.Lines[idx].Qty = qty
	c.touch(now)
	return c.validate()
}

// Remove removes productID from the cart; no-op when absent.
func (c *Cart) Remove(productID int64, now time.Time) error {
	return c.SetQty(productID, 0, now)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Lines) == 0
}

func (c *Cart) touch(now time.Time) {
	c.UpdatedAt = now
	c.ExpiresAt = now.Add(DefaultCartTTL)
}

func (c *Cart) validate() error {
	if c == nil {
		return ErrInvalidCart
	}

	if strings.TrimSpace(c.ID) == "" {
		return ErrInvalidCart
	}

	if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() || c.ExpiresAt.IsZero() {
		return ErrInvalidCart
	}
	if c.UpdatedAt.Before(c.CreatedAt) {
		return ErrInvalidCart
	}
	if c.ExpiresAt.Before(c.UpdatedAt) {
		return ErrInvalidCart
	}

	if len(c.Lines) == 0 {
		return nil
	}

	// normalize: merge duplicates, drop invalid lines, keep insertion order
	c.Lines = normalizeAndMerge(c.Lines)

	for _, l := range c.Lines {
		if l.ProductID <= 0 || l.Qty <= 0 {
			return ErrInvalidCart
		}
	}
	return nil
}

// ----------------------------
// Helpers
// ----------------------------

func findLineIndex(lines []Line, productID int64) int {
	for i := range lines {
		if lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func removeIndex(lines []Line, idx int) []Line {
	if idx < 0 || idx >= len(lines) {
		return lines
	}
	// preserve order
	return append(lines[:idx], lines[idx+1:]...)
}

// normalizeAndMerge sums quantities of duplicate product ids and drops lines
// with non-positive id or qty. First-seen order is preserved.
func normalizeAndMerge(src []Line) []Line {
	out := make([]Line, 0, len(src))
	at := map[int64]int{}

	for _, l := range src {
		if l.ProductID <= 0 || l.Qty <= 0 {
			continue
		}
		if i, ok := at[l.ProductID]; ok {
			out[i].Qty += l.Qty
			continue
		}
		at[l.ProductID] = len(out)
		out = append(out, l)
	}
	return out
}

func cloneLines(src []Line) []Line {
	if len(src) == 0 {
		return []Line{}
	}
	cp := make([]Line, 0, len(src))
	cp = append(cp, src...)
	return normalizeAndMerge(cp)
}
