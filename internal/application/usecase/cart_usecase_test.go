package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "voltmart/internal/domain/cart"
)

// memCartRepo is an in-memory cart.Repository with the (nil, nil) not-found
// policy.
type memCartRepo struct {
	carts map[string]*cartdom.Cart
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: map[string]*cartdom.Cart{}}
}

func (r *memCartRepo) GetByGuestID(_ context.Context, guestID string) (*cartdom.Cart, error) {
	c, ok := r.carts[guestID]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Lines = append([]cartdom.Line{}, c.Lines...)
	return &cp, nil
}

func (r *memCartRepo) Upsert(_ context.Context, c *cartdom.Cart) error {
	cp := *c
	cp.Lines = append([]cartdom.Line{}, c.Lines...)
	r.carts[c.ID] = &cp
	return nil
}

func (r *memCartRepo) DeleteByGuestID(_ context.Context, guestID string) error {
	delete(r.carts, guestID)
	return nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newCartUC(repo cartdom.Repository) *CartUsecase {
	return NewCartUsecaseWithClock(repo, fixedClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)})
}

func TestAddLineCreatesCart(t *testing.T) {
	ctx := context.Background()
	repo := newMemCartRepo()
	uc := newCartUC(repo)

	c, err := uc.AddLine(ctx, "g1", 42, 2)
	require.NoError(t, err)
	assert.Equal(t, []cartdom.Line{{ProductID: 42, Qty: 2}}, c.Lines)

	// mutation was persisted immediately
	stored, err := uc.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, c.Lines, stored.Lines)
}

func TestAddLineMerges(t *testing.T) {
	ctx := context.Background()
	uc := newCartUC(newMemCartRepo())

	_, err := uc.AddLine(ctx, "g1", 7, 1)
	require.NoError(t, err)
	c, err := uc.AddLine(ctx, "g1", 7, 3)
	require.NoError(t, err)

	assert.Equal(t, []cartdom.Line{{ProductID: 7, Qty: 4}}, c.Lines)
}

func TestAddLineValidatesArguments(t *testing.T) {
	ctx := context.Background()
	uc := newCartUC(newMemCartRepo())

	_, err := uc.AddLine(ctx, "", 1, 1)
	assert.ErrorIs(t, err, ErrCartInvalidArgument)
	_, err = uc.AddLine(ctx, "g", 0, 1)
	assert.ErrorIs(t, err, ErrCartInvalidArgument)
	_, err = uc.AddLine(ctx, "g", 1, 0)
	assert.ErrorIs(t, err, ErrCartInvalidArgument)
}

func TestSetLineQty(t *testing.T) {
	ctx := context.Background()
	uc := newCartUC(newMemCartRepo())

	_, err := uc.AddLine(ctx, "g1", 5, 2)
	require.NoError(t, err)

	c, err := uc.SetLineQty(ctx, "g1", 5, 9)
	require.NoError(t, err)
	assert.Equal(t, []cartdom.Line{{ProductID: 5, Qty: 9}}, c.Lines)

	// qty 0 removes
	c, err = uc.SetLineQty(ctx, "g1", 5, 0)
	require.NoError(t, err)
	assert.Empty(t, c.Lines)
}

func TestSetLineQtyMissingLineIsReported(t *testing.T) {
	ctx := context.Background()
	uc := newCartUC(newMemCartRepo())

	// missing cart
	_, err := uc.SetLineQty(ctx, "g1", 5, 3)
	assert.ErrorIs(t, err, ErrCartLineNotFound)

	// existing cart, missing line
	_, err = uc.AddLine(ctx, "g1", 1, 1)
	require.NoError(t, err)
	_, err = uc.SetLineQty(ctx, "g1", 99, 3)
	assert.ErrorIs(t, err, ErrCartLineNotFound)
}

func TestRemoveLineIsNoOpWhenAbsent(t *testing.T) {
	ctx := context.Background()
	uc := newCartUC(newMemCartRepo())

	_, err := uc.RemoveLine(ctx, "g1", 5)
	require.NoError(t, err)

	_, err = uc.AddLine(ctx, "g1", 1, 1)
	require.NoError(t, err)
	c, err := uc.RemoveLine(ctx, "g1", 5)
	require.NoError(t, err)
	assert.Equal(t, []cartdom.Line{{ProductID: 1, Qty: 1}}, c.Lines)
}

func TestClearThenLinesIsEmpty(t *testing.T) {
	ctx := context.Background()
	uc := newCartUC(newMemCartRepo())

	_, err := uc.AddLine(ctx, "g1", 1, 1)
	require.NoError(t, err)
	_, err = uc.AddLine(ctx, "g1", 2, 3)
	require.NoError(t, err)

	require.NoError(t, uc.Clear(ctx, "g1"))

	lines, err := uc.Lines(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLinesOnMissingCartReadsEmpty(t *testing.T) {
	uc := newCartUC(newMemCartRepo())

	lines, err := uc.Lines(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, lines)
}
