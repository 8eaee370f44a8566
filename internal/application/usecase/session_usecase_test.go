package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltmart/internal/domain/i18n"
	sessdom "voltmart/internal/domain/session"
)

type memSessionRepo struct {
	sessions map[string]*sessdom.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[string]*sessdom.Session{}}
}

func (r *memSessionRepo) GetByGuestID(_ context.Context, guestID string) (*sessdom.Session, error) {
	s, ok := r.sessions[guestID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSessionRepo) Upsert(_ context.Context, s *sessdom.Session) error {
	cp := *s
	r.sessions[s.GuestID] = &cp
	return nil
}

func (r *memSessionRepo) DeleteByGuestID(_ context.Context, guestID string) error {
	delete(r.sessions, guestID)
	return nil
}

func TestSessionGetCreatesOnFirstTouch(t *testing.T) {
	repo := newMemSessionRepo()
	uc := NewSessionUsecaseWithClock(repo, fixedClock{})

	s, err := uc.Get(context.Background(), "g-1")
	require.NoError(t, err)
	assert.Equal(t, "g-1", s.GuestID)
	assert.False(t, s.LoggedIn)
	assert.Equal(t, i18n.LocaleEN, s.Language)

	// persisted, not just returned
	stored, err := repo.GetByGuestID(context.Background(), "g-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestSessionLoginLogout(t *testing.T) {
	uc := NewSessionUsecaseWithClock(newMemSessionRepo(), fixedClock{})

	s, err := uc.Login(context.Background(), "g-1", "access-1", "refresh-1")
	require.NoError(t, err)
	assert.True(t, s.LoggedIn)
	assert.Equal(t, "access-1", s.AccessToken)

	s, err = uc.Logout(context.Background(), "g-1")
	require.NoError(t, err)
	assert.False(t, s.LoggedIn)
	assert.Empty(t, s.AccessToken)
	assert.Empty(t, s.RefreshToken)
	// guest id survives logout
	assert.Equal(t, "g-1", s.GuestID)
}

func TestSessionLoginRejectsEmptyTokens(t *testing.T) {
	uc := NewSessionUsecaseWithClock(newMemSessionRepo(), fixedClock{})

	_, err := uc.Login(context.Background(), "g-1", "", "refresh-1")
	assert.ErrorIs(t, err, ErrSessionInvalidArgument)
}

func TestSessionSetLanguage(t *testing.T) {
	uc := NewSessionUsecaseWithClock(newMemSessionRepo(), fixedClock{})

	s, err := uc.SetLanguage(context.Background(), "g-1", "lv")
	require.NoError(t, err)
	assert.Equal(t, i18n.LocaleLV, s.Language)

	// unknown values fall back to en
	s, err = uc.SetLanguage(context.Background(), "g-1", "de")
	require.NoError(t, err)
	assert.Equal(t, i18n.LocaleEN, s.Language)
}

func TestSessionEmptyGuestID(t *testing.T) {
	uc := NewSessionUsecaseWithClock(newMemSessionRepo(), fixedClock{})

	_, err := uc.Get(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrSessionInvalidArgument)
}
