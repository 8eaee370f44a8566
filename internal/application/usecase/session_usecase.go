// internal/application/usecase/session_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	sessdom "voltmart/internal/domain/session"
)

var ErrSessionInvalidArgument = errors.New("session_usecase: invalid argument")

// SessionUsecase coordinates the per-visitor client state: auth tokens, login
// flag and UI language. Reads create the session on first touch so callers
// never see a missing row.
type SessionUsecase struct {
	repo  sessdom.Repository
	clock Clock
}

func NewSessionUsecase(repo sessdom.Repository) *SessionUsecase {
	return &SessionUsecase{repo: repo, clock: systemClock{}}
}

// NewSessionUsecaseWithClock is useful for tests.
func NewSessionUsecaseWithClock(repo sessdom.Repository, clock Clock) *SessionUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &SessionUsecase{repo: repo, clock: clock}
}

// Get returns the session for guestID, creating and persisting a fresh guest
// session when none exists yet.
func (uc *SessionUsecase) Get(ctx context.Context, guestID string) (*sessdom.Session, error) {
	gid := strings.TrimSpace(guestID)
	if gid == "" {
		return nil, ErrSessionInvalidArgument
	}

	s, err := uc.repo.GetByGuestID(ctx, gid)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}

	s, err = sessdom.NewSession(gid, uc.clock.Now())
	if err != nil {
		return nil, ErrSessionInvalidArgument
	}
	if err := uc.repo.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Login stores the token pair and marks the session logged in.
func (uc *SessionUsecase) Login(ctx context.Context, guestID, accessToken, refreshToken string) (*sessdom.Session, error) {
	s, err := uc.Get(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if err := s.SetTokens(accessToken, refreshToken, uc.clock.Now()); err != nil {
		return nil, ErrSessionInvalidArgument
	}
	if err := uc.repo.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Logout drops the tokens and the login flag; the guest id and language stay.
func (uc *SessionUsecase) Logout(ctx context.Context, guestID string) (*sessdom.Session, error) {
	s, err := uc.Get(ctx, guestID)
	if err != nil {
		return nil, err
	}
	s.ClearTokens(uc.clock.Now())
	if err := uc.repo.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// SetLanguage stores the chosen UI language (unknown values fall back to en).
func (uc *SessionUsecase) SetLanguage(ctx context.Context, guestID, language string) (*sessdom.Session, error) {
	s, err := uc.Get(ctx, guestID)
	if err != nil {
		return nil, err
	}
	s.SetLanguage(language, uc.clock.Now())
	if err := uc.repo.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
