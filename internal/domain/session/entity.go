// internal/domain/session/entity.go
package session

import (
	"errors"
	"strings"
	"time"

	"voltmart/internal/domain/i18n"
)

var ErrInvalidSession = errors.New("session: invalid")

// Session is the explicit per-visitor client state: auth tokens, login flag
// and chosen UI language. It replaces ambient browser-storage keys with an
// injected store so components read and write it through defined operations.
type Session struct {
	// GuestID identifies the visitor (also the guest cart docId).
	GuestID string

	AccessToken  string
	RefreshToken string
	LoggedIn     bool

	Language i18n.Locale

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession creates a fresh guest session.
func NewSession(guestID string, now time.Time) (*Session, error) {
	gid := strings.TrimSpace(guestID)
	if gid == "" {
		return nil, ErrInvalidSession
	}
	return &Session{
		GuestID:   gid,
		Language:  i18n.DefaultLocale,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetTokens stores the auth token pair and marks the session logged in.
func (s *Session) SetTokens(access, refresh string, now time.Time) error {
	if s == nil {
		return ErrInvalidSession
	}
	access = strings.TrimSpace(access)
	refresh = strings.TrimSpace(refresh)
	if access == "" || refresh == "" {
		return ErrInvalidSession
	}
	s.AccessToken = access
	s.RefreshToken = refresh
	s.LoggedIn = true
	s.UpdatedAt = now
	return nil
}

// ClearTokens drops the token pair and the login flag (logout).
func (s *Session) ClearTokens(now time.Time) {
	if s == nil {
		return
	}
	s.AccessToken = ""
	s.RefreshToken = ""
	s.LoggedIn = false
	s.UpdatedAt = now
}

// SetLanguage stores the chosen UI language.
func (s *Session) SetLanguage(raw string, now time.Time) {
	if s == nil {
		return
	}
	s.Language = i18n.ParseLocale(raw)
	s.UpdatedAt = now
}
