// internal/adapters/out/db/session_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"voltmart/internal/domain/i18n"
	sessdom "voltmart/internal/domain/session"
)

// SessionRepositoryPG implements session.Repository on PostgreSQL.
//
// Table:
//
//	CREATE TABLE sessions (
//	  guest_id      TEXT PRIMARY KEY,
//	  access_token  TEXT NOT NULL DEFAULT '',
//	  refresh_token TEXT NOT NULL DEFAULT '',
//	  logged_in     BOOLEAN NOT NULL DEFAULT FALSE,
//	  language      TEXT NOT NULL DEFAULT 'en',
//	  created_at    TIMESTAMPTZ NOT NULL,
//	  updated_at    TIMESTAMPTZ NOT NULL
//	);
type SessionRepositoryPG struct {
	DB *sql.DB
}

func NewSessionRepositoryPG(db *sql.DB) *SessionRepositoryPG {
	return &SessionRepositoryPG{DB: db}
}

// GetByGuestID returns (nil, nil) if not found (nil policy).
func (r *SessionRepositoryPG) GetByGuestID(ctx context.Context, guestID string) (*sessdom.Session, error) {
	if r == nil || r.DB == nil {
		return nil, errors.New("session_repository_pg: db is nil")
	}

	gid := strings.TrimSpace(guestID)
	if gid == "" {
		return nil, errors.New("session_repository_pg: guestID is empty")
	}

	const q = `
SELECT
  guest_id, access_token, refresh_token, logged_in, language, created_at, updated_at
FROM sessions
WHERE guest_id = $1
LIMIT 1`

	var s sessdom.Session
	var language string
	err := r.DB.QueryRowContext(ctx, q, gid).Scan(
		&s.GuestID,
		&s.AccessToken,
		&s.RefreshToken,
		&s.LoggedIn,
		&language,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	s.Language = i18n.ParseLocale(language)
	return &s, nil
}

// Upsert writes the full session row keyed by guest_id.
func (r *SessionRepositoryPG) Upsert(ctx context.Context, s *sessdom.Session) error {
	if r == nil || r.DB == nil {
		return errors.New("session_repository_pg: db is nil")
	}
	if s == nil {
		return errors.New("session_repository_pg: session is nil")
	}

	gid := strings.TrimSpace(s.GuestID)
	if gid == "" {
		return errors.New("session_repository_pg: session.GuestID is empty")
	}

	const q = `
INSERT INTO sessions (
  guest_id, access_token, refresh_token, logged_in, language, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (guest_id) DO UPDATE SET
  access_token  = EXCLUDED.access_token,
  refresh_token = EXCLUDED.refresh_token,
  logged_in     = EXCLUDED.logged_in,
  language      = EXCLUDED.language,
  updated_at    = EXCLUDED.updated_at`

	_, err := r.DB.ExecContext(ctx, q,
		gid,
		s.AccessToken,
		s.RefreshToken,
		s.LoggedIn,
		string(s.Language),
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *SessionRepositoryPG) DeleteByGuestID(ctx context.Context, guestID string) error {
	if r == nil || r.DB == nil {
		return errors.New("session_repository_pg: db is nil")
	}

	gid := strings.TrimSpace(guestID)
	if gid == "" {
		return errors.New("session_repository_pg: guestID is empty")
	}

	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE guest_id = $1`, gid)
	return err
}
