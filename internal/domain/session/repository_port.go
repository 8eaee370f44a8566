// internal/domain/session/repository_port.go
package session

import "context"

// Repository is a persistence port for visitor sessions (Postgres).
type Repository interface {
	// GetByGuestID returns (nil, nil) when the session does not exist.
	GetByGuestID(ctx context.Context, guestID string) (*Session, error)

	// Upsert saves the session (create or update).
	Upsert(ctx context.Context, s *Session) error

	// DeleteByGuestID deletes the session.
	DeleteByGuestID(ctx context.Context, guestID string) error
}
