package ports

import (
	"context"

	"github.com/staffhub/agency-api/internal/core/domain"
)

// SessionStore is the server-side session state behind the session cookie.
// Implementations are backed by a shared key-value store so multiple
// instances can resolve the same cookie.
type SessionStore interface {
	// Create mints a new session for user and returns it with ID populated.
	Create(ctx context.Context, user *domain.User) (*domain.Session, error)
	// Get resolves a session handle; returns domain.ErrNoActiveSession when
	// the handle is unknown or expired.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Destroy(ctx context.Context, id string) error
}
