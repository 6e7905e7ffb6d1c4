package ports

import (
	"context"

	"github.com/staffhub/agency-api/internal/core/domain"
)

// UserRepository defines persistence for registered accounts. Usernames and
// emails are each globally unique; lookups are exact-match.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
