package ports

import (
	"context"

	"github.com/staffhub/agency-api/internal/core/domain"
)

// RegisterInput carries all fields submitted on the registration form.
type RegisterInput struct {
	Username string
	Email    string
	Phone    string
	Address  string
	Postcode string
	Password string
	UserType string
}

// LoginResult is returned on successful login: a signed bearer token, the
// server-side session created alongside it, and a sanitized user summary.
type LoginResult struct {
	Token   string
	Session *domain.Session
	User    *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	// UsernameExists backs the registration form's availability probe.
	UsernameExists(ctx context.Context, username string) (bool, error)
	CurrentUser(ctx context.Context, sessionID string) (*domain.User, error)
}
