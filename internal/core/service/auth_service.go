package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/staffhub/agency-api/internal/core/domain"
	"github.com/staffhub/agency-api/internal/core/ports"
)

const minPasswordLen = 6

// AuthService implements registration, login and session interrogation.
type AuthService struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	sessions  ports.SessionStore
	validate  *validator.Validate
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		sessions:  sessions,
		validate:  validator.New(),
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register checks uniqueness, validates the submitted fields, hashes the
// password and persists the account. The uniqueness pre-checks run before any
// field validation: a taken username answers ErrUsernameTaken no matter what
// the rest of the form looks like. It deliberately creates no session: the
// user logs in separately after registering.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	// Exact-match pre-checks; the unique indexes are the backstop under
	// concurrent registration.
	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if input.Username == "" || input.Email == "" || input.Password == "" ||
		input.Phone == "" || input.Address == "" || input.Postcode == "" {
		return nil, domain.ErrMissingFields
	}
	if !domain.ValidUserType(input.UserType) {
		return nil, domain.ErrInvalidUserType
	}
	if len(input.Password) < minPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}
	if err := s.validate.Var(input.Email, "email"); err != nil {
		return nil, domain.ErrInvalidEmail
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Address:      input.Address,
		Postcode:     input.Postcode,
		UserType:     input.UserType,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("user_type", created.UserType).Msg("user registered")
	return created, nil
}

// Login authenticates by username only. The stored account kind is
// authoritative; any user type submitted with the form is ignored. On success
// a bearer token and a server-side session are issued together.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return &ports.LoginResult{Token: token, Session: sess, User: user}, nil
}

// Logout destroys the server-side session. Bearer tokens already issued stay
// valid until natural expiry; there is no revocation list.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		s.logger.Error().Err(err).Msg("failed to destroy session")
		return domain.ErrSessionDestroy
	}
	return nil
}

func (s *AuthService) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	return false, err
}

// CurrentUser resolves the session handle and loads the full account record,
// password hash excluded by serialization.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*domain.User, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, sess.UserID)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"username":  user.Username,
		"user_type": user.UserType,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
