package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/staffhub/agency-api/internal/core/domain"
	"github.com/staffhub/agency-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by username
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[created.Username] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubSessionStore struct {
	sessions map[string]*domain.Session
	nextID   int
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Create(_ context.Context, user *domain.User) (*domain.Session, error) {
	s.nextID++
	sess := &domain.Session{
		ID:        fmt.Sprintf("sess_%d", s.nextID),
		UserID:    user.ID,
		Username:  user.Username,
		UserType:  user.UserType,
		CreatedAt: time.Now().UTC(),
	}
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	if sess, ok := s.sessions[id]; ok {
		return sess, nil
	}
	return nil, domain.ErrNoActiveSession
}

func (s *stubSessionStore) Destroy(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func newTestAuthService() (*AuthService, *stubUserRepo, *stubSessionStore) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := NewAuthService(repo, NewBcryptHasher(), sessions, "secret", time.Hour, zerolog.Nop())
	return svc, repo, sessions
}

func registerInput(username, email string) ports.RegisterInput {
	return ports.RegisterInput{
		Username: username,
		Email:    email,
		Phone:    "1",
		Address:  "addr",
		Postcode: "00000",
		Password: "password1",
		UserType: domain.UserTypeIndividual,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, _ := newTestAuthService()

	user, err := svc.Register(context.Background(), registerInput("alice", "a@x.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if user.PasswordHash == "password1" {
		t.Fatalf("expected password to be hashed")
	}
	if user.UserType != domain.UserTypeIndividual {
		t.Fatalf("unexpected user type: %s", user.UserType)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, _, _ := newTestAuthService()

	input := registerInput("bob", "b@x.com")
	input.Phone = ""
	if _, err := svc.Register(context.Background(), input); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestAuthService_Register_InvalidUserType(t *testing.T) {
	svc, _, _ := newTestAuthService()

	input := registerInput("bob", "b@x.com")
	input.UserType = "agency"
	if _, err := svc.Register(context.Background(), input); err != domain.ErrInvalidUserType {
		t.Fatalf("expected ErrInvalidUserType, got %v", err)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), registerInput("bob", "b@x.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	// Same username, everything else different.
	input := registerInput("bob", "other@x.com")
	input.Password = "different"
	input.UserType = domain.UserTypeCompany
	if _, err := svc.Register(context.Background(), input); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Register_DuplicateUsernameWinsOverValidation(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), registerInput("alice", "a@x.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// The username is taken AND the rest of the form is broken. Uniqueness
	// must answer first.
	input := ports.RegisterInput{
		Username: "alice",
		Email:    "other@x.com",
		Password: "x",
		UserType: "agency",
	}
	if _, err := svc.Register(context.Background(), input); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmailWinsOverValidation(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), registerInput("alice", "a@x.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	input := registerInput("bob", "a@x.com")
	input.Phone = ""
	input.Password = "x"
	if _, err := svc.Register(context.Background(), input); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()

	input := registerInput("bob", "b@x.com")
	input.Password = "abc"
	if _, err := svc.Register(context.Background(), input); err != domain.ErrPasswordTooShort {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestAuthService_Register_MalformedEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	input := registerInput("bob", "not-an-email")
	if _, err := svc.Register(context.Background(), input); err != domain.ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), registerInput("bob", "b@x.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput("carol", "b@x.com")); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, sessions := newTestAuthService()

	if _, err := svc.Register(context.Background(), registerInput("alice", "a@x.com")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "alice", "password1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.User.Username != "alice" {
		t.Fatalf("unexpected user: %+v", result.User)
	}
	if _, ok := sessions.sessions[result.Session.ID]; !ok {
		t.Fatalf("expected session to be stored")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "alice" {
		t.Fatalf("expected username claim, got %v", claims["username"])
	}
	if claims["user_type"] != domain.UserTypeIndividual {
		t.Fatalf("expected user_type claim, got %v", claims["user_type"])
	}
	if claims["sub"] != result.User.ID {
		t.Fatalf("expected sub claim %q, got %v", result.User.ID, claims["sub"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, _ = svc.Register(context.Background(), registerInput("dave", "d@x.com"))
	if _, err := svc.Login(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Logout_DestroysSessionOnly(t *testing.T) {
	svc, _, sessions := newTestAuthService()

	_, _ = svc.Register(context.Background(), registerInput("alice", "a@x.com"))
	result, err := svc.Login(context.Background(), "alice", "password1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), result.Session.ID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, ok := sessions.sessions[result.Session.ID]; ok {
		t.Fatalf("expected session to be destroyed")
	}

	// The bearer token issued before logout is still structurally valid:
	// there is no revocation list.
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token should remain valid after logout: %v", err)
	}
}

func TestAuthService_UsernameExists(t *testing.T) {
	svc, _, _ := newTestAuthService()

	exists, err := svc.UsernameExists(context.Background(), "alice")
	if err != nil || exists {
		t.Fatalf("expected alice to not exist, got exists=%v err=%v", exists, err)
	}

	_, _ = svc.Register(context.Background(), registerInput("alice", "a@x.com"))

	exists, err = svc.UsernameExists(context.Background(), "alice")
	if err != nil || !exists {
		t.Fatalf("expected alice to exist, got exists=%v err=%v", exists, err)
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, _ = svc.Register(context.Background(), registerInput("alice", "a@x.com"))
	result, err := svc.Login(context.Background(), "alice", "password1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	user, err := svc.CurrentUser(context.Background(), result.Session.ID)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.CurrentUser(context.Background(), "unknown-session"); err != domain.ErrNoActiveSession {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}
