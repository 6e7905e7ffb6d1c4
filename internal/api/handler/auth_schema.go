package handler

import "github.com/staffhub/agency-api/internal/core/domain"

// messageResponse is the standard envelope for plain-message replies and all
// 4xx/5xx bodies.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request / Response types ---

// registerRequest carries no validate tags: the auth service validates the
// fields itself so its uniqueness checks can run first.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Postcode string `json:"postcode"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	// UserType is accepted for backwards compatibility with older clients but
	// is informational only; the stored account kind is authoritative.
	UserType string `json:"userType,omitempty"`
}

// userSummary is the sanitized identity returned on login and session checks.
// It never carries the password hash.
type userSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	UserType string `json:"userType"`
}

type loginResponse struct {
	Token   string      `json:"token"`
	Message string      `json:"message"`
	User    userSummary `json:"user"`
}

type checkUsernameResponse struct {
	Exists bool `json:"exists"`
}

type meResponse struct {
	User *domain.User `json:"user"`
}
