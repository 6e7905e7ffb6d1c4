package domain

import (
	"errors"
	"time"
)

const (
	UserTypeCompany    = "company"
	UserTypeIndividual = "individual"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidUserType    = errors.New("invalid user type")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidEmail       = errors.New("email must be a valid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User models a registered account. UserType discriminates company accounts
// from individual accounts and is immutable after creation.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Postcode     string    `json:"postcode"`
	UserType     string    `json:"userType"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ValidUserType reports whether t is one of the recognised account kinds.
func ValidUserType(t string) bool {
	return t == UserTypeCompany || t == UserTypeIndividual
}
