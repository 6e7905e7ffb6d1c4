package domain

import (
	"errors"
	"time"
)

var (
	ErrNoActiveSession = errors.New("no active session")
	ErrSessionDestroy  = errors.New("error destroying session")
)

// Session is the server-side record behind a session cookie. It is a
// capability reference back to exactly one user; destroying it does not
// revoke bearer tokens already issued for the same login.
type Session struct {
	ID        string    `json:"-"`
	UserID    string    `json:"id"`
	Username  string    `json:"username"`
	UserType  string    `json:"userType"`
	CreatedAt time.Time `json:"-"`
}
