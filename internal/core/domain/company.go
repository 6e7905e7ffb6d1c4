package domain

import (
	"errors"
	"time"
)

var (
	ErrCompanyExists = errors.New("company already exists")
	// ErrCompanyNotFound covers both a missing record and a record owned by a
	// different account; callers are never told which.
	ErrCompanyNotFound = errors.New("company not found")
)

// Company is a company record owned by exactly one account. The owner's
// email-uniqueness is scoped to OwnerID, not global.
type Company struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"-"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	Postcode  string    `json:"postcode"`
	CreatedAt time.Time `json:"createdAt"`
}
