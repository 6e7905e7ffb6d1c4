package domain

import (
	"errors"
	"time"
)

var (
	ErrWorkerExists = errors.New("worker already exists")
	// ErrWorkerNotFound deliberately conflates "absent" and "owned by someone
	// else", mirroring ErrCompanyNotFound.
	ErrWorkerNotFound = errors.New("worker not found")
)

// Worker is a staff record owned by exactly one account.
type Worker struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"-"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"`
	Department  string    `json:"department"`
	Address     string    `json:"address"`
	JoiningDate time.Time `json:"joiningDate"`
	CreatedAt   time.Time `json:"createdAt"`
}
