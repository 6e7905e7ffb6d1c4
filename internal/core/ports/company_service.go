package ports

import (
	"context"
	"time"

	"github.com/staffhub/agency-api/internal/core/domain"
)

// CompanyInput carries the writable fields of a company record. OwnerID is
// never part of the input; it always comes from the authenticated identity.
type CompanyInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Country  string
	City     string
	Postcode string
}

type CompanyService interface {
	Add(ctx context.Context, ownerID string, input CompanyInput) (*domain.Company, error)
	List(ctx context.Context, ownerID string) ([]*domain.Company, error)
	Update(ctx context.Context, ownerID, id string, input CompanyInput) (*domain.Company, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// WorkerInput carries the writable fields of a worker record.
type WorkerInput struct {
	Name        string
	Email       string
	Phone       string
	Role        string
	Department  string
	Address     string
	JoiningDate time.Time
}

type WorkerService interface {
	Add(ctx context.Context, ownerID string, input WorkerInput) (*domain.Worker, error)
	List(ctx context.Context, ownerID string) ([]*domain.Worker, error)
	Update(ctx context.Context, ownerID, id string, input WorkerInput) (*domain.Worker, error)
	Delete(ctx context.Context, ownerID, id string) error
}
