package ports

import (
	"context"

	"github.com/staffhub/agency-api/internal/core/domain"
)

// CompanyRepository defines owner-scoped persistence for company records.
// Every operation filters by ownerID; a record owned by another account is
// indistinguishable from a missing one.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	List(ctx context.Context, ownerID string) ([]*domain.Company, error)
	Update(ctx context.Context, ownerID, id string, company *domain.Company) (*domain.Company, error)
	Delete(ctx context.Context, ownerID, id string) error
}
