package ports

import (
	"context"

	"github.com/staffhub/agency-api/internal/core/domain"
)

// WorkerRepository defines owner-scoped persistence for worker records,
// with the same scoping rules as CompanyRepository.
type WorkerRepository interface {
	Create(ctx context.Context, worker *domain.Worker) (*domain.Worker, error)
	List(ctx context.Context, ownerID string) ([]*domain.Worker, error)
	Update(ctx context.Context, ownerID, id string, worker *domain.Worker) (*domain.Worker, error)
	Delete(ctx context.Context, ownerID, id string) error
}
