package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffhub/agency-api/internal/core/domain"
	"github.com/staffhub/agency-api/internal/core/ports"
)

// WorkerService implements owner-scoped CRUD on worker records.
type WorkerService struct {
	repo   ports.WorkerRepository
	logger zerolog.Logger
}

func NewWorkerService(repo ports.WorkerRepository, logger zerolog.Logger) *WorkerService {
	return &WorkerService{repo: repo, logger: logger}
}

func (s *WorkerService) Add(ctx context.Context, ownerID string, input ports.WorkerInput) (*domain.Worker, error) {
	worker := &domain.Worker{
		OwnerID:     ownerID,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Role:        input.Role,
		Department:  input.Department,
		Address:     input.Address,
		JoiningDate: input.JoiningDate,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, worker)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("worker_id", created.ID).Str("owner_id", ownerID).Msg("worker added")
	return created, nil
}

func (s *WorkerService) List(ctx context.Context, ownerID string) ([]*domain.Worker, error) {
	return s.repo.List(ctx, ownerID)
}

func (s *WorkerService) Update(ctx context.Context, ownerID, id string, input ports.WorkerInput) (*domain.Worker, error) {
	updated, err := s.repo.Update(ctx, ownerID, id, &domain.Worker{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Role:        input.Role,
		Department:  input.Department,
		Address:     input.Address,
		JoiningDate: input.JoiningDate,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("worker_id", id).Str("owner_id", ownerID).Msg("worker updated")
	return updated, nil
}

func (s *WorkerService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.logger.Info().Str("worker_id", id).Str("owner_id", ownerID).Msg("worker deleted")
	return nil
}
