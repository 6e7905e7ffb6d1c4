package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffhub/agency-api/internal/core/domain"
	"github.com/staffhub/agency-api/internal/core/ports"
)

// CompanyService implements owner-scoped CRUD on company records. The owner
// always comes from the authenticated identity, never from the payload.
type CompanyService struct {
	repo   ports.CompanyRepository
	logger zerolog.Logger
}

func NewCompanyService(repo ports.CompanyRepository, logger zerolog.Logger) *CompanyService {
	return &CompanyService{repo: repo, logger: logger}
}

func (s *CompanyService) Add(ctx context.Context, ownerID string, input ports.CompanyInput) (*domain.Company, error) {
	company := &domain.Company{
		OwnerID:   ownerID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		Country:   input.Country,
		City:      input.City,
		Postcode:  input.Postcode,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, company)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("company_id", created.ID).Str("owner_id", ownerID).Msg("company added")
	return created, nil
}

func (s *CompanyService) List(ctx context.Context, ownerID string) ([]*domain.Company, error) {
	companies, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (s *CompanyService) Update(ctx context.Context, ownerID, id string, input ports.CompanyInput) (*domain.Company, error) {
	updated, err := s.repo.Update(ctx, ownerID, id, &domain.Company{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
		Country:  input.Country,
		City:     input.City,
		Postcode: input.Postcode,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("company_id", id).Str("owner_id", ownerID).Msg("company updated")
	return updated, nil
}

func (s *CompanyService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.logger.Info().Str("company_id", id).Str("owner_id", ownerID).Msg("company deleted")
	return nil
}
