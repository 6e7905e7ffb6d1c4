package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/staffhub/agency-api/internal/core/domain"
	"github.com/staffhub/agency-api/internal/core/ports"
)

type stubCompanyRepo struct {
	companies map[string]*domain.Company // keyed by id
	nextID    int
}

func newStubCompanyRepo() *stubCompanyRepo {
	return &stubCompanyRepo{companies: make(map[string]*domain.Company)}
}

func (r *stubCompanyRepo) Create(_ context.Context, company *domain.Company) (*domain.Company, error) {
	for _, c := range r.companies {
		if c.OwnerID == company.OwnerID && c.Email == company.Email {
			return nil, domain.ErrCompanyExists
		}
	}
	r.nextID++
	clone := *company
	clone.ID = fmt.Sprintf("company_%d", r.nextID)
	r.companies[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCompanyRepo) List(_ context.Context, ownerID string) ([]*domain.Company, error) {
	var out []*domain.Company
	for _, c := range r.companies {
		if c.OwnerID == ownerID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCompanyRepo) Update(_ context.Context, ownerID, id string, company *domain.Company) (*domain.Company, error) {
	existing, ok := r.companies[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, domain.ErrCompanyNotFound
	}
	company.ID = id
	company.OwnerID = ownerID
	company.CreatedAt = existing.CreatedAt
	clone := *company
	r.companies[id] = &clone
	out := clone
	return &out, nil
}

func (r *stubCompanyRepo) Delete(_ context.Context, ownerID, id string) error {
	existing, ok := r.companies[id]
	if !ok || existing.OwnerID != ownerID {
		return domain.ErrCompanyNotFound
	}
	delete(r.companies, id)
	return nil
}

func companyInput(name, email string) ports.CompanyInput {
	return ports.CompanyInput{
		Name:     name,
		Email:    email,
		Phone:    "555-0100",
		Address:  "1 Main St",
		Country:  "NL",
		City:     "Amsterdam",
		Postcode: "1011",
	}
}

func TestCompanyService_AddAndList(t *testing.T) {
	svc := NewCompanyService(newStubCompanyRepo(), zerolog.Nop())

	created, err := svc.Add(context.Background(), "owner_1", companyInput("Acme", "acme@x.com"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if created.ID == "" || created.OwnerID != "owner_1" {
		t.Fatalf("unexpected company: %+v", created)
	}

	companies, err := svc.List(context.Background(), "owner_1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(companies) != 1 || companies[0].Name != "Acme" {
		t.Fatalf("unexpected list: %+v", companies)
	}
}

func TestCompanyService_Add_DuplicatePerOwner(t *testing.T) {
	svc := NewCompanyService(newStubCompanyRepo(), zerolog.Nop())

	if _, err := svc.Add(context.Background(), "owner_1", companyInput("Acme", "acme@x.com")); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	if _, err := svc.Add(context.Background(), "owner_1", companyInput("Acme Two", "acme@x.com")); err != domain.ErrCompanyExists {
		t.Fatalf("expected ErrCompanyExists, got %v", err)
	}
	// Another owner can reuse the same email.
	if _, err := svc.Add(context.Background(), "owner_2", companyInput("Acme", "acme@x.com")); err != nil {
		t.Fatalf("cross-owner Add failed: %v", err)
	}
}

func TestCompanyService_List_ScopedToOwner(t *testing.T) {
	svc := NewCompanyService(newStubCompanyRepo(), zerolog.Nop())

	_, _ = svc.Add(context.Background(), "owner_1", companyInput("Mine", "mine@x.com"))
	_, _ = svc.Add(context.Background(), "owner_2", companyInput("Theirs", "theirs@x.com"))

	companies, err := svc.List(context.Background(), "owner_1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(companies) != 1 || companies[0].Name != "Mine" {
		t.Fatalf("expected only owner_1 companies, got %+v", companies)
	}
}

func TestCompanyService_Update(t *testing.T) {
	svc := NewCompanyService(newStubCompanyRepo(), zerolog.Nop())

	created, _ := svc.Add(context.Background(), "owner_1", companyInput("Acme", "acme@x.com"))

	updated, err := svc.Update(context.Background(), "owner_1", created.ID, companyInput("Acme Renamed", "acme@x.com"))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Acme Renamed" {
		t.Fatalf("unexpected name: %s", updated.Name)
	}
}

func TestCompanyService_Update_ForeignOwnerLooksMissing(t *testing.T) {
	svc := NewCompanyService(newStubCompanyRepo(), zerolog.Nop())

	created, _ := svc.Add(context.Background(), "owner_1", companyInput("Acme", "acme@x.com"))

	if _, err := svc.Update(context.Background(), "owner_2", created.ID, companyInput("Hijack", "h@x.com")); err != domain.ErrCompanyNotFound {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestCompanyService_Delete(t *testing.T) {
	repo := newStubCompanyRepo()
	svc := NewCompanyService(repo, zerolog.Nop())

	created, _ := svc.Add(context.Background(), "owner_1", companyInput("Acme", "acme@x.com"))

	if err := svc.Delete(context.Background(), "owner_1", created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(repo.companies) != 0 {
		t.Fatalf("expected company to be removed")
	}
	if err := svc.Delete(context.Background(), "owner_1", created.ID); err != domain.ErrCompanyNotFound {
		t.Fatalf("expected ErrCompanyNotFound on second delete, got %v", err)
	}
}
