package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/agency-api/internal/core/domain"
	"github.com/staffhub/agency-api/internal/core/ports"
)

type stubWorkerService struct {
	added     []ports.WorkerInput
	workers   []*domain.Worker
	deleteErr error
	deleted   []string
}

func (s *stubWorkerService) Add(_ context.Context, ownerID string, input ports.WorkerInput) (*domain.Worker, error) {
	s.added = append(s.added, input)
	return &domain.Worker{ID: "worker_1", OwnerID: ownerID, Name: input.Name, JoiningDate: input.JoiningDate}, nil
}

func (s *stubWorkerService) List(_ context.Context, ownerID string) ([]*domain.Worker, error) {
	return s.workers, nil
}

func (s *stubWorkerService) Update(_ context.Context, ownerID, id string, input ports.WorkerInput) (*domain.Worker, error) {
	return &domain.Worker{ID: id, OwnerID: ownerID, Name: input.Name, Role: input.Role}, nil
}

func (s *stubWorkerService) Delete(_ context.Context, ownerID, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

const validWorkerBody = `{
	"name": "Jan",
	"email": "jan@x.com",
	"phone": "555-0200",
	"role": "electrician",
	"department": "field",
	"address": "2 Side St",
	"joiningDate": "2026-03-01"
}`

func TestWorkerHandler_Add_BareDate(t *testing.T) {
	svc := &stubWorkerService{}
	h := NewWorkerHandler(svc)

	c, rec := authedContext(http.MethodPost, "/api/workers/add", validWorkerBody)
	if err := h.Add(c); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if len(svc.added) != 1 || !svc.added[0].JoiningDate.Equal(want) {
		t.Fatalf("joining date not parsed: %+v", svc.added)
	}
}

func TestWorkerHandler_Add_RFC3339Timestamp(t *testing.T) {
	svc := &stubWorkerService{}
	h := NewWorkerHandler(svc)

	body := `{
		"name": "Jan",
		"email": "jan@x.com",
		"phone": "555-0200",
		"role": "electrician",
		"department": "field",
		"address": "2 Side St",
		"joiningDate": "2026-03-01T09:30:00+02:00"
	}`
	c, _ := authedContext(http.MethodPost, "/api/workers/add", body)
	if err := h.Add(c); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	want := time.Date(2026, 3, 1, 7, 30, 0, 0, time.UTC)
	if !svc.added[0].JoiningDate.Equal(want) {
		t.Fatalf("expected %v, got %v", want, svc.added[0].JoiningDate)
	}
}

func TestWorkerHandler_Add_BadDate(t *testing.T) {
	svc := &stubWorkerService{}
	h := NewWorkerHandler(svc)

	body := `{
		"name": "Jan",
		"email": "jan@x.com",
		"phone": "555-0200",
		"role": "electrician",
		"department": "field",
		"address": "2 Side St",
		"joiningDate": "01/03/2026"
	}`
	c, _ := authedContext(http.MethodPost, "/api/workers/add", body)
	err := h.Add(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if len(svc.added) != 0 {
		t.Fatalf("service should not be called on bad date")
	}
}

func TestWorkerHandler_Add_Unauthenticated(t *testing.T) {
	h := NewWorkerHandler(&stubWorkerService{})

	c, _ := newTestContext(http.MethodPost, "/api/workers/add", validWorkerBody)
	err := h.Add(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestWorkerHandler_List(t *testing.T) {
	svc := &stubWorkerService{workers: []*domain.Worker{{ID: "worker_1", Name: "Jan"}}}
	h := NewWorkerHandler(svc)

	c, rec := authedContext(http.MethodGet, "/api/workers/list", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	var got []domain.Worker
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Jan" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestWorkerHandler_Update(t *testing.T) {
	h := NewWorkerHandler(&stubWorkerService{})

	c, rec := authedContext(http.MethodPut, "/api/workers/worker_1", validWorkerBody)
	c.SetParamNames("id")
	c.SetParamValues("worker_1")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	var got domain.Worker
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.ID != "worker_1" || got.Role != "electrician" {
		t.Fatalf("unexpected worker: %+v", got)
	}
}

func TestWorkerHandler_Delete_NotFoundPropagates(t *testing.T) {
	h := NewWorkerHandler(&stubWorkerService{deleteErr: domain.ErrWorkerNotFound})

	c, _ := authedContext(http.MethodDelete, "/api/workers/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	if err := h.Delete(c); !errors.Is(err, domain.ErrWorkerNotFound) {
		t.Fatalf("expected ErrWorkerNotFound, got %v", err)
	}
}
