package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/agency-api/internal/api/metrics"
	"github.com/staffhub/agency-api/internal/core/ports"
)

// WorkerHandler handles owner-scoped CRUD on worker records.
type WorkerHandler struct {
	service ports.WorkerService
}

func NewWorkerHandler(service ports.WorkerService) *WorkerHandler {
	return &WorkerHandler{service: service}
}

// Add creates a worker record for the calling account.
//
// @Summary      Add a worker
// @Tags         workers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      workerRequest  true  "Worker details"
// @Success      201   {object}  domain.Worker
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/workers/add [post]
func (h *WorkerHandler) Add(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	var req workerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := workerInput(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "joiningDate must be a valid date")
	}

	worker, err := h.service.Add(c.Request().Context(), ownerID, input)
	if err != nil {
		return err
	}

	metrics.ResourceOpsTotal.WithLabelValues("worker", "add").Inc()
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Worker added successfully!",
		"worker":  worker,
	})
}

// List returns the calling account's workers and nobody else's.
//
// @Summary      List workers
// @Tags         workers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Worker
// @Failure      401  {object}  messageResponse
// @Router       /api/workers/list [get]
func (h *WorkerHandler) List(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	workers, err := h.service.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	metrics.ResourceOpsTotal.WithLabelValues("worker", "list").Inc()
	return c.JSON(http.StatusOK, workers)
}

// Update rewrites a worker record the calling account owns.
//
// @Summary      Update a worker
// @Tags         workers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Worker id"
// @Param        body  body      workerRequest  true  "Worker details"
// @Success      200   {object}  domain.Worker
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/workers/{id} [put]
func (h *WorkerHandler) Update(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	var req workerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := workerInput(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "joiningDate must be a valid date")
	}

	worker, err := h.service.Update(c.Request().Context(), ownerID, c.Param("id"), input)
	if err != nil {
		return err
	}

	metrics.ResourceOpsTotal.WithLabelValues("worker", "update").Inc()
	return c.JSON(http.StatusOK, worker)
}

// Delete removes a worker record the calling account owns.
//
// @Summary      Delete a worker
// @Tags         workers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Worker id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/workers/{id} [delete]
func (h *WorkerHandler) Delete(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ownerID, c.Param("id")); err != nil {
		return err
	}

	metrics.ResourceOpsTotal.WithLabelValues("worker", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Worker deleted successfully."})
}

// workerInput parses the joining date, accepting a full RFC 3339 timestamp or
// a bare date.
func workerInput(req workerRequest) (ports.WorkerInput, error) {
	joined, err := time.Parse(time.RFC3339, req.JoiningDate)
	if err != nil {
		joined, err = time.Parse("2006-01-02", req.JoiningDate)
		if err != nil {
			return ports.WorkerInput{}, err
		}
	}

	return ports.WorkerInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Role:        req.Role,
		Department:  req.Department,
		Address:     req.Address,
		JoiningDate: joined.UTC(),
	}, nil
}
