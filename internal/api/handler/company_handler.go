package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/agency-api/internal/api/metrics"
	"github.com/staffhub/agency-api/internal/core/ports"
)

// CompanyHandler handles owner-scoped CRUD on company records. The owner is
// always the authenticated identity; it never comes from the payload.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Add creates a company record for the calling account.
//
// @Summary      Add a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      companyRequest  true  "Company details"
// @Success      201   {object}  domain.Company
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/companies/add [post]
func (h *CompanyHandler) Add(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.service.Add(c.Request().Context(), ownerID, companyInput(req))
	if err != nil {
		return err
	}

	metrics.ResourceOpsTotal.WithLabelValues("company", "add").Inc()
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Company successfully added!",
		"company": company,
	})
}

// List returns the calling account's companies and nobody else's.
//
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Company
// @Failure      401  {object}  messageResponse
// @Router       /api/companies/list [get]
func (h *CompanyHandler) List(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	companies, err := h.service.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	metrics.ResourceOpsTotal.WithLabelValues("company", "list").Inc()
	return c.JSON(http.StatusOK, companies)
}

// Update rewrites a company record the calling account owns.
//
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Company id"
// @Param        body  body      companyRequest  true  "Company details"
// @Success      200   {object}  domain.Company
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.service.Update(c.Request().Context(), ownerID, c.Param("id"), companyInput(req))
	if err != nil {
		return err
	}

	metrics.ResourceOpsTotal.WithLabelValues("company", "update").Inc()
	return c.JSON(http.StatusOK, company)
}

// Delete removes a company record the calling account owns.
//
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Company id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ownerID, c.Param("id")); err != nil {
		return err
	}

	metrics.ResourceOpsTotal.WithLabelValues("company", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Company deleted successfully"})
}

func companyInput(req companyRequest) ports.CompanyInput {
	return ports.CompanyInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Country:  req.Country,
		City:     req.City,
		Postcode: req.Postcode,
	}
}
