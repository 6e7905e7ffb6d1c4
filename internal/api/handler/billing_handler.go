package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/agency-api/internal/api/metrics"
	"github.com/staffhub/agency-api/internal/core/ports"
)

// BillingHandler serves the subscription packages and opens checkout sessions
// with the external payment provider.
type BillingHandler struct {
	service ports.BillingService
}

func NewBillingHandler(service ports.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

type checkoutRequest struct {
	PlanID string `json:"planId" validate:"required"`
}

type checkoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// ListPlans returns the available subscription tiers.
//
// @Summary      List subscription packages
// @Tags         packages
// @Produce      json
// @Success      200  {array}  domain.Plan
// @Router       /api/packages/list [get]
func (h *BillingHandler) ListPlans(c echo.Context) error {
	plans, err := h.service.ListPlans(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

// Checkout asks the payment provider for a checkout session and returns its
// URL. Payment itself happens entirely on the provider's side.
//
// @Summary      Create a checkout session
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      checkoutRequest  true  "Selected package"
// @Success      200   {object}  checkoutResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/packages/checkout [post]
func (h *BillingHandler) Checkout(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.service.Checkout(c.Request().Context(), ownerID, req.PlanID)
	if err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.CheckoutSessionsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, checkoutResponse{SessionID: sess.SessionID, URL: sess.URL})
}
