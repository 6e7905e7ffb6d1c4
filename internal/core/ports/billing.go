package ports

import (
	"context"

	"github.com/staffhub/agency-api/internal/core/domain"
)

// PlanRepository reads subscription packages. Plans are reference data; there
// are no write operations through the API.
type PlanRepository interface {
	List(ctx context.Context) ([]domain.Plan, error)
	FindByID(ctx context.Context, id string) (*domain.Plan, error)
}

// CheckoutRequest is what the external payment provider needs to open a
// checkout session for the selected plan.
type CheckoutRequest struct {
	PlanID    string `json:"plan_id"`
	PlanTitle string `json:"plan_title"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
}

// CheckoutSession is the provider's answer: a URL the client opens to pay.
type CheckoutSession struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// CheckoutClient is the opaque call into the payment provider. Payment
// processing itself stays entirely on the provider's side.
type CheckoutClient interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
}

type BillingService interface {
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	// Checkout resolves the account's email itself; callers supply only the
	// authenticated identity and the selected plan.
	Checkout(ctx context.Context, userID, planID string) (*CheckoutSession, error)
}
