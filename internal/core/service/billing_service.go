package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/staffhub/agency-api/internal/core/domain"
	"github.com/staffhub/agency-api/internal/core/ports"
)

// BillingService exposes the subscription tiers and opens checkout sessions
// with the external payment provider. No payment logic lives here.
type BillingService struct {
	plans    ports.PlanRepository
	users    ports.UserRepository
	checkout ports.CheckoutClient
	logger   zerolog.Logger
}

func NewBillingService(plans ports.PlanRepository, users ports.UserRepository, checkout ports.CheckoutClient, logger zerolog.Logger) *BillingService {
	return &BillingService{plans: plans, users: users, checkout: checkout, logger: logger}
}

// ListPlans returns the seeded packages, falling back to the built-in tiers
// when the collection is empty.
func (s *BillingService) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return domain.DefaultPlans(), nil
	}
	return plans, nil
}

func (s *BillingService) Checkout(ctx context.Context, userID, planID string) (*ports.CheckoutSession, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.FindByID(ctx, planID)
	if errors.Is(err, domain.ErrPlanNotFound) {
		if plan = findDefaultPlan(planID); plan == nil {
			return nil, domain.ErrPlanNotFound
		}
	} else if err != nil {
		return nil, err
	}

	sess, err := s.checkout.CreateCheckoutSession(ctx, ports.CheckoutRequest{
		PlanID:    plan.ID,
		PlanTitle: plan.Title,
		UserID:    user.ID,
		Email:     user.Email,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("plan_id", planID).Msg("checkout session failed")
		return nil, err
	}

	s.logger.Info().Str("plan_id", planID).Str("user_id", userID).Msg("checkout session created")
	return sess, nil
}

func findDefaultPlan(id string) *domain.Plan {
	for _, p := range domain.DefaultPlans() {
		if p.ID == id {
			return &p
		}
	}
	return nil
}
