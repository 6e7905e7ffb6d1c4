package domain

import "errors"

var ErrPlanNotFound = errors.New("package not found")

// Plan is a subscription package offered to accounts. Pricing and checkout
// are handled by an external payment provider; a Plan only carries what the
// client renders.
type Plan struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

// DefaultPlans returns the built-in tiers served when the packages
// collection has not been seeded.
func DefaultPlans() []Plan {
	return []Plan{
		{
			ID:       "basic",
			Title:    "Basic Version",
			Price:    "€14.95/month",
			Features: []string{"Worker management", "Company directory", "Email support", "Single account"},
		},
		{
			ID:       "premium",
			Title:    "Premium Version",
			Price:    "€29.95/month",
			Features: []string{"Everything in Basic", "Unlimited records", "Priority support", "Calendar planning"},
		},
	}
}
