package models

import "healthme-client/internal/pkg/constvars"

type Plan struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Price       int64  `json:"price" validate:"gte=0"`
	Duration    string `json:"duration" validate:"required"`
	Description string `json:"description,omitempty"`
	Popular     bool   `json:"popular,omitempty"`
}

var planCatalog = []Plan{
	{
		ID:          constvars.PlanIDBasic,
		Name:        "Basic Plan",
		Price:       10000,
		Duration:    "per month",
		Description: "Get listed in the practitioner directory and receive appointment requests.",
	},
	{
		ID:          constvars.PlanIDPro,
		Name:        "Pro Plan",
		Price:       20000,
		Duration:    "per month",
		Description: "Priority listing, patient analytics and unlimited appointments.",
		Popular:     true,
	},
	{
		ID:          constvars.PlanIDAnnual,
		Name:        "Annual Plan",
		Price:       100000,
		Duration:    "per year",
		Description: "Everything in Pro, billed yearly.",
	},
}

// Plans returns a copy of the subscription plan catalog.
func Plans() []Plan {
	plans := make([]Plan, len(planCatalog))
	copy(plans, planCatalog)
	return plans
}

func FindPlan(id string) (Plan, bool) {
	for _, plan := range planCatalog {
		if plan.ID == id {
			return plan, true
		}
	}
	return Plan{}, false
}
