// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

// Seat limits applied when an organization is first created.
const (
	PersonalSeatLimit   = 1
	DefaultOrgSeatLimit = 5
)

// Plan describes a billing plan. The catalog is immutable configuration,
// passed explicitly into the components that need it.
type Plan struct {
	Name      string
	SeatLimit int
}

type PlanCatalog struct {
	plans       map[string]Plan
	defaultPlan string
}

// Get returns the plan for name, falling back to the default plan for
// unknown names so a stale billing payload cannot zero out a seat limit.
func (c PlanCatalog) Get(name string) Plan {
	if p, ok := c.plans[name]; ok {
		return p
	}
	return c.plans[c.defaultPlan]
}

func (c PlanCatalog) DefaultPlan() Plan {
	return c.plans[c.defaultPlan]
}

func NewPlanCatalog() PlanCatalog {
	return PlanCatalog{
		defaultPlan: "free",
		plans: map[string]Plan{
			"free":     {Name: "free", SeatLimit: DefaultOrgSeatLimit},
			"standard": {Name: "standard", SeatLimit: 10},
			"premium":  {Name: "premium", SeatLimit: 50},
		},
	}
}
