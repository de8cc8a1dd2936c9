package membership

import (
	"strings"
	"time"

	"github.com/gympro/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Plan represents a membership plan sold at the front desk
type Plan struct {
	shared.BaseAggregateRoot
	Name         string
	Price        decimal.Decimal
	DurationDays int
	Description  string
	Active       bool
}

// NewPlan creates a new membership plan
func NewPlan(name string, price decimal.Decimal, durationDays int, description string) (*Plan, error) {
	if err := validatePlanName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Plan price cannot be negative")
	}
	if durationDays <= 0 {
		return nil, shared.NewDomainError("INVALID_PLAN_DURATION", "Plan duration must be at least one day")
	}

	return &Plan{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Price:             price,
		DurationDays:      durationDays,
		Description:       description,
		Active:            true,
	}, nil
}

// Update updates the plan's details
func (p *Plan) Update(name string, price decimal.Decimal, durationDays int, description string) error {
	if err := validatePlanName(name); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Plan price cannot be negative")
	}
	if durationDays <= 0 {
		return shared.NewDomainError("INVALID_PLAN_DURATION", "Plan duration must be at least one day")
	}

	p.Name = strings.TrimSpace(name)
	p.Price = price
	p.DurationDays = durationDays
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Deactivate retires the plan so it can no longer be assigned
func (p *Plan) Deactivate() error {
	if !p.Active {
		return shared.NewDomainError("ALREADY_INACTIVE", "Plan is already inactive")
	}

	p.Active = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Activate makes the plan assignable again
func (p *Plan) Activate() error {
	if p.Active {
		return shared.NewDomainError("ALREADY_ACTIVE", "Plan is already active")
	}

	p.Active = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsActive returns true if the plan can be assigned to clients
func (p *Plan) IsActive() bool {
	return p.Active
}

// WindowFrom returns the membership window a renewal at the given
// instant would produce
func (p *Plan) WindowFrom(now time.Time) (time.Time, time.Time) {
	return now, now.Add(time.Duration(p.DurationDays) * 24 * time.Hour)
}

func validatePlanName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Plan name cannot be empty")
	}
	if len(trimmed) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Plan name cannot exceed 100 characters")
	}
	return nil
}
