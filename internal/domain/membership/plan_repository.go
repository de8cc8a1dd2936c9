package membership

import (
	"context"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/shared"
)

// PlanRepository defines the interface for plan persistence
type PlanRepository interface {
	// FindByID finds a plan by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Plan, error)

	// FindByName finds a plan by its name
	FindByName(ctx context.Context, name string) (*Plan, error)

	// FindAll finds all plans matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Plan, error)

	// FindActive finds all plans that can currently be assigned
	FindActive(ctx context.Context, filter shared.Filter) ([]Plan, error)

	// Save creates or updates a plan
	Save(ctx context.Context, plan *Plan) error

	// Delete deletes a plan
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts plans matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByName checks if a plan with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)
}
