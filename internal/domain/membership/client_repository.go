package membership

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/shared"
)

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	// FindByID finds a client by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)

	// FindByCINIT finds a client by its CI/NIT number
	FindByCINIT(ctx context.Context, cinit string) (*Client, error)

	// FindAll finds all clients matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)

	// FindByStatus finds clients by cached status label
	FindByStatus(ctx context.Context, status ClientStatus, filter shared.Filter) ([]Client, error)

	// FindByPlan finds clients assigned to a plan
	FindByPlan(ctx context.Context, planID uuid.UUID, filter shared.Filter) ([]Client, error)

	// FindExpiringBefore finds unfrozen clients whose window ends before the given instant
	FindExpiringBefore(ctx context.Context, deadline time.Time, filter shared.Filter) ([]Client, error)

	// Save creates or updates a client
	Save(ctx context.Context, client *Client) error

	// SaveWithLock saves a client with optimistic locking (version check)
	// Returns error if the version has changed (concurrent modification)
	SaveWithLock(ctx context.Context, client *Client) error

	// Delete deletes a client
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts clients matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts clients by cached status label
	CountByStatus(ctx context.Context, status ClientStatus) (int64, error)

	// CountByPlan counts clients assigned to a plan
	CountByPlan(ctx context.Context, planID uuid.UUID) (int64, error)

	// ExistsByCINIT checks if a client with the given CI/NIT exists
	ExistsByCINIT(ctx context.Context, cinit string) (bool, error)
}
