package membership

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/shared"
)

// CheckInRepository defines the interface for check-in log persistence
type CheckInRepository interface {
	// FindByID finds a check-in by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*CheckIn, error)

	// FindByClient finds check-ins for a client, newest first
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]CheckIn, error)

	// FindBetween finds check-ins in the half-open interval [from, to)
	FindBetween(ctx context.Context, from, to time.Time, filter shared.Filter) ([]CheckIn, error)

	// Save persists a check-in record
	Save(ctx context.Context, checkIn *CheckIn) error

	// Count counts check-ins matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountBetween counts check-ins in the half-open interval [from, to)
	// honoring the filter's search and field predicates
	CountBetween(ctx context.Context, from, to time.Time, filter shared.Filter) (int64, error)

	// CountByClientBetween counts a client's check-ins in [from, to)
	CountByClientBetween(ctx context.Context, clientID uuid.UUID, from, to time.Time) (int64, error)
}
