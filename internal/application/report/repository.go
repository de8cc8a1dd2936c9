package report

import (
	"context"
	"time"
)

// Repository provides the aggregation queries behind the analytics
// screens. Implementations run these directly in the database.
type Repository interface {
	// CheckInsPerDay counts check-ins per calendar day in [from, to)
	CheckInsPerDay(ctx context.Context, from, to time.Time) ([]DailyCount, error)

	// CheckInsByWeekdayHour counts check-ins per weekday/hour slot in [from, to)
	CheckInsByWeekdayHour(ctx context.Context, from, to time.Time) ([]HeatmapCell, error)

	// ClientsPerPlan counts clients per plan, including the plan price
	ClientsPerPlan(ctx context.Context) ([]PlanPopularity, error)

	// NewClientsPerMonth counts client registrations per month for the
	// last N months
	NewClientsPerMonth(ctx context.Context, months int) ([]MonthlyCount, error)

	// NewClientsSince counts clients registered at or after the given instant
	NewClientsSince(ctx context.Context, since time.Time) (int64, error)
}
