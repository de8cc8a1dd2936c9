package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/application/report"
	"github.com/gympro/backend/internal/domain/membership"
	"github.com/gympro/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormReportRepository implements the analytics queries using GORM
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// CheckInsPerDay returns check-in counts grouped by calendar day within [from, to)
func (r *GormReportRepository) CheckInsPerDay(ctx context.Context, from, to time.Time) ([]report.DailyCount, error) {
	type dailyResult struct {
		Day   time.Time
		Count int64
	}

	var results []dailyResult

	err := r.db.WithContext(ctx).
		Model(&models.CheckInModel{}).
		Select("DATE(checked_in_at) as day, COUNT(*) as count").
		Where("checked_in_at >= ? AND checked_in_at < ?", from, to).
		Group("DATE(checked_in_at)").
		Order("day ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make([]report.DailyCount, len(results))
	for i, row := range results {
		counts[i] = report.DailyCount{Date: row.Day, Count: row.Count}
	}
	return counts, nil
}

// CheckInsByWeekdayHour returns check-in counts grouped by weekday and hour
// within [from, to). Weekday follows time.Weekday numbering (0 = Sunday).
func (r *GormReportRepository) CheckInsByWeekdayHour(ctx context.Context, from, to time.Time) ([]report.HeatmapCell, error) {
	type cellResult struct {
		Weekday int
		Hour    int
		Count   int64
	}

	var results []cellResult

	err := r.db.WithContext(ctx).
		Model(&models.CheckInModel{}).
		Select(`
			CAST(EXTRACT(DOW FROM checked_in_at) AS INTEGER) as weekday,
			CAST(EXTRACT(HOUR FROM checked_in_at) AS INTEGER) as hour,
			COUNT(*) as count
		`).
		Where("checked_in_at >= ? AND checked_in_at < ?", from, to).
		Group("weekday, hour").
		Order("weekday ASC, hour ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	cells := make([]report.HeatmapCell, len(results))
	for i, row := range results {
		cells[i] = report.HeatmapCell{Weekday: row.Weekday, Hour: row.Hour, Count: row.Count}
	}
	return cells, nil
}

// ClientsPerPlan returns how many active clients each plan currently
// has; expired and frozen clients do not contribute to revenue
func (r *GormReportRepository) ClientsPerPlan(ctx context.Context) ([]report.PlanPopularity, error) {
	type planResult struct {
		PlanID   uuid.UUID
		PlanName string
		Price    decimal.Decimal
		Clients  int64
	}

	var results []planResult

	err := r.db.WithContext(ctx).
		Table("plans p").
		Select(`
			p.id as plan_id,
			p.name as plan_name,
			p.price as price,
			COUNT(c.id) as clients
		`).
		Joins("LEFT JOIN clients c ON c.plan_id = p.id AND c.status = ?", membership.ClientStatusActive).
		Group("p.id, p.name, p.price").
		Order("clients DESC, p.name ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	popularity := make([]report.PlanPopularity, len(results))
	for i, row := range results {
		popularity[i] = report.PlanPopularity{
			PlanID:   row.PlanID,
			PlanName: row.PlanName,
			Price:    row.Price,
			Clients:  row.Clients,
		}
	}
	return popularity, nil
}

// NewClientsPerMonth returns registration counts for the last n months
func (r *GormReportRepository) NewClientsPerMonth(ctx context.Context, months int) ([]report.MonthlyCount, error) {
	type monthResult struct {
		Year  int
		Month int
		Count int64
	}

	since := time.Now().AddDate(0, -months, 0)

	var results []monthResult

	err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Select(`
			CAST(EXTRACT(YEAR FROM created_at) AS INTEGER) as year,
			CAST(EXTRACT(MONTH FROM created_at) AS INTEGER) as month,
			COUNT(*) as count
		`).
		Where("created_at >= ?", since).
		Group("year, month").
		Order("year ASC, month ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make([]report.MonthlyCount, len(results))
	for i, row := range results {
		counts[i] = report.MonthlyCount{Year: row.Year, Month: row.Month, Count: row.Count}
	}
	return counts, nil
}

// NewClientsSince counts clients registered at or after the given instant
func (r *GormReportRepository) NewClientsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormReportRepository implements report.Repository
var _ report.Repository = (*GormReportRepository)(nil)
