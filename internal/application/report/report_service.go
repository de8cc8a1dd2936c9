package report

import (
	"context"
	"time"

	"github.com/gympro/backend/internal/domain/membership"
	"github.com/gympro/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ReportService produces the dashboard and analytics views from live
// registry data
type ReportService struct {
	clientRepo  membership.ClientRepository
	checkInRepo membership.CheckInRepository
	reportRepo  Repository
	now         func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(
	clientRepo membership.ClientRepository,
	checkInRepo membership.CheckInRepository,
	reportRepo Repository,
) *ReportService {
	return &ReportService{
		clientRepo:  clientRepo,
		checkInRepo: checkInRepo,
		reportRepo:  reportRepo,
		now:         time.Now,
	}
}

// Dashboard assembles the summary counters for the landing page.
// The estimated revenue is the sum of plan prices across the active
// clients of each plan.
func (s *ReportService) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	now := s.now()

	var summary DashboardSummary

	active, err := s.clientRepo.CountByStatus(ctx, membership.ClientStatusActive)
	if err != nil {
		return nil, err
	}
	expired, err := s.clientRepo.CountByStatus(ctx, membership.ClientStatusExpired)
	if err != nil {
		return nil, err
	}
	frozen, err := s.clientRepo.CountByStatus(ctx, membership.ClientStatusFrozen)
	if err != nil {
		return nil, err
	}
	summary.ActiveClients = active
	summary.ExpiredClients = expired
	summary.FrozenClients = frozen
	summary.TotalClients = active + expired + frozen

	// Expiring soon means an active window that ends within the next
	// 7 days; clients already past their window are not counted again
	expiring, err := s.clientRepo.FindExpiringBefore(ctx, now.AddDate(0, 0, 7), shared.Filter{})
	if err != nil {
		return nil, err
	}
	for i := range expiring {
		if expiring[i].StatusAt(now) == membership.ClientStatusActive {
			summary.ExpiringSoon++
		}
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	checkInsToday, err := s.checkInRepo.CountBetween(ctx, startOfDay, startOfDay.AddDate(0, 0, 1), shared.Filter{})
	if err != nil {
		return nil, err
	}
	summary.CheckInsToday = checkInsToday

	registrationsToday, err := s.reportRepo.NewClientsSince(ctx, startOfDay)
	if err != nil {
		return nil, err
	}
	summary.RegistrationsToday = registrationsToday

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	newThisMonth, err := s.reportRepo.NewClientsSince(ctx, startOfMonth)
	if err != nil {
		return nil, err
	}
	summary.NewClientsMonth = newThisMonth

	popularity, err := s.reportRepo.ClientsPerPlan(ctx)
	if err != nil {
		return nil, err
	}
	revenue := decimal.Zero
	for _, p := range popularity {
		revenue = revenue.Add(p.Price.Mul(decimal.NewFromInt(p.Clients)))
	}
	summary.EstimatedRevenue = revenue

	return &summary, nil
}

// DailyTrend returns check-in counts per day over the requested window,
// filling days without visits with zeroes so charts stay continuous
func (s *ReportService) DailyTrend(ctx context.Context, filter TrendFilter) ([]DailyCount, error) {
	days := filter.Days
	if days == 0 {
		days = 30
	}

	now := s.now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -days)

	counts, err := s.reportRepo.CheckInsPerDay(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]int64, len(counts))
	for _, c := range counts {
		byDay[c.Date.Format("2006-01-02")] = c.Count
	}

	trend := make([]DailyCount, 0, days)
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		trend = append(trend, DailyCount{
			Date:  d,
			Count: byDay[d.Format("2006-01-02")],
		})
	}

	return trend, nil
}

// Heatmap returns weekday/hour check-in density over the last 90 days
func (s *ReportService) Heatmap(ctx context.Context) ([]HeatmapCell, error) {
	now := s.now()
	return s.reportRepo.CheckInsByWeekdayHour(ctx, now.AddDate(0, 0, -90), now)
}

// PlanDistribution returns how clients are spread across plans
func (s *ReportService) PlanDistribution(ctx context.Context) ([]PlanPopularity, error) {
	return s.reportRepo.ClientsPerPlan(ctx)
}

// MonthlyRegistrations returns new client counts for the last 12 months
func (s *ReportService) MonthlyRegistrations(ctx context.Context) ([]MonthlyCount, error) {
	return s.reportRepo.NewClientsPerMonth(ctx, 12)
}
