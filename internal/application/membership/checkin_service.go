package membership

import (
	"context"
	"errors"
	"time"

	"github.com/gympro/backend/internal/domain/membership"
	"github.com/gympro/backend/internal/domain/shared"
)

// CheckInService decides admission at the front desk and keeps the
// check-in log
type CheckInService struct {
	clientRepo  membership.ClientRepository
	checkInRepo membership.CheckInRepository
	now         func() time.Time
}

// NewCheckInService creates a new CheckInService
func NewCheckInService(clientRepo membership.ClientRepository, checkInRepo membership.CheckInRepository) *CheckInService {
	return &CheckInService{
		clientRepo:  clientRepo,
		checkInRepo: checkInRepo,
		now:         time.Now,
	}
}

// Admit looks up a client by CI/NIT and decides whether they may enter.
// The decision is evaluated against the clock, not the stored status
// label, so a client whose window lapsed since the last write is still
// turned away. An attempt is one read plus at most one write: only an
// admitted visit produces a check-in record, and the stored client row
// is never touched here.
func (s *CheckInService) Admit(ctx context.Context, req AdmitRequest) (*AdmissionResponse, error) {
	client, err := s.clientRepo.FindByCINIT(ctx, req.CINIT)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "NOT_FOUND" {
			return &AdmissionResponse{Decision: string(membership.AdmissionNotFound)}, nil
		}
		return nil, err
	}

	now := s.now()
	clientResp := ToClientResponse(client, now)

	switch client.StatusAt(now) {
	case membership.ClientStatusFrozen:
		return &AdmissionResponse{
			Decision: string(membership.AdmissionBlocked),
			Client:   &clientResp,
		}, nil

	case membership.ClientStatusExpired:
		return &AdmissionResponse{
			Decision: string(membership.AdmissionRenewalRequired),
			Client:   &clientResp,
		}, nil
	}

	checkIn := membership.NewCheckIn(client, now)
	if err := s.checkInRepo.Save(ctx, checkIn); err != nil {
		return nil, err
	}

	checkInResp := ToCheckInResponse(checkIn)
	return &AdmissionResponse{
		Decision: string(membership.AdmissionAdmitted),
		Client:   &clientResp,
		CheckIn:  &checkInResp,
	}, nil
}

// List retrieves check-in log entries with filtering and pagination
func (s *CheckInService) List(ctx context.Context, filter CheckInListFilter) ([]CheckInResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "checked_in_at",
		OrderDir: "desc",
		Filters:  make(map[string]any),
	}

	if filter.ClientID != "" {
		domainFilter.Filters["client_id"] = filter.ClientID
	}

	from, to, err := parseDateRange(filter.From, filter.To)
	if err != nil {
		return nil, 0, err
	}

	checkIns, err := s.checkInRepo.FindBetween(ctx, from, to, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.checkInRepo.CountBetween(ctx, from, to, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToCheckInResponses(checkIns), total, nil
}

// parseDateRange turns optional YYYY-MM-DD bounds into a half-open
// interval, defaulting to the last 30 days
func parseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, shared.NewDomainError("INVALID_INPUT", "Invalid 'from' date")
		}
		from = parsed
	}
	if toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return time.Time{}, time.Time{}, shared.NewDomainError("INVALID_INPUT", "Invalid 'to' date")
		}
		// Include the whole end day
		to = parsed.AddDate(0, 0, 1)
	}

	if !to.After(from) {
		return time.Time{}, time.Time{}, shared.NewDomainError("INVALID_INPUT", "'to' must be after 'from'")
	}

	return from, to, nil
}
