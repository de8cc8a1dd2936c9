package membership

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/membership"
	"github.com/gympro/backend/internal/domain/shared"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo membership.ClientRepository
	planRepo   membership.PlanRepository
	now        func() time.Time
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo membership.ClientRepository, planRepo membership.PlanRepository) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		planRepo:   planRepo,
		now:        time.Now,
	}
}

// Register registers a new client with an initial membership window
// derived from the chosen plan
func (s *ClientService) Register(ctx context.Context, req RegisterClientRequest) (*ClientResponse, error) {
	exists, err := s.clientRepo.ExistsByCINIT(ctx, req.CINIT)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this CI/NIT already exists")
	}

	plan, err := s.planRepo.FindByID(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive() {
		return nil, shared.NewDomainError("PLAN_INACTIVE", "Plan is no longer offered")
	}

	now := s.now()
	inicio, fin := plan.WindowFrom(now)
	client, err := membership.NewClient(req.Name, req.CINIT, req.Phone, req.Email, plan.ID, plan.Name, inicio, fin)
	if err != nil {
		return nil, err
	}

	if req.Notes != "" {
		client.SetNotes(req.Notes)
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client, now)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client, s.now())
	return &response, nil
}

// GetByCINIT retrieves a client by its CI/NIT number
func (s *ClientService) GetByCINIT(ctx context.Context, cinit string) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByCINIT(ctx, cinit)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client, s.now())
	return &response, nil
}

// List retrieves a list of clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, filter ClientListFilter) ([]ClientListResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}

	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.PlanID != "" {
		domainFilter.Filters["plan_id"] = filter.PlanID
	}

	clients, err := s.clientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.clientRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToClientListResponses(clients, s.now()), total, nil
}

// Update updates a client's details
func (s *ClientService) Update(ctx context.Context, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Phone != nil || req.Email != nil {
		name := client.Name
		phone := client.Phone
		email := client.Email

		if req.Name != nil {
			name = *req.Name
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}

		if err := client.Update(name, phone, email); err != nil {
			return nil, err
		}
	}

	if req.CINIT != nil && *req.CINIT != client.CINIT {
		exists, err := s.clientRepo.ExistsByCINIT(ctx, *req.CINIT)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this CI/NIT already exists")
		}
		if err := client.UpdateCINIT(*req.CINIT); err != nil {
			return nil, err
		}
	}

	if req.Notes != nil {
		client.SetNotes(*req.Notes)
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client, s.now())
	return &response, nil
}

// Renew starts a fresh membership window for the client using the
// given plan's duration
func (s *ClientService) Renew(ctx context.Context, clientID uuid.UUID, req RenewClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepo.FindByID(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive() {
		return nil, shared.NewDomainError("PLAN_INACTIVE", "Plan is no longer offered")
	}

	now := s.now()
	if err := client.Renew(plan, now); err != nil {
		return nil, err
	}

	if err := s.clientRepo.SaveWithLock(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client, now)
	return &response, nil
}

// Freeze suspends the client's membership
func (s *ClientService) Freeze(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if err := client.Freeze(); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client, s.now())
	return &response, nil
}

// Unfreeze lifts the freeze on the client's membership
func (s *ClientService) Unfreeze(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := client.Unfreeze(now); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client, now)
	return &response, nil
}

// Delete removes a client from the registry
func (s *ClientService) Delete(ctx context.Context, clientID uuid.UUID) error {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return err
	}

	return s.clientRepo.Delete(ctx, clientID)
}

// CountByStatus returns client counts grouped by status label
func (s *ClientService) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)

	var total int64
	for _, status := range []membership.ClientStatus{
		membership.ClientStatusActive,
		membership.ClientStatusExpired,
		membership.ClientStatusFrozen,
	} {
		count, err := s.clientRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		counts[string(status)] = count
		total += count
	}
	counts["total"] = total

	return counts, nil
}
