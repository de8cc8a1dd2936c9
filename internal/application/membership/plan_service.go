package membership

import (
	"context"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/membership"
	"github.com/gympro/backend/internal/domain/shared"
)

// PlanService handles membership plan operations
type PlanService struct {
	planRepo   membership.PlanRepository
	clientRepo membership.ClientRepository
}

// NewPlanService creates a new PlanService
func NewPlanService(planRepo membership.PlanRepository, clientRepo membership.ClientRepository) *PlanService {
	return &PlanService{
		planRepo:   planRepo,
		clientRepo: clientRepo,
	}
}

// Create creates a new membership plan
func (s *PlanService) Create(ctx context.Context, req CreatePlanRequest) (*PlanResponse, error) {
	exists, err := s.planRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Plan with this name already exists")
	}

	plan, err := membership.NewPlan(req.Name, req.Price, req.DurationDays, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, err
	}

	response := ToPlanResponse(plan)
	return &response, nil
}

// GetByID retrieves a plan by ID
func (s *PlanService) GetByID(ctx context.Context, planID uuid.UUID) (*PlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	response := ToPlanResponse(plan)
	return &response, nil
}

// List retrieves plans with filtering and pagination
func (s *PlanService) List(ctx context.Context, filter PlanListFilter) ([]PlanResponse, int64, error) {
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
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}

	var plans []membership.Plan
	var err error
	if filter.ActiveOnly {
		plans, err = s.planRepo.FindActive(ctx, domainFilter)
	} else {
		plans, err = s.planRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.planRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPlanResponses(plans), total, nil
}

// Update updates a plan's details. Existing clients keep their current
// window; the change only affects future assignments and renewals.
func (s *PlanService) Update(ctx context.Context, planID uuid.UUID, req UpdatePlanRequest) (*PlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	name := plan.Name
	price := plan.Price
	durationDays := plan.DurationDays
	description := plan.Description

	if req.Name != nil {
		if *req.Name != plan.Name {
			exists, err := s.planRepo.ExistsByName(ctx, *req.Name)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "Plan with this name already exists")
			}
		}
		name = *req.Name
	}
	if req.Price != nil {
		price = *req.Price
	}
	if req.DurationDays != nil {
		durationDays = *req.DurationDays
	}
	if req.Description != nil {
		description = *req.Description
	}

	if err := plan.Update(name, price, durationDays, description); err != nil {
		return nil, err
	}

	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, err
	}

	response := ToPlanResponse(plan)
	return &response, nil
}

// Deactivate retires a plan so it can no longer be assigned
func (s *PlanService) Deactivate(ctx context.Context, planID uuid.UUID) (*PlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	if err := plan.Deactivate(); err != nil {
		return nil, err
	}

	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, err
	}

	response := ToPlanResponse(plan)
	return &response, nil
}

// Activate makes a plan assignable again
func (s *PlanService) Activate(ctx context.Context, planID uuid.UUID) (*PlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	if err := plan.Activate(); err != nil {
		return nil, err
	}

	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, err
	}

	response := ToPlanResponse(plan)
	return &response, nil
}

// Delete removes a plan that has no clients assigned to it
func (s *PlanService) Delete(ctx context.Context, planID uuid.UUID) error {
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return err
	}

	assigned, err := s.clientRepo.CountByPlan(ctx, planID)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return shared.NewDomainError("CANNOT_DELETE", "Cannot delete a plan with clients assigned")
	}

	return s.planRepo.Delete(ctx, planID)
}
