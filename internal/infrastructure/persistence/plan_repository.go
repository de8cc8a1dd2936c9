package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/membership"
	"github.com/gympro/backend/internal/domain/shared"
	"github.com/gympro/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPlanRepository implements PlanRepository using GORM
type GormPlanRepository struct {
	db *gorm.DB
}

// NewGormPlanRepository creates a new GormPlanRepository
func NewGormPlanRepository(db *gorm.DB) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

// FindByID finds a plan by its ID
func (r *GormPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a plan by its name
func (r *GormPlanRepository) FindByName(ctx context.Context, name string) (*membership.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).
		Where("name = ?", strings.TrimSpace(name)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all plans matching the filter
func (r *GormPlanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]membership.Plan, error) {
	var planModels []models.PlanModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PlanModel{}), filter)

	if err := query.Find(&planModels).Error; err != nil {
		return nil, err
	}

	return toDomainPlans(planModels), nil
}

// FindActive finds all active plans
func (r *GormPlanRepository) FindActive(ctx context.Context, filter shared.Filter) ([]membership.Plan, error) {
	var planModels []models.PlanModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.PlanModel{}).
			Where("active = ?", true),
		filter,
	)

	if err := query.Find(&planModels).Error; err != nil {
		return nil, err
	}

	return toDomainPlans(planModels), nil
}

// Save creates or updates a plan
func (r *GormPlanRepository) Save(ctx context.Context, plan *membership.Plan) error {
	model := models.PlanModelFromDomain(plan)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a plan
func (r *GormPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PlanModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts plans matching the filter
func (r *GormPlanRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.PlanModel{})
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchPattern)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByName checks if a plan with the given name exists
func (r *GormPlanRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PlanModel{}).
		Where("name = ?", strings.TrimSpace(name)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormPlanRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchPattern)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderBy := ValidateSortField(filter.OrderBy, PlanSortFields, "name")
		query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("price ASC, name ASC")
	}

	return query
}

func toDomainPlans(planModels []models.PlanModel) []membership.Plan {
	plans := make([]membership.Plan, len(planModels))
	for i, model := range planModels {
		plans[i] = *model.ToDomain()
	}
	return plans
}

// Ensure GormPlanRepository implements PlanRepository
var _ membership.PlanRepository = (*GormPlanRepository)(nil)
