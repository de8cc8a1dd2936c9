package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/membership"
	"github.com/gympro/backend/internal/domain/shared"
	"github.com/gympro/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCINIT finds a client by their CI/NIT document number
func (r *GormClientRepository) FindByCINIT(ctx context.Context, cinit string) (*membership.Client, error) {
	if cinit == "" {
		return nil, shared.NewDomainError("INVALID_CINIT", "CI/NIT cannot be empty")
	}
	var model models.ClientModel
	if err := r.db.WithContext(ctx).
		Where("cinit = ?", strings.TrimSpace(cinit)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all clients matching the filter
func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]membership.Client, error) {
	var clientModels []models.ClientModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ClientModel{}), filter)

	if err := query.Find(&clientModels).Error; err != nil {
		return nil, err
	}

	return toDomainClients(clientModels), nil
}

// FindByStatus finds clients by their stored status label
func (r *GormClientRepository) FindByStatus(ctx context.Context, status membership.ClientStatus, filter shared.Filter) ([]membership.Client, error) {
	var clientModels []models.ClientModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ClientModel{}).
			Where("status = ?", status),
		filter,
	)

	if err := query.Find(&clientModels).Error; err != nil {
		return nil, err
	}

	return toDomainClients(clientModels), nil
}

// FindByPlan finds clients assigned to the given plan
func (r *GormClientRepository) FindByPlan(ctx context.Context, planID uuid.UUID, filter shared.Filter) ([]membership.Client, error) {
	var clientModels []models.ClientModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ClientModel{}).
			Where("plan_id = ?", planID),
		filter,
	)

	if err := query.Find(&clientModels).Error; err != nil {
		return nil, err
	}

	return toDomainClients(clientModels), nil
}

// FindExpiringBefore finds unfrozen clients whose membership ends before the deadline
func (r *GormClientRepository) FindExpiringBefore(ctx context.Context, deadline time.Time, filter shared.Filter) ([]membership.Client, error) {
	var clientModels []models.ClientModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ClientModel{}).
			Where("fecha_fin < ? AND frozen = ?", deadline, false),
		filter,
	)

	if err := query.Find(&clientModels).Error; err != nil {
		return nil, err
	}

	return toDomainClients(clientModels), nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *membership.Client) error {
	model := models.ClientModelFromDomain(client)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves a client with optimistic locking (version check).
// Returns an error if the version has changed under a concurrent update.
func (r *GormClientRepository) SaveWithLock(ctx context.Context, client *membership.Client) error {
	model := models.ClientModelFromDomain(client)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", client.ID, client.Version-1).
		Select("*").
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The client record has been modified by another transaction")
	}
	return nil
}

// Delete deletes a client
func (r *GormClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts clients matching the filter
func (r *GormClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ClientModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts clients by their stored status label
func (r *GormClientRepository) CountByStatus(ctx context.Context, status membership.ClientStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByPlan counts clients assigned to the given plan
func (r *GormClientRepository) CountByPlan(ctx context.Context, planID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("plan_id = ?", planID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCINIT checks if a client with the given CI/NIT exists
func (r *GormClientRepository) ExistsByCINIT(ctx context.Context, cinit string) (bool, error) {
	if cinit == "" {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("cinit = ?", strings.TrimSpace(cinit)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormClientRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ClientSortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)
	if filter.OrderBy == "" {
		query = query.Order("name ASC")
	} else {
		query = query.Order(orderBy + " " + orderDir)
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormClientRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(cinit) LIKE ? OR phone LIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "plan_id":
			query = query.Where("plan_id = ?", value)
		case "frozen":
			query = query.Where("frozen = ?", value)
		}
	}

	return query
}

func toDomainClients(clientModels []models.ClientModel) []membership.Client {
	clients := make([]membership.Client, len(clientModels))
	for i, model := range clientModels {
		clients[i] = *model.ToDomain()
	}
	return clients
}

// Ensure GormClientRepository implements ClientRepository
var _ membership.ClientRepository = (*GormClientRepository)(nil)
