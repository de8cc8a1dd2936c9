package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/membership"
	"github.com/gympro/backend/internal/domain/shared"
	"github.com/gympro/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCheckInRepository implements CheckInRepository using GORM
type GormCheckInRepository struct {
	db *gorm.DB
}

// NewGormCheckInRepository creates a new GormCheckInRepository
func NewGormCheckInRepository(db *gorm.DB) *GormCheckInRepository {
	return &GormCheckInRepository{db: db}
}

// FindByID finds a check-in by its ID
func (r *GormCheckInRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.CheckIn, error) {
	var model models.CheckInModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByClient finds check-ins for a single client, newest first
func (r *GormCheckInRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]membership.CheckIn, error) {
	var checkInModels []models.CheckInModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.CheckInModel{}).
			Where("client_id = ?", clientID),
		filter,
	)

	if err := query.Find(&checkInModels).Error; err != nil {
		return nil, err
	}

	return toDomainCheckIns(checkInModels), nil
}

// FindBetween finds check-ins within [from, to), newest first
func (r *GormCheckInRepository) FindBetween(ctx context.Context, from, to time.Time, filter shared.Filter) ([]membership.CheckIn, error) {
	var checkInModels []models.CheckInModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.CheckInModel{}).
			Where("checked_in_at >= ? AND checked_in_at < ?", from, to),
		filter,
	)

	if err := query.Find(&checkInModels).Error; err != nil {
		return nil, err
	}

	return toDomainCheckIns(checkInModels), nil
}

// Save creates a check-in record
func (r *GormCheckInRepository) Save(ctx context.Context, checkIn *membership.CheckIn) error {
	model := models.CheckInModelFromDomain(checkIn)
	return r.db.WithContext(ctx).Save(model).Error
}

// Count counts check-ins matching the filter
func (r *GormCheckInRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.CheckInModel{}),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountBetween counts check-ins within [from, to) matching the filter
func (r *GormCheckInRepository) CountBetween(ctx context.Context, from, to time.Time, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.CheckInModel{}).
			Where("checked_in_at >= ? AND checked_in_at < ?", from, to),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByClientBetween counts a client's check-ins within [from, to)
func (r *GormCheckInRepository) CountByClientBetween(ctx context.Context, clientID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CheckInModel{}).
		Where("client_id = ? AND checked_in_at >= ? AND checked_in_at < ?", clientID, from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilterWithoutPagination applies search and field filters only
func (r *GormCheckInRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("cinit LIKE ? OR client_name LIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "client_id":
			query = query.Where("client_id = ?", value)
		}
	}

	return query
}

// applyFilter applies filter options to the query
func (r *GormCheckInRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderBy := ValidateSortField(filter.OrderBy, CheckInSortFields, "checked_in_at")
		query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("checked_in_at DESC")
	}

	return query
}

func toDomainCheckIns(checkInModels []models.CheckInModel) []membership.CheckIn {
	checkIns := make([]membership.CheckIn, len(checkInModels))
	for i, model := range checkInModels {
		checkIns[i] = *model.ToDomain()
	}
	return checkIns
}

// Ensure GormCheckInRepository implements CheckInRepository
var _ membership.CheckInRepository = (*GormCheckInRepository)(nil)
