package persistence

import (
	"context"
	"errors"

	"github.com/gympro/backend/internal/domain/settings"
	"github.com/gympro/backend/internal/domain/shared"
	"github.com/gympro/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormGymProfileRepository implements GymProfileRepository using GORM.
// The table is expected to hold a single row.
type GormGymProfileRepository struct {
	db *gorm.DB
}

// NewGormGymProfileRepository creates a new GormGymProfileRepository
func NewGormGymProfileRepository(db *gorm.DB) *GormGymProfileRepository {
	return &GormGymProfileRepository{db: db}
}

// Get returns the installation's profile
func (r *GormGymProfileRepository) Get(ctx context.Context) (*settings.GymProfile, error) {
	var model models.GymProfileModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates the profile
func (r *GormGymProfileRepository) Save(ctx context.Context, profile *settings.GymProfile) error {
	model := models.GymProfileModelFromDomain(profile)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormGymProfileRepository implements GymProfileRepository
var _ settings.GymProfileRepository = (*GormGymProfileRepository)(nil)
