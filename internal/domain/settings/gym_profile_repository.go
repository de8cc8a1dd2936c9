package settings

import "context"

// GymProfileRepository defines the interface for profile persistence
type GymProfileRepository interface {
	// Get returns the installation's profile, or shared.ErrNotFound when
	// none has been saved yet
	Get(ctx context.Context) (*GymProfile, error)

	// Save creates or updates the profile
	Save(ctx context.Context, profile *GymProfile) error
}
