package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/shared"
)

// UserRepository defines the interface for staff account persistence
type UserRepository interface {
	// FindByID finds a user by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindAll finds all users matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)

	// FindByRole finds users with the given role
	FindByRole(ctx context.Context, role Role, filter shared.Filter) ([]User, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// Delete deletes a user
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts users matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByRole counts users with the given role
	CountByRole(ctx context.Context, role Role) (int64, error)

	// ExistsByUsername checks if a user with the given username exists
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
