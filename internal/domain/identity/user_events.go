package identity

import (
	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeUser = "User"

// Event type constants
const (
	EventTypeUserCreated     = "UserCreated"
	EventTypeUserRoleChanged = "UserRoleChanged"
)

// UserCreatedEvent is published when a new staff account is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     Role      `json:"role"`
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, AggregateTypeUser, user.ID),
		UserID:          user.ID,
		Username:        user.Username,
		Role:            user.Role,
	}
}

// UserRoleChangedEvent is published when a staff account's role changes
type UserRoleChangedEvent struct {
	shared.BaseDomainEvent
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	OldRole  Role      `json:"old_role"`
	NewRole  Role      `json:"new_role"`
}

// NewUserRoleChangedEvent creates a new UserRoleChangedEvent
func NewUserRoleChangedEvent(user *User, oldRole, newRole Role) *UserRoleChangedEvent {
	return &UserRoleChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRoleChanged, AggregateTypeUser, user.ID),
		UserID:          user.ID,
		Username:        user.Username,
		OldRole:         oldRole,
		NewRole:         newRole,
	}
}
