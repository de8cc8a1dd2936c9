package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/identity"
)

// =============================================================================
// Auth DTOs
// =============================================================================

// LoginInput contains credentials for a login attempt
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	IP       string `json:"-"`
}

// LoginResult contains tokens and user info after a successful login
type LoginResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// RefreshTokenInput contains a refresh token
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResult contains a refreshed token pair
type RefreshTokenResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// LogoutInput identifies the session being closed
type LogoutInput struct {
	UserID uuid.UUID `json:"-"`
	JTI    string    `json:"-"`
	TTL    time.Duration
}

// ChangePasswordInput contains the data for a password change
type ChangePasswordInput struct {
	UserID      uuid.UUID `json:"-"`
	OldPassword string    `json:"old_password" binding:"required"`
	NewPassword string    `json:"new_password" binding:"required,min=8,max=128"`
}

// UserInfo is the signed-in user's profile as exposed to the UI
type UserInfo struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Capabilities []string  `json:"capabilities"`
}

// =============================================================================
// User management DTOs
// =============================================================================

// CreateUserRequest represents a request to create a staff account
type CreateUserRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=100"`
	Password    string `json:"password" binding:"required,min=8,max=128"`
	DisplayName string `json:"display_name" binding:"max=200"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
	Role        string `json:"role" binding:"required,oneof=admin recepcionista"`
}

// UpdateUserRequest represents a request to update a staff account
type UpdateUserRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=200"`
	Email       *string `json:"email" binding:"omitempty,email,max=200"`
	Role        *string `json:"role" binding:"omitempty,oneof=admin recepcionista"`
}

// ResetPasswordRequest represents an admin password reset
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// UserResponse represents a staff account in API responses
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UserListFilter represents filter options for the user list
type UserListFilter struct {
	Search   string `form:"search"`
	Role     string `form:"role" binding:"omitempty,oneof=admin recepcionista"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToUserInfo converts a domain User to UserInfo
func ToUserInfo(u *identity.User) UserInfo {
	capabilities := u.Role.Capabilities()
	capStrings := make([]string, len(capabilities))
	for i, c := range capabilities {
		capStrings[i] = string(c)
	}

	return UserInfo{
		ID:           u.ID,
		Username:     u.Username,
		DisplayName:  u.GetDisplayNameOrUsername(),
		Email:        u.Email,
		Role:         string(u.Role),
		Capabilities: capStrings,
	}
}

// ToUserResponse converts a domain User to UserResponse
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Role:        string(u.Role),
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// ToUserResponses converts a slice of domain Users to UserResponses
func ToUserResponses(users []identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}
