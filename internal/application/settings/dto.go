package settings

import (
	"time"

	"github.com/google/uuid"
	domainsettings "github.com/gympro/backend/internal/domain/settings"
)

// UpdateProfileRequest represents a request to update the gym's details
type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Address string `json:"address" binding:"omitempty,max=500"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
	Email   string `json:"email" binding:"omitempty,email"`
}

// UpdateNotificationsRequest represents a request to change reminder settings
type UpdateNotificationsRequest struct {
	ExpiryReminderEnabled bool `json:"expiry_reminder_enabled"`
	ExpiryReminderDays    int  `json:"expiry_reminder_days" binding:"required,min=1,max=30"`
	WelcomeMessageEnabled bool `json:"welcome_message_enabled"`
}

// ProfileResponse represents the gym profile in API responses
type ProfileResponse struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	Address               string    `json:"address"`
	Phone                 string    `json:"phone"`
	Email                 string    `json:"email"`
	ExpiryReminderEnabled bool      `json:"expiry_reminder_enabled"`
	ExpiryReminderDays    int       `json:"expiry_reminder_days"`
	WelcomeMessageEnabled bool      `json:"welcome_message_enabled"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ToProfileResponse converts a GymProfile to a ProfileResponse
func ToProfileResponse(profile *domainsettings.GymProfile) *ProfileResponse {
	return &ProfileResponse{
		ID:                    profile.ID,
		Name:                  profile.Name,
		Address:               profile.Address,
		Phone:                 profile.Phone,
		Email:                 profile.Email,
		ExpiryReminderEnabled: profile.ExpiryReminderEnabled,
		ExpiryReminderDays:    profile.ExpiryReminderDays,
		WelcomeMessageEnabled: profile.WelcomeMessageEnabled,
		UpdatedAt:             profile.UpdatedAt,
	}
}
