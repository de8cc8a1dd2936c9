package settings

import (
	"regexp"
	"strings"
	"time"

	"github.com/gympro/backend/internal/domain/shared"
)

// GymProfile holds the gym's public details and notification preferences.
// A single row is kept per installation.
type GymProfile struct {
	shared.BaseAggregateRoot
	Name    string
	Address string
	Phone   string
	Email   string

	// Notification preferences for membership expiry reminders
	ExpiryReminderEnabled bool
	ExpiryReminderDays    int
	WelcomeMessageEnabled bool
}

// NewGymProfile creates a profile with sensible defaults
func NewGymProfile(name string) (*GymProfile, error) {
	if err := validateGymName(name); err != nil {
		return nil, err
	}

	return &GymProfile{
		BaseAggregateRoot:     shared.NewBaseAggregateRoot(),
		Name:                  strings.TrimSpace(name),
		ExpiryReminderEnabled: true,
		ExpiryReminderDays:    3,
	}, nil
}

// Update updates the gym's public details
func (g *GymProfile) Update(name, address, phone, email string) error {
	if err := validateGymName(name); err != nil {
		return err
	}
	if email != "" {
		emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
		if !emailRegex.MatchString(email) {
			return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
		}
	}
	if phone != "" && len(phone) > 20 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 20 characters")
	}

	g.Name = strings.TrimSpace(name)
	g.Address = strings.TrimSpace(address)
	g.Phone = strings.TrimSpace(phone)
	g.Email = strings.TrimSpace(email)
	g.UpdatedAt = time.Now()
	g.IncrementVersion()

	return nil
}

// SetNotificationPreferences updates the reminder configuration
func (g *GymProfile) SetNotificationPreferences(expiryEnabled bool, expiryDays int, welcomeEnabled bool) error {
	if expiryDays < 1 || expiryDays > 30 {
		return shared.NewDomainError("INVALID_REMINDER_DAYS", "Reminder days must be between 1 and 30")
	}

	g.ExpiryReminderEnabled = expiryEnabled
	g.ExpiryReminderDays = expiryDays
	g.WelcomeMessageEnabled = welcomeEnabled
	g.UpdatedAt = time.Now()
	g.IncrementVersion()

	return nil
}

func validateGymName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Gym name cannot be empty")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Gym name cannot exceed 200 characters")
	}
	return nil
}
