package settings

import (
	"context"
	"errors"

	domainsettings "github.com/gympro/backend/internal/domain/settings"
	"github.com/gympro/backend/internal/domain/shared"
)

// DefaultGymName seeds the profile when a fresh installation is read for
// the first time.
const DefaultGymName = "GymPro"

// SettingsService handles the gym profile and notification preferences
type SettingsService struct {
	profileRepo domainsettings.GymProfileRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(profileRepo domainsettings.GymProfileRepository) *SettingsService {
	return &SettingsService{
		profileRepo: profileRepo,
	}
}

// GetProfile returns the installation's profile, creating a default one
// on first read
func (s *SettingsService) GetProfile(ctx context.Context) (*ProfileResponse, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		var domainErr *shared.DomainError
		if !errors.As(err, &domainErr) || domainErr.Code != "NOT_FOUND" {
			return nil, err
		}
		profile, err = domainsettings.NewGymProfile(DefaultGymName)
		if err != nil {
			return nil, err
		}
		if err := s.profileRepo.Save(ctx, profile); err != nil {
			return nil, err
		}
	}

	return ToProfileResponse(profile), nil
}

// UpdateProfile updates the gym's public details
func (s *SettingsService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*ProfileResponse, error) {
	profile, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	if err := profile.Update(req.Name, req.Address, req.Phone, req.Email); err != nil {
		return nil, err
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	return ToProfileResponse(profile), nil
}

// UpdateNotifications changes the expiry reminder configuration
func (s *SettingsService) UpdateNotifications(ctx context.Context, req UpdateNotificationsRequest) (*ProfileResponse, error) {
	profile, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	if err := profile.SetNotificationPreferences(req.ExpiryReminderEnabled, req.ExpiryReminderDays, req.WelcomeMessageEnabled); err != nil {
		return nil, err
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	return ToProfileResponse(profile), nil
}

func (s *SettingsService) currentProfile(ctx context.Context) (*domainsettings.GymProfile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "NOT_FOUND" {
			return domainsettings.NewGymProfile(DefaultGymName)
		}
		return nil, err
	}
	return profile, nil
}
