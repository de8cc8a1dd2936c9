package models

import (
	"github.com/gympro/backend/internal/domain/settings"
)

// GymProfileModel is the persistence model for the GymProfile domain entity.
// A single row is kept per installation.
type GymProfileModel struct {
	AggregateModel
	Name                  string `gorm:"type:varchar(200);not null"`
	Address               string `gorm:"type:text"`
	Phone                 string `gorm:"type:varchar(20)"`
	Email                 string `gorm:"type:varchar(200)"`
	ExpiryReminderEnabled bool   `gorm:"not null;default:true"`
	ExpiryReminderDays    int    `gorm:"not null;default:3"`
	WelcomeMessageEnabled bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (GymProfileModel) TableName() string {
	return "gym_profiles"
}

// ToDomain converts the persistence model to a domain GymProfile entity.
func (m *GymProfileModel) ToDomain() *settings.GymProfile {
	return &settings.GymProfile{
		BaseAggregateRoot:     m.ToDomainAggregateRoot(),
		Name:                  m.Name,
		Address:               m.Address,
		Phone:                 m.Phone,
		Email:                 m.Email,
		ExpiryReminderEnabled: m.ExpiryReminderEnabled,
		ExpiryReminderDays:    m.ExpiryReminderDays,
		WelcomeMessageEnabled: m.WelcomeMessageEnabled,
	}
}

// FromDomain populates the persistence model from a domain GymProfile entity.
func (m *GymProfileModel) FromDomain(p *settings.GymProfile) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Name = p.Name
	m.Address = p.Address
	m.Phone = p.Phone
	m.Email = p.Email
	m.ExpiryReminderEnabled = p.ExpiryReminderEnabled
	m.ExpiryReminderDays = p.ExpiryReminderDays
	m.WelcomeMessageEnabled = p.WelcomeMessageEnabled
}

// GymProfileModelFromDomain creates a new persistence model from a domain GymProfile entity.
func GymProfileModelFromDomain(p *settings.GymProfile) *GymProfileModel {
	m := &GymProfileModel{}
	m.FromDomain(p)
	return m
}
