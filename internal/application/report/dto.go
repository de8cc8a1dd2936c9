package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardSummary is the front page of the back office
type DashboardSummary struct {
	TotalClients       int64           `json:"total_clients"`
	ActiveClients      int64           `json:"active_clients"`
	ExpiredClients     int64           `json:"expired_clients"`
	FrozenClients      int64           `json:"frozen_clients"`
	ExpiringSoon       int64           `json:"expiring_soon"`
	CheckInsToday      int64           `json:"check_ins_today"`
	RegistrationsToday int64           `json:"registrations_today"`
	NewClientsMonth    int64           `json:"new_clients_month"`
	EstimatedRevenue   decimal.Decimal `json:"estimated_revenue"`
}

// DailyCount is one day of check-in traffic
type DailyCount struct {
	Date  time.Time `json:"date"`
	Count int64     `json:"count"`
}

// HeatmapCell is check-in traffic for one weekday/hour slot.
// Weekday follows time.Weekday (0 = Sunday).
type HeatmapCell struct {
	Weekday int   `json:"weekday"`
	Hour    int   `json:"hour"`
	Count   int64 `json:"count"`
}

// PlanPopularity is client distribution across plans
type PlanPopularity struct {
	PlanID   uuid.UUID       `json:"plan_id"`
	PlanName string          `json:"plan_name"`
	Price    decimal.Decimal `json:"price"`
	Clients  int64           `json:"clients"`
}

// MonthlyCount is one month of client registrations
type MonthlyCount struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// TrendFilter selects the range for the daily trend
type TrendFilter struct {
	Days int `form:"days" binding:"omitempty,oneof=30 90 180"`
}
