package membership

import (
	"time"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/membership"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Client DTOs
// =============================================================================

// RegisterClientRequest represents a request to register a new client
type RegisterClientRequest struct {
	Name   string    `json:"name" binding:"required,min=2,max=200"`
	CINIT  string    `json:"ci_nit" binding:"required,min=1,max=50"`
	Phone  string    `json:"phone" binding:"required"`
	Email  string    `json:"email" binding:"omitempty,email,max=200"`
	PlanID uuid.UUID `json:"plan_id" binding:"required"`
	Notes  string    `json:"notes"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=200"`
	CINIT *string `json:"ci_nit" binding:"omitempty,min=1,max=50"`
	Phone *string `json:"phone"`
	Email *string `json:"email" binding:"omitempty,email,max=200"`
	Notes *string `json:"notes"`
}

// RenewClientRequest represents a request to renew a client's membership
type RenewClientRequest struct {
	PlanID uuid.UUID `json:"plan_id" binding:"required"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	CINIT         string    `json:"ci_nit"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	PlanID        uuid.UUID `json:"plan_id"`
	PlanName      string    `json:"plan_name"`
	FechaInicio   time.Time `json:"fecha_inicio"`
	FechaFin      time.Time `json:"fecha_fin"`
	Frozen        bool      `json:"frozen"`
	Status        string    `json:"status"`
	DaysRemaining int       `json:"days_remaining"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Version       int       `json:"version"`
}

// ClientListResponse represents a list item for clients
type ClientListResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	CINIT    string    `json:"ci_nit"`
	Phone    string    `json:"phone"`
	PlanName string    `json:"plan_name"`
	FechaFin time.Time `json:"fecha_fin"`
	Status   string    `json:"status"`
}

// ClientListFilter represents filter options for client list
type ClientListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=activo vencido congelado"`
	PlanID   string `form:"plan_id" binding:"omitempty,uuid"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToClientResponse converts a domain Client to ClientResponse
func ToClientResponse(c *membership.Client, now time.Time) ClientResponse {
	return ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		CINIT:         c.CINIT,
		Phone:         c.Phone,
		Email:         c.Email,
		PlanID:        c.PlanID,
		PlanName:      c.PlanName,
		FechaInicio:   c.FechaInicio,
		FechaFin:      c.FechaFin,
		Frozen:        c.Frozen,
		Status:        string(c.StatusAt(now)),
		DaysRemaining: c.DaysRemaining(now),
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		Version:       c.Version,
	}
}

// ToClientListResponse converts a domain Client to ClientListResponse
func ToClientListResponse(c *membership.Client, now time.Time) ClientListResponse {
	return ClientListResponse{
		ID:       c.ID,
		Name:     c.Name,
		CINIT:    c.CINIT,
		Phone:    c.Phone,
		PlanName: c.PlanName,
		FechaFin: c.FechaFin,
		Status:   string(c.StatusAt(now)),
	}
}

// ToClientListResponses converts a slice of domain Clients to ClientListResponses
func ToClientListResponses(clients []membership.Client, now time.Time) []ClientListResponse {
	responses := make([]ClientListResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientListResponse(&clients[i], now)
	}
	return responses
}

// =============================================================================
// Plan DTOs
// =============================================================================

// CreatePlanRequest represents a request to create a membership plan
type CreatePlanRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=100"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	DurationDays int             `json:"duration_days" binding:"required,min=1"`
	Description  string          `json:"description"`
}

// UpdatePlanRequest represents a request to update a membership plan
type UpdatePlanRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Price        *decimal.Decimal `json:"price"`
	DurationDays *int             `json:"duration_days" binding:"omitempty,min=1"`
	Description  *string          `json:"description"`
}

// PlanResponse represents a plan in API responses
type PlanResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int             `json:"duration_days"`
	Description  string          `json:"description"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PlanListFilter represents filter options for the plan list
type PlanListFilter struct {
	Search     string `form:"search"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPlanResponse converts a domain Plan to PlanResponse
func ToPlanResponse(p *membership.Plan) PlanResponse {
	return PlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		DurationDays: p.DurationDays,
		Description:  p.Description,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToPlanResponses converts a slice of domain Plans to PlanResponses
func ToPlanResponses(plans []membership.Plan) []PlanResponse {
	responses := make([]PlanResponse, len(plans))
	for i := range plans {
		responses[i] = ToPlanResponse(&plans[i])
	}
	return responses
}

// =============================================================================
// Check-in DTOs
// =============================================================================

// AdmitRequest represents an admission attempt at the front desk
type AdmitRequest struct {
	CINIT string `json:"ci_nit" binding:"required,min=1,max=50"`
}

// AdmissionResponse represents the outcome of an admission attempt
type AdmissionResponse struct {
	Decision string           `json:"decision"`
	Client   *ClientResponse  `json:"client,omitempty"`
	CheckIn  *CheckInResponse `json:"check_in,omitempty"`
}

// CheckInResponse represents a check-in log entry
type CheckInResponse struct {
	ID          uuid.UUID `json:"id"`
	ClientID    uuid.UUID `json:"client_id"`
	CINIT       string    `json:"ci_nit"`
	ClientName  string    `json:"client_name"`
	PlanName    string    `json:"plan_name"`
	CheckedInAt time.Time `json:"checked_in_at"`
}

// CheckInListFilter represents filter options for the check-in log
type CheckInListFilter struct {
	ClientID string `form:"client_id" binding:"omitempty,uuid"`
	From     string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To       string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToCheckInResponse converts a domain CheckIn to CheckInResponse
func ToCheckInResponse(c *membership.CheckIn) CheckInResponse {
	return CheckInResponse{
		ID:          c.ID,
		ClientID:    c.ClientID,
		CINIT:       c.CINIT,
		ClientName:  c.ClientName,
		PlanName:    c.PlanName,
		CheckedInAt: c.CheckedInAt,
	}
}

// ToCheckInResponses converts a slice of domain CheckIns to CheckInResponses
func ToCheckInResponses(checkIns []membership.CheckIn) []CheckInResponse {
	responses := make([]CheckInResponse, len(checkIns))
	for i := range checkIns {
		responses[i] = ToCheckInResponse(&checkIns[i])
	}
	return responses
}
