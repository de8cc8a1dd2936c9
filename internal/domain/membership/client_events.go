package membership

import (
	"time"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeClient  = "Client"
	AggregateTypePlan    = "Plan"
	AggregateTypeCheckIn = "CheckIn"
)

// Event type constants
const (
	EventTypeClientRegistered    = "ClientRegistered"
	EventTypeClientUpdated       = "ClientUpdated"
	EventTypeClientRenewed       = "ClientRenewed"
	EventTypeClientStatusChanged = "ClientStatusChanged"
	EventTypeClientDeleted       = "ClientDeleted"
	EventTypeClientAdmitted      = "ClientAdmitted"
	EventTypeClientDenied        = "ClientDenied"
)

// ClientRegisteredEvent is published when a new client is registered
type ClientRegisteredEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
	CINIT    string    `json:"ci_nit"`
	Name     string    `json:"name"`
	PlanID   uuid.UUID `json:"plan_id"`
}

// NewClientRegisteredEvent creates a new ClientRegisteredEvent
func NewClientRegisteredEvent(client *Client) *ClientRegisteredEvent {
	return &ClientRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientRegistered, AggregateTypeClient, client.ID),
		ClientID:        client.ID,
		CINIT:           client.CINIT,
		Name:            client.Name,
		PlanID:          client.PlanID,
	}
}

// ClientUpdatedEvent is published when a client's details change
type ClientUpdatedEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
	CINIT    string    `json:"ci_nit"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone,omitempty"`
	Email    string    `json:"email,omitempty"`
}

// NewClientUpdatedEvent creates a new ClientUpdatedEvent
func NewClientUpdatedEvent(client *Client) *ClientUpdatedEvent {
	return &ClientUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientUpdated, AggregateTypeClient, client.ID),
		ClientID:        client.ID,
		CINIT:           client.CINIT,
		Name:            client.Name,
		Phone:           client.Phone,
		Email:           client.Email,
	}
}

// ClientRenewedEvent is published when a client's membership is renewed
type ClientRenewedEvent struct {
	shared.BaseDomainEvent
	ClientID    uuid.UUID `json:"client_id"`
	CINIT       string    `json:"ci_nit"`
	PlanID      uuid.UUID `json:"plan_id"`
	PlanName    string    `json:"plan_name"`
	FechaInicio time.Time `json:"fecha_inicio"`
	FechaFin    time.Time `json:"fecha_fin"`
}

// NewClientRenewedEvent creates a new ClientRenewedEvent
func NewClientRenewedEvent(client *Client, plan *Plan) *ClientRenewedEvent {
	return &ClientRenewedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientRenewed, AggregateTypeClient, client.ID),
		ClientID:        client.ID,
		CINIT:           client.CINIT,
		PlanID:          plan.ID,
		PlanName:        plan.Name,
		FechaInicio:     client.FechaInicio,
		FechaFin:        client.FechaFin,
	}
}

// ClientStatusChangedEvent is published when a client is frozen or unfrozen
type ClientStatusChangedEvent struct {
	shared.BaseDomainEvent
	ClientID  uuid.UUID    `json:"client_id"`
	CINIT     string       `json:"ci_nit"`
	NewStatus ClientStatus `json:"new_status"`
}

// NewClientStatusChangedEvent creates a new ClientStatusChangedEvent
func NewClientStatusChangedEvent(client *Client, newStatus ClientStatus) *ClientStatusChangedEvent {
	return &ClientStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientStatusChanged, AggregateTypeClient, client.ID),
		ClientID:        client.ID,
		CINIT:           client.CINIT,
		NewStatus:       newStatus,
	}
}

// ClientDeletedEvent is published when a client is removed from the registry
type ClientDeletedEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
	CINIT    string    `json:"ci_nit"`
	Name     string    `json:"name"`
}

// NewClientDeletedEvent creates a new ClientDeletedEvent
func NewClientDeletedEvent(client *Client) *ClientDeletedEvent {
	return &ClientDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientDeleted, AggregateTypeClient, client.ID),
		ClientID:        client.ID,
		CINIT:           client.CINIT,
		Name:            client.Name,
	}
}
