package membership

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/shared"
)

// ClientStatus represents the membership status of a client
type ClientStatus string

const (
	ClientStatusActive  ClientStatus = "activo"
	ClientStatusExpired ClientStatus = "vencido"
	ClientStatusFrozen  ClientStatus = "congelado"
)

// BoliviaPhonePrefix is the country prefix prepended to local phone numbers
const BoliviaPhonePrefix = "+591"

// Client represents a gym member in the membership context
// It is the aggregate root for client-related operations
type Client struct {
	shared.BaseAggregateRoot
	Name        string
	CINIT       string // National ID or tax number used at the front desk
	Phone       string // Canonical form: +591 followed by 8 digits
	Email       string
	PlanID      uuid.UUID
	PlanName    string // Snapshot at assignment time
	FechaInicio time.Time
	FechaFin    time.Time
	Frozen      bool
	Status      ClientStatus // Cached label; StatusAt is authoritative
	Notes       string
}

// NewClient creates a new client with an initial membership window
func NewClient(name, cinit, phone, email string, planID uuid.UUID, planName string, fechaInicio, fechaFin time.Time) (*Client, error) {
	if err := validateClientName(name); err != nil {
		return nil, err
	}
	if err := validateCINIT(cinit); err != nil {
		return nil, err
	}
	canonicalPhone, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}
	if email != "" {
		if err := validateClientEmail(email); err != nil {
			return nil, err
		}
	}
	if planID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PLAN", "Plan is required")
	}
	if err := validateMembershipWindow(fechaInicio, fechaFin); err != nil {
		return nil, err
	}

	client := &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		CINIT:             strings.TrimSpace(cinit),
		Phone:             canonicalPhone,
		Email:             strings.TrimSpace(email),
		PlanID:            planID,
		PlanName:          planName,
		FechaInicio:       fechaInicio,
		FechaFin:          fechaFin,
		Status:            ClientStatusActive,
	}
	client.Status = client.StatusAt(time.Now())

	client.AddDomainEvent(NewClientRegisteredEvent(client))

	return client, nil
}

// StatusAt evaluates the client's status at the given instant.
// Frozen takes precedence over expiry, expiry over active. The membership
// window is half-open: the instant now == FechaFin is already expired.
func (c *Client) StatusAt(now time.Time) ClientStatus {
	if c.Frozen {
		return ClientStatusFrozen
	}
	if !now.Before(c.FechaFin) {
		return ClientStatusExpired
	}
	return ClientStatusActive
}

// RefreshStatus recomputes the cached status label from the current time
func (c *Client) RefreshStatus(now time.Time) bool {
	status := c.StatusAt(now)
	if status == c.Status {
		return false
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return true
}

// Update updates the client's contact information
func (c *Client) Update(name, phone, email string) error {
	if err := validateClientName(name); err != nil {
		return err
	}
	canonicalPhone, err := NormalizePhone(phone)
	if err != nil {
		return err
	}
	if email != "" {
		if err := validateClientEmail(email); err != nil {
			return err
		}
	}

	c.Name = strings.TrimSpace(name)
	c.Phone = canonicalPhone
	c.Email = strings.TrimSpace(email)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientUpdatedEvent(c))

	return nil
}

// UpdateCINIT updates the client's identification number
func (c *Client) UpdateCINIT(cinit string) error {
	if err := validateCINIT(cinit); err != nil {
		return err
	}

	c.CINIT = strings.TrimSpace(cinit)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientUpdatedEvent(c))

	return nil
}

// Renew starts a fresh membership window from now using the plan's duration.
// The new window always starts at now regardless of any remaining time.
// Frozen clients cannot renew; they must be unfrozen first.
func (c *Client) Renew(plan *Plan, now time.Time) error {
	if c.Frozen {
		return shared.NewDomainError("CLIENT_FROZEN", "Client is frozen; unfreeze before renewing")
	}
	if plan == nil {
		return shared.NewDomainError("INVALID_PLAN", "Plan is required")
	}
	if plan.DurationDays <= 0 {
		return shared.NewDomainError("INVALID_PLAN_DURATION", "Plan duration must be at least one day")
	}

	c.PlanID = plan.ID
	c.PlanName = plan.Name
	c.FechaInicio = now
	c.FechaFin = now.Add(time.Duration(plan.DurationDays) * 24 * time.Hour)
	c.Status = c.StatusAt(now)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientRenewedEvent(c, plan))

	return nil
}

// Freeze suspends the client's membership until explicitly unfrozen
func (c *Client) Freeze() error {
	if c.Frozen {
		return shared.NewDomainError("ALREADY_FROZEN", "Client is already frozen")
	}

	c.Frozen = true
	c.Status = ClientStatusFrozen
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientStatusChangedEvent(c, ClientStatusFrozen))

	return nil
}

// Unfreeze lifts the freeze; the status falls back to whatever the
// membership window dictates at the given instant
func (c *Client) Unfreeze(now time.Time) error {
	if !c.Frozen {
		return shared.NewDomainError("NOT_FROZEN", "Client is not frozen")
	}

	c.Frozen = false
	c.Status = c.StatusAt(now)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientStatusChangedEvent(c, c.Status))

	return nil
}

// SetNotes sets the client's notes
func (c *Client) SetNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// IsActive returns true if the client may enter right now
func (c *Client) IsActive() bool {
	return c.StatusAt(time.Now()) == ClientStatusActive
}

// IsExpired returns true if the membership window has ended
func (c *Client) IsExpired() bool {
	return c.StatusAt(time.Now()) == ClientStatusExpired
}

// IsFrozen returns true if the client is frozen
func (c *Client) IsFrozen() bool {
	return c.Frozen
}

// DaysRemaining returns the whole days left in the membership window,
// or zero when the window has already ended
func (c *Client) DaysRemaining(now time.Time) int {
	if !now.Before(c.FechaFin) {
		return 0
	}
	return int(c.FechaFin.Sub(now).Hours() / 24)
}

// NormalizePhone converts a raw phone input into the canonical +591 form.
// Accepted inputs are exactly eight local digits, optionally already
// carrying the +591 prefix; separators are stripped first.
func NormalizePhone(phone string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, phone)

	cleaned = strings.TrimPrefix(cleaned, BoliviaPhonePrefix)

	if len(cleaned) != 8 {
		return "", shared.NewDomainError("INVALID_PHONE", "Phone number must have exactly 8 digits")
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", shared.NewDomainError("INVALID_PHONE", "Phone number can only contain digits")
		}
	}

	return BoliviaPhonePrefix + cleaned, nil
}

// Validation functions

func validateClientName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if len([]rune(trimmed)) < 2 {
		return shared.NewDomainError("INVALID_NAME", "Client name must have at least 2 characters")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot exceed 200 characters")
	}
	return nil
}

func validateCINIT(cinit string) error {
	trimmed := strings.TrimSpace(cinit)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_CINIT", "CI/NIT cannot be empty")
	}
	if len(trimmed) > 50 {
		return shared.NewDomainError("INVALID_CINIT", "CI/NIT cannot exceed 50 characters")
	}
	return nil
}

func validateClientEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validateMembershipWindow(fechaInicio, fechaFin time.Time) error {
	if fechaInicio.IsZero() || fechaFin.IsZero() {
		return shared.NewDomainError("INVALID_MEMBERSHIP_WINDOW", "Membership dates are required")
	}
	if !fechaFin.After(fechaInicio) {
		return shared.NewDomainError("INVALID_MEMBERSHIP_WINDOW", "Membership end date must be after the start date")
	}
	return nil
}
