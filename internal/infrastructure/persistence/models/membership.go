package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/membership"
	"github.com/shopspring/decimal"
)

// ClientModel is the persistence model for the Client domain entity.
type ClientModel struct {
	AggregateModel
	Name        string                  `gorm:"type:varchar(200);not null"`
	CINIT       string                  `gorm:"column:cinit;type:varchar(50);not null;uniqueIndex:idx_clients_cinit"`
	Phone       string                  `gorm:"type:varchar(20);not null"`
	Email       string                  `gorm:"type:varchar(200);index"`
	PlanID      uuid.UUID               `gorm:"type:uuid;not null;index"`
	PlanName    string                  `gorm:"type:varchar(100);not null"`
	FechaInicio time.Time               `gorm:"not null"`
	FechaFin    time.Time               `gorm:"not null;index"`
	Frozen      bool                    `gorm:"not null;default:false"`
	Status      membership.ClientStatus `gorm:"type:varchar(20);not null;default:'activo';index"`
	Notes       string                  `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *membership.Client {
	return &membership.Client{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		CINIT:             m.CINIT,
		Phone:             m.Phone,
		Email:             m.Email,
		PlanID:            m.PlanID,
		PlanName:          m.PlanName,
		FechaInicio:       m.FechaInicio,
		FechaFin:          m.FechaFin,
		Frozen:            m.Frozen,
		Status:            m.Status,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *membership.Client) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.CINIT = c.CINIT
	m.Phone = c.Phone
	m.Email = c.Email
	m.PlanID = c.PlanID
	m.PlanName = c.PlanName
	m.FechaInicio = c.FechaInicio
	m.FechaFin = c.FechaFin
	m.Frozen = c.Frozen
	m.Status = c.Status
	m.Notes = c.Notes
}

// ClientModelFromDomain creates a new persistence model from a domain Client entity.
func ClientModelFromDomain(c *membership.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}

// PlanModel is the persistence model for the Plan domain entity.
type PlanModel struct {
	AggregateModel
	Name         string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_plans_name"`
	Price        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DurationDays int             `gorm:"not null"`
	Description  string          `gorm:"type:text"`
	Active       bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (PlanModel) TableName() string {
	return "plans"
}

// ToDomain converts the persistence model to a domain Plan entity.
func (m *PlanModel) ToDomain() *membership.Plan {
	return &membership.Plan{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Price:             m.Price,
		DurationDays:      m.DurationDays,
		Description:       m.Description,
		Active:            m.Active,
	}
}

// FromDomain populates the persistence model from a domain Plan entity.
func (m *PlanModel) FromDomain(p *membership.Plan) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Name = p.Name
	m.Price = p.Price
	m.DurationDays = p.DurationDays
	m.Description = p.Description
	m.Active = p.Active
}

// PlanModelFromDomain creates a new persistence model from a domain Plan entity.
func PlanModelFromDomain(p *membership.Plan) *PlanModel {
	m := &PlanModel{}
	m.FromDomain(p)
	return m
}

// CheckInModel is the persistence model for the CheckIn domain entity.
type CheckInModel struct {
	BaseModel
	ClientID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CINIT       string    `gorm:"column:cinit;type:varchar(50);not null;index"`
	ClientName  string    `gorm:"type:varchar(200);not null"`
	PlanName    string    `gorm:"type:varchar(100)"`
	CheckedInAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (CheckInModel) TableName() string {
	return "check_ins"
}

// ToDomain converts the persistence model to a domain CheckIn entity.
func (m *CheckInModel) ToDomain() *membership.CheckIn {
	return &membership.CheckIn{
		BaseEntity:  m.BaseModel.ToDomain(),
		ClientID:    m.ClientID,
		CINIT:       m.CINIT,
		ClientName:  m.ClientName,
		PlanName:    m.PlanName,
		CheckedInAt: m.CheckedInAt,
	}
}

// FromDomain populates the persistence model from a domain CheckIn entity.
func (m *CheckInModel) FromDomain(c *membership.CheckIn) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.ClientID = c.ClientID
	m.CINIT = c.CINIT
	m.ClientName = c.ClientName
	m.PlanName = c.PlanName
	m.CheckedInAt = c.CheckedInAt
}

// CheckInModelFromDomain creates a new persistence model from a domain CheckIn entity.
func CheckInModelFromDomain(c *membership.CheckIn) *CheckInModel {
	m := &CheckInModel{}
	m.FromDomain(c)
	return m
}
