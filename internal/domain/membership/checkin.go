package membership

import (
	"time"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/shared"
)

// AdmissionDecision is the outcome of an admission attempt at the door
type AdmissionDecision string

const (
	AdmissionAdmitted        AdmissionDecision = "admitted"
	AdmissionRenewalRequired AdmissionDecision = "renewal_required"
	AdmissionBlocked         AdmissionDecision = "blocked"
	AdmissionNotFound        AdmissionDecision = "not_found"
)

// CheckIn records a single successful admission of a client.
// Name and plan are snapshots so the log stays readable after
// the client record changes.
type CheckIn struct {
	shared.BaseEntity
	ClientID    uuid.UUID
	CINIT       string
	ClientName  string
	PlanName    string
	CheckedInAt time.Time
}

// NewCheckIn records an admission of the given client at the given instant
func NewCheckIn(client *Client, at time.Time) *CheckIn {
	return &CheckIn{
		BaseEntity:  shared.NewBaseEntity(),
		ClientID:    client.ID,
		CINIT:       client.CINIT,
		ClientName:  client.Name,
		PlanName:    client.PlanName,
		CheckedInAt: at,
	}
}
