package identity

import "github.com/gympro/backend/internal/domain/shared"

// Role is the staff role assigned to a user account
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleReceptionist Role = "recepcionista"
)

// Capability names a gated action in the back office
type Capability string

const (
	CapabilityManageClients  Capability = "manage_clients"
	CapabilityCheckIn        Capability = "check_in"
	CapabilityManagePlans    Capability = "manage_plans"
	CapabilityViewAnalytics  Capability = "view_analytics"
	CapabilityManageSettings Capability = "manage_settings"
	CapabilityManageUsers    Capability = "manage_users"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapabilityManageClients:  true,
		CapabilityCheckIn:        true,
		CapabilityManagePlans:    true,
		CapabilityViewAnalytics:  true,
		CapabilityManageSettings: true,
		CapabilityManageUsers:    true,
	},
	RoleReceptionist: {
		CapabilityManageClients: true,
		CapabilityCheckIn:       true,
	},
}

// Can reports whether the role is allowed to perform the capability
func (r Role) Can(capability Capability) bool {
	return roleCapabilities[r][capability]
}

// Capabilities returns the capabilities granted to the role
func (r Role) Capabilities() []Capability {
	granted := roleCapabilities[r]
	capabilities := make([]Capability, 0, len(granted))
	for _, c := range []Capability{
		CapabilityManageClients,
		CapabilityCheckIn,
		CapabilityManagePlans,
		CapabilityViewAnalytics,
		CapabilityManageSettings,
		CapabilityManageUsers,
	} {
		if granted[c] {
			capabilities = append(capabilities, c)
		}
	}
	return capabilities
}

// IsAdmin returns true for the admin role
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ValidateRole checks that the role is one of the known staff roles
func ValidateRole(role Role) error {
	switch role {
	case RoleAdmin, RoleReceptionist:
		return nil
	default:
		return shared.NewDomainError("INVALID_ROLE", "Role must be 'admin' or 'recepcionista'")
	}
}
