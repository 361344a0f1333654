package domain

// Component identifies a governed piece of the ledger. Roles and the pause
// flag are scoped per component.
type Component string

const (
	ComponentSingleUnit   Component = "single_unit"
	ComponentMultiUnit    Component = "multi_unit"
	ComponentMarketplace  Component = "marketplace"
	ComponentStaking      Component = "staking"
	ComponentOrchestrator Component = "orchestrator"
)

// Components lists every governed component, in bootstrap order.
func Components() []Component {
	return []Component{
		ComponentSingleUnit,
		ComponentMultiUnit,
		ComponentMarketplace,
		ComponentStaking,
		ComponentOrchestrator,
	}
}

// Role is a named capability within a component.
type Role string

const (
	RoleAdmin           Role = "ADMIN"
	RolePauser          Role = "PAUSER"
	RoleMinter          Role = "MINTER"
	RoleBurner          Role = "BURNER"
	RoleMetadataManager Role = "METADATA_MANAGER"
	RoleSwap            Role = "SWAP"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RolePauser, RoleMinter, RoleBurner, RoleMetadataManager, RoleSwap:
		return true
	}
	return false
}

// RoleGrant is a (component, role, account) tuple held by the access registry.
type RoleGrant struct {
	Component Component `json:"component"`
	Role      Role      `json:"role"`
	Account   string    `json:"account"`
}
