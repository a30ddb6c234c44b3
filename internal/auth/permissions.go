package auth

// Role names used by the demo credential directory.
const (
	RoleSuperAdmin = "Super Admin"
	RoleManager    = "Manager"
	RoleCashier    = "Cashier"
)

// Capability names gating feature areas. The gating is advisory view
// control, not a security boundary: the register serves a single
// trusted local user.
const (
	CapPOS            = "pos"
	CapInventory      = "inventory"
	CapReports        = "reports"
	CapUsers          = "users"
	CapSettings       = "settings"
	CapBasicInventory = "basic_inventory"
)

// rolePermissions is the fixed role-to-capability table.
var rolePermissions = map[string][]string{
	RoleSuperAdmin: {CapPOS, CapInventory, CapReports, CapUsers, CapSettings},
	RoleManager:    {CapPOS, CapInventory, CapReports},
	RoleCashier:    {CapPOS, CapBasicInventory},
}

// PermissionsFor returns the capability set for a role. Unknown roles
// get an empty set, not an error.
func PermissionsFor(role string) []string {
	perms, ok := rolePermissions[role]
	if !ok {
		return []string{}
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// HasCapability reports whether the actor's role grants the capability.
// A nil actor never has any capability.
func HasCapability(actor *Actor, capability string) bool {
	if actor == nil {
		return false
	}
	for _, c := range rolePermissions[actor.Role] {
		if c == capability {
			return true
		}
	}
	return false
}
