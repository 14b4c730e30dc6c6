// Package policy is the single place where roles meet actions. Handlers and
// middleware never compare role strings inline; they ask Allow.
package policy

import "stockroom/internal/model"

// Action identifies a guarded operation surface.
type Action int

const (
	ActionManageUsers Action = iota
	ActionCatalogRead
	ActionCatalogWrite
	ActionLedgerRead
	ActionLedgerWrite
	ActionOrderRead
	ActionOrderWrite
	ActionDashboardRead
)

// Allow reports whether role may perform action. User management is the only
// admin-gated surface; every other action requires nothing beyond a valid
// authenticated role.
func Allow(role model.Role, action Action) bool {
	if !role.Valid() {
		return false
	}
	if action == ActionManageUsers {
		return role == model.RoleAdmin
	}
	return true
}
