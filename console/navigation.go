package console

// Action is one entry of the admin panel's menu/action surface.
type Action string

const (
	ActionDashboard      Action = "dashboard"
	ActionIncoming       Action = "permohonan-baru"
	ActionProcessing     Action = "permohonan-diproses"
	ActionHistory        Action = "riwayat"
	ActionManageTypes    Action = "kelola-perizinan"
	ActionManageAdmins   Action = "kelola-admin"
	ActionNotifications  Action = "notifikasi"
	ActionChangePassword Action = "ubah-password"
)

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// capabilities is the single place role access is decided. An action absent
// from a role's set must never be offered to, or reachable by, that role.
var capabilities = map[string][]Action{
	RoleAdmin: {
		ActionDashboard,
		ActionIncoming,
		ActionProcessing,
		ActionHistory,
		ActionNotifications,
		ActionChangePassword,
	},
	RoleSuperAdmin: {
		ActionDashboard,
		ActionIncoming,
		ActionProcessing,
		ActionHistory,
		ActionManageTypes,
		ActionManageAdmins,
		ActionNotifications,
		ActionChangePassword,
	},
}

// VisibleActions returns the menu entries the role may see, in display
// order. Unknown roles see nothing.
func VisibleActions(role string) []Action {
	allowed := capabilities[role]
	out := make([]Action, len(allowed))
	copy(out, allowed)
	return out
}

// CanAccess reports whether the role may reach the action. Callers must
// render an explicit access-denied state when this is false, never a
// partial view.
func CanAccess(role string, action Action) bool {
	for _, allowed := range capabilities[role] {
		if allowed == action {
			return true
		}
	}
	return false
}

// AccountAction is an operation offered on one admin-account row.
type AccountAction string

const (
	AccountEdit          AccountAction = "edit"
	AccountDeactivate    AccountAction = "deactivate"
	AccountDelete        AccountAction = "delete"
	AccountResetPassword AccountAction = "reset-password"
)

// AccountActions returns the operations offered for a given account row.
// The caller's own record is never offered deactivate or delete.
func AccountActions(callerID, recordID string) []AccountAction {
	actions := []AccountAction{AccountEdit, AccountResetPassword}
	if callerID != recordID {
		actions = append(actions, AccountDeactivate, AccountDelete)
	}
	return actions
}
