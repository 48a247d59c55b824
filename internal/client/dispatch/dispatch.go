// Package dispatch maps the current identity to the dashboard presentation
// that should be rendered. It is a pure, stateless decision re-evaluated on
// every dashboard entry; redirects and I/O are the caller's business.
package dispatch

import "github.com/taskflowhq/taskflow-cli/internal/client/models"

// View names one of the dashboard presentations.
type View int

const (
	// ViewUnauthorized is the terminal fallback for a missing identity or
	// a role outside the known set.
	ViewUnauthorized View = iota
	ViewAdmin
	ViewManager
	ViewMember
)

func (v View) String() string {
	switch v {
	case ViewAdmin:
		return "admin"
	case ViewManager:
		return "manager"
	case ViewMember:
		return "member"
	default:
		return "unauthorized"
	}
}

// Resolve selects the dashboard view for the given identity.
func Resolve(id *models.Identity) View {
	if id == nil {
		return ViewUnauthorized
	}
	switch id.Role {
	case models.RoleAdmin:
		return ViewAdmin
	case models.RoleManager:
		return ViewManager
	case models.RoleMember:
		return ViewMember
	default:
		return ViewUnauthorized
	}
}
