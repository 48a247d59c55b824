package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskflowhq/taskflow-cli/internal/common"
)

// runLogin asks for credentials, authenticates and, on success, stores the
// identity and drops straight into the role's dashboard.
func (a *App) runLogin(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to read email.")
		return
	}
	if !strings.Contains(email, "@") {
		fmt.Fprintln(a.out, "Please enter a valid email address.")
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to read password.")
		return
	}
	defer common.WipeByteArray(password)

	if len(password) == 0 {
		fmt.Fprintln(a.out, "Password must not be empty.")
		return
	}

	id, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		a.reportError(ctx, "login", err)
		return
	}

	a.session.Set(ctx, id)
	fmt.Fprintf(a.out, "Welcome, %s.\n", id.Name)
	a.runDashboard(ctx)
}

// runLogout ends the session locally no matter what; the server call is
// best effort.
func (a *App) runLogout(ctx context.Context) {
	if !a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}

	if err := a.auth.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed", "error", err)
	}

	a.session.Logout(ctx)
	a.resources.ClearAll()
	fmt.Fprintln(a.out, "Logged out.")
}
