package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/taskflowhq/taskflow-cli/internal/client/dispatch"
)

// readLine reads one line from the interactive input. ok is false when the
// input stream ends.
func (a *App) readLine() (string, bool) {
	line, err := a.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), true
		}
		return "", false
	}
	return strings.TrimSpace(line), true
}

// Run loads any persisted session and enters the top-level command loop.
// It returns when the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.session.Load(ctx)

	fmt.Fprintln(a.out, "TaskFlow CLI. Type 'help' for commands.")
	if id := a.session.Identity(); id != nil {
		fmt.Fprintf(a.out, "Restored session for %s (%s).\n", id.Name, id.Role)
	}

	for {
		fmt.Fprintf(a.out, "\ntaskflow%s> ", a.promptSuffix())
		line, ok := a.readLine()
		if !ok {
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			a.printRootHelp()
		case "login":
			a.runLogin(ctx)
		case "logout":
			a.runLogout(ctx)
		case "whoami":
			a.runWhoami(ctx)
		case "dashboard":
			a.runDashboard(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye.")
			return nil
		default:
			fmt.Fprintf(a.out, "Unknown command %q. Type 'help' for commands.\n", fields[0])
		}
	}
}

func (a *App) printRootHelp() {
	fmt.Fprintln(a.out, "Commands:")
	fmt.Fprintln(a.out, "  login      authenticate and open your dashboard")
	fmt.Fprintln(a.out, "  dashboard  reopen the dashboard for your role")
	fmt.Fprintln(a.out, "  whoami     show the current session")
	fmt.Fprintln(a.out, "  logout     end the session")
	fmt.Fprintln(a.out, "  exit       leave the client")
}

func (a *App) promptSuffix() string {
	id := a.session.Identity()
	if id == nil {
		return ""
	}
	return fmt.Sprintf(" [%s %s]", strings.ToLower(string(id.Role)), id.Email)
}

// runDashboard re-evaluates the role on every entry; a stale or foreign
// role falls through to the unauthorized message rather than a dashboard.
func (a *App) runDashboard(ctx context.Context) {
	switch dispatch.Resolve(a.session.Identity()) {
	case dispatch.ViewAdmin:
		a.adminDashboard(ctx)
	case dispatch.ViewManager:
		a.managerDashboard(ctx)
	case dispatch.ViewMember:
		a.memberDashboard(ctx)
	default:
		fmt.Fprintln(a.out, "Unauthorized. Please login first.")
	}
}

func (a *App) runWhoami(ctx context.Context) {
	id := a.session.Identity()
	if id == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}

	fmt.Fprintf(a.out, "%s <%s>, role %s, view %s\n",
		id.Name, id.Email, id.Role, dispatch.Resolve(id))
	if exp, ok := a.session.TokenExpiry(); ok {
		fmt.Fprintf(a.out, "Token expires %s\n", exp.Local().Format(time.RFC1123))
	}

	// refresh the profile from the server when reachable
	fresh, err := a.user.CurrentUser(ctx)
	if err != nil {
		a.log.Debug(ctx, "profile refresh failed", "error", err)
		return
	}
	fresh.Token = id.Token
	a.session.Set(ctx, fresh)
}
