package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskflowhq/taskflow-cli/internal/client/models"
	"github.com/taskflowhq/taskflow-cli/internal/common"
)

func (a *App) adminDashboard(ctx context.Context) {
	fmt.Fprintln(a.out, "Admin dashboard. Type 'help' for commands.")
	for {
		fmt.Fprint(a.out, "\nadmin> ")
		line, ok := a.readLine()
		if !ok {
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			fmt.Fprintln(a.out, "Commands:")
			fmt.Fprintln(a.out, "  register  create a new user account")
			fmt.Fprintln(a.out, "  back      return to the main prompt")
		case "register":
			a.runRegister(ctx)
		case "back":
			return
		default:
			fmt.Fprintf(a.out, "Unknown command %q. Type 'help' for commands.\n", fields[0])
		}
	}
}

func (a *App) runRegister(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Full name", a.out)
	if err != nil || name == "" {
		fmt.Fprintln(a.out, "Name must not be empty.")
		return
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil || !strings.Contains(email, "@") {
		fmt.Fprintln(a.out, "Please enter a valid email address.")
		return
	}

	roleText, err := getSimpleText(a.reader, "Role (ADMIN, MANAGER or MEMBER)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to read role.")
		return
	}
	role, err := models.ParseRole(strings.ToUpper(roleText))
	if err != nil {
		fmt.Fprintf(a.out, "Unknown role %q. Use ADMIN, MANAGER or MEMBER.\n", roleText)
		return
	}

	password, err := getPassword(a.out)
	if err != nil || len(password) == 0 {
		fmt.Fprintln(a.out, "Password must not be empty.")
		return
	}
	defer common.WipeByteArray(password)

	created, err := a.admin.Register(ctx, name, email, string(password), role)
	if err != nil {
		a.reportError(ctx, "registration", err)
		return
	}

	fmt.Fprintf(a.out, "Registered %s <%s> with role %s (id %d).\n",
		created.Name, created.Email, created.Role, created.ID)
}
