package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskflowhq/taskflow-cli/internal/client/models"
)

func (a *App) memberDashboard(ctx context.Context) {
	fmt.Fprintln(a.out, "Member dashboard. Type 'help' for commands.")
	for {
		fmt.Fprint(a.out, "\nmember> ")
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
			fmt.Fprintln(a.out, "  tasks [refresh]              list your tasks (cached unless refreshed)")
			fmt.Fprintln(a.out, "  status <id> <STATUS>         set TODO, IN_PROGRESS or DONE")
			fmt.Fprintln(a.out, "  priority <id> <PRIORITY>     set LOW, MEDIUM or HIGH")
			fmt.Fprintln(a.out, "  back                         return to the main prompt")
		case "tasks":
			refresh := len(fields) > 1 && fields[1] == "refresh"
			a.runMyTasks(ctx, refresh)
		case "status":
			a.runUpdateStatus(ctx, fields)
		case "priority":
			a.runUpdatePriority(ctx, fields)
		case "back":
			return
		default:
			fmt.Fprintf(a.out, "Unknown command %q. Type 'help' for commands.\n", fields[0])
		}
	}
}

// runMyTasks serves from the cached collection unless it is empty or a
// refresh was requested. A failed fetch leaves the cache untouched.
func (a *App) runMyTasks(ctx context.Context, refresh bool) {
	if refresh || a.resources.Tasks.Len() == 0 {
		tasks, err := a.member.MyTasks(ctx)
		if err != nil {
			a.reportError(ctx, "task listing", err)
			return
		}
		a.resources.Tasks.SetAll(tasks)
	}
	renderTasks(a.out, a.resources.Tasks.Items())
}

func (a *App) runUpdateStatus(ctx context.Context, fields []string) {
	taskID, ok := parseID(a, fields, 1, "task id")
	if !ok {
		return
	}
	if len(fields) < 3 {
		fmt.Fprintln(a.out, "Missing status. Use TODO, IN_PROGRESS or DONE.")
		return
	}
	status, err := models.ParseTaskStatus(strings.ToUpper(fields[2]))
	if err != nil {
		fmt.Fprintf(a.out, "Unknown status %q. Use TODO, IN_PROGRESS or DONE.\n", fields[2])
		return
	}

	updated, msg, err := a.member.UpdateTaskStatus(ctx, taskID, status)
	if err != nil {
		a.reportError(ctx, "status update", err)
		return
	}

	a.applyTaskUpdate(*updated)
	if msg == "" {
		msg = "Status updated."
	}
	fmt.Fprintln(a.out, msg)
}

func (a *App) runUpdatePriority(ctx context.Context, fields []string) {
	taskID, ok := parseID(a, fields, 1, "task id")
	if !ok {
		return
	}
	if len(fields) < 3 {
		fmt.Fprintln(a.out, "Missing priority. Use LOW, MEDIUM or HIGH.")
		return
	}
	priority, err := models.ParseTaskPriority(strings.ToUpper(fields[2]))
	if err != nil {
		fmt.Fprintf(a.out, "Unknown priority %q. Use LOW, MEDIUM or HIGH.\n", fields[2])
		return
	}

	updated, msg, err := a.member.UpdateTaskPriority(ctx, taskID, priority)
	if err != nil {
		a.reportError(ctx, "priority update", err)
		return
	}

	a.applyTaskUpdate(*updated)
	if msg == "" {
		msg = "Priority updated."
	}
	fmt.Fprintln(a.out, msg)
}

// applyTaskUpdate folds a server-confirmed task back into the cache.
func (a *App) applyTaskUpdate(task models.Task) {
	if _, ok := a.resources.Tasks.Get(task.ID); !ok {
		a.resources.Tasks.Add(task)
		return
	}
	a.resources.Tasks.Update(task.ID, func(t *models.Task) { *t = task })
}
