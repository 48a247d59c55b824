package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/taskflowhq/taskflow-cli/internal/client/api"
	"github.com/taskflowhq/taskflow-cli/internal/client/models"
)

func (a *App) managerDashboard(ctx context.Context) {
	fmt.Fprintln(a.out, "Manager dashboard. Type 'help' for commands.")
	for {
		fmt.Fprint(a.out, "\nmanager> ")
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
			a.printManagerHelp()
		case "projects":
			refresh := len(fields) > 1 && fields[1] == "refresh"
			a.runListProjects(ctx, refresh)
		case "newproject":
			a.runNewProject(ctx)
		case "project":
			if id, ok := parseID(a, fields, 1, "project id"); ok {
				a.runShowProject(ctx, id)
			}
		case "delproject":
			if id, ok := parseID(a, fields, 1, "project id"); ok {
				a.runDeleteProject(ctx, id)
			}
		case "members":
			if id, ok := parseID(a, fields, 1, "project id"); ok {
				a.runListMembers(ctx, id)
			}
		case "addmembers":
			if id, ok := parseID(a, fields, 1, "project id"); ok {
				a.runAddMembers(ctx, id)
			}
		case "newtask":
			if id, ok := parseID(a, fields, 1, "project id"); ok {
				a.runNewTask(ctx, id)
			}
		case "deltask":
			projectID, ok := parseID(a, fields, 1, "project id")
			if !ok {
				continue
			}
			taskID, ok := parseID(a, fields, 2, "task id")
			if !ok {
				continue
			}
			a.runDeleteTask(ctx, projectID, taskID)
		case "stats":
			a.runStats(ctx)
		case "back":
			return
		default:
			fmt.Fprintf(a.out, "Unknown command %q. Type 'help' for commands.\n", fields[0])
		}
	}
}

func (a *App) printManagerHelp() {
	fmt.Fprintln(a.out, "Commands:")
	fmt.Fprintln(a.out, "  projects [refresh]        list your projects (cached unless refreshed)")
	fmt.Fprintln(a.out, "  newproject                create a project")
	fmt.Fprintln(a.out, "  project <id>              show one project")
	fmt.Fprintln(a.out, "  delproject <id>           delete a project")
	fmt.Fprintln(a.out, "  members <id>              list a project's members")
	fmt.Fprintln(a.out, "  addmembers <id>           search for and assign members")
	fmt.Fprintln(a.out, "  newtask <id>              create a task in a project")
	fmt.Fprintln(a.out, "  deltask <pid> <tid>       delete a task")
	fmt.Fprintln(a.out, "  stats                     task and member totals")
	fmt.Fprintln(a.out, "  back                      return to the main prompt")
}

// parseID pulls a positive integer id out of fields[idx], complaining to
// the user when it is missing or malformed.
func parseID(a *App, fields []string, idx int, what string) (int64, bool) {
	if len(fields) <= idx {
		fmt.Fprintf(a.out, "Missing %s.\n", what)
		return 0, false
	}
	id, err := strconv.ParseInt(fields[idx], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(a.out, "Invalid %s %q.\n", what, fields[idx])
		return 0, false
	}
	return id, true
}

// runListProjects serves from the cached collection unless it is empty or a
// refresh was requested. A failed fetch leaves the cache untouched.
func (a *App) runListProjects(ctx context.Context, refresh bool) {
	if refresh || a.resources.Projects.Len() == 0 {
		projects, err := a.manager.ListProjects(ctx)
		if err != nil {
			a.reportError(ctx, "project listing", err)
			return
		}
		a.resources.Projects.SetAll(projects)
	}
	renderProjects(a.out, a.resources.Projects.Items())
}

func (a *App) runNewProject(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Project name", a.out)
	if err != nil || name == "" {
		fmt.Fprintln(a.out, "Project name must not be empty.")
		return
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to read description.")
		return
	}

	project, msg, err := a.manager.CreateProject(ctx, api.ProjectRequest{Name: name, Description: description})
	if err != nil {
		a.reportError(ctx, "project creation", err)
		return
	}

	a.resources.Projects.Add(*project)
	if msg == "" {
		msg = "Project created."
	}
	fmt.Fprintf(a.out, "%s (id %d)\n", msg, project.ID)
}

func (a *App) runShowProject(ctx context.Context, projectID int64) {
	project, err := a.manager.GetProject(ctx, projectID)
	if err != nil {
		a.reportError(ctx, "project lookup", err)
		return
	}

	fmt.Fprintf(a.out, "Project %d: %s\n", project.ID, project.Name)
	if project.Description != "" {
		fmt.Fprintf(a.out, "  %s\n", project.Description)
	}
	if project.ManagerName != "" {
		fmt.Fprintf(a.out, "  Managed by %s\n", project.ManagerName)
	}
}

func (a *App) runDeleteProject(ctx context.Context, projectID int64) {
	confirmed, err := getConfirm(a.reader,
		fmt.Sprintf("Delete project %d and all its tasks?", projectID), a.out)
	if err != nil || !confirmed {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}

	msg, err := a.manager.DeleteProject(ctx, projectID)
	if err != nil {
		a.reportError(ctx, "project deletion", err)
		return
	}

	a.resources.Projects.Remove(projectID)
	if msg == "" {
		msg = "Project deleted."
	}
	fmt.Fprintln(a.out, msg)
}

func (a *App) runListMembers(ctx context.Context, projectID int64) {
	members, err := a.manager.ListMembers(ctx, projectID)
	if err != nil {
		a.reportError(ctx, "member listing", err)
		return
	}
	a.resources.Members.SetAll(members)
	renderMembers(a.out, members)
}

func (a *App) runNewTask(ctx context.Context, projectID int64) {
	title, err := getSimpleText(a.reader, "Task title", a.out)
	if err != nil || title == "" {
		fmt.Fprintln(a.out, "Task title must not be empty.")
		return
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to read description.")
		return
	}

	dueDate, err := getSimpleText(a.reader, "Due date (YYYY-MM-DD)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to read due date.")
		return
	}
	if _, err := time.Parse("2006-01-02", dueDate); err != nil {
		fmt.Fprintf(a.out, "Invalid due date %q, expected YYYY-MM-DD.\n", dueDate)
		return
	}

	priorityText, err := getSimpleText(a.reader, "Priority (LOW, MEDIUM or HIGH)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to read priority.")
		return
	}
	priority, err := models.ParseTaskPriority(strings.ToUpper(priorityText))
	if err != nil {
		fmt.Fprintf(a.out, "Unknown priority %q.\n", priorityText)
		return
	}

	candidates, err := a.user.AvailableMembersForTask(ctx, projectID)
	if err != nil {
		a.reportError(ctx, "assignee lookup", err)
		return
	}
	if len(candidates) == 0 {
		fmt.Fprintln(a.out, "The project has no members to assign. Add members first.")
		return
	}
	fmt.Fprintln(a.out, "Assignable members:")
	renderMembers(a.out, candidates)

	memberID, ok := a.readMemberID(candidates)
	if !ok {
		return
	}

	task, msg, err := a.manager.CreateTask(ctx, projectID, api.TaskRequest{
		Title:       title,
		Description: description,
		Status:      models.StatusTodo,
		Priority:    priority,
		DueDate:     dueDate,
		MemberID:    memberID,
	})
	if err != nil {
		a.reportError(ctx, "task creation", err)
		return
	}

	a.resources.Tasks.Add(*task)
	if msg == "" {
		msg = "Task created."
	}
	fmt.Fprintf(a.out, "%s (id %d)\n", msg, task.ID)
}

func (a *App) readMemberID(candidates []models.Member) (int64, bool) {
	text, err := getSimpleText(a.reader, "Assign to member id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to read member id.")
		return 0, false
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid member id %q.\n", text)
		return 0, false
	}
	for _, m := range candidates {
		if m.ID == id {
			return id, true
		}
	}
	fmt.Fprintf(a.out, "Member %d is not assignable in this project.\n", id)
	return 0, false
}

func (a *App) runDeleteTask(ctx context.Context, projectID, taskID int64) {
	confirmed, err := getConfirm(a.reader, fmt.Sprintf("Delete task %d?", taskID), a.out)
	if err != nil || !confirmed {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}

	msg, err := a.manager.DeleteTask(ctx, projectID, taskID)
	if err != nil {
		a.reportError(ctx, "task deletion", err)
		return
	}

	a.resources.Tasks.Remove(taskID)
	if msg == "" {
		msg = "Task deleted."
	}
	fmt.Fprintln(a.out, msg)
}

func (a *App) runStats(ctx context.Context) {
	stats, err := a.manager.TaskStats(ctx)
	if err != nil {
		a.reportError(ctx, "stats lookup", err)
		return
	}
	total, err := a.manager.TotalMembers(ctx)
	if err != nil {
		a.reportError(ctx, "member count lookup", err)
		return
	}

	fmt.Fprintf(a.out, "Tasks: %d total, %d in progress (%.1f%%)\n",
		stats.TotalTasks, stats.TasksInProgress, stats.InProgressPercentage)
	fmt.Fprintf(a.out, "Members across your projects: %d\n", total)
}
