package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/taskflowhq/taskflow-cli/internal/client/models"
)

func renderProjects(w io.Writer, projects []models.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(w, "No projects.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	for _, p := range projects {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", p.ID, p.Name, p.Description)
	}
	tw.Flush()
}

func renderTasks(w io.Writer, tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tPRIORITY\tDUE\tASSIGNEE")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Title, t.Status, t.Priority, t.DueDate, t.MemberName)
	}
	tw.Flush()
}

func renderMembers(w io.Writer, members []models.Member) {
	if len(members) == 0 {
		fmt.Fprintln(w, "No members.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL")
	for _, m := range members {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", m.ID, m.Name, m.Email)
	}
	tw.Flush()
}
