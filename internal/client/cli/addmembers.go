package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/taskflowhq/taskflow-cli/internal/client/search"
)

// runAddMembers drives the interactive assignment flow: type text to search
// for candidates, +id / -id to toggle them, done to commit. Typed queries
// are debounced and answered in query order, so results shown always belong
// to the text last typed.
func (a *App) runAddMembers(ctx context.Context, projectID int64) {
	snapshots := make(chan search.Snapshot, 16)
	searcher := search.New(a.user.SearchAvailableMembers, projectID, search.Config{
		Window:   a.config.SearchDebounce,
		OnChange: func(s search.Snapshot) { snapshots <- s },
	}, a.log)
	defer searcher.Close()

	sel := search.NewSelection()

	fmt.Fprintln(a.out, "Member search. Type at least 2 characters to search,")
	fmt.Fprintln(a.out, "'+<id>' / '-<id>' to select or deselect, 'list' to review,")
	fmt.Fprintln(a.out, "'done' to assign, 'cancel' to leave without assigning.")

	for {
		fmt.Fprintf(a.out, "\nsearch (%d selected)> ", sel.Len())
		line, ok := a.readLine()
		if !ok {
			return
		}

		switch {
		case line == "done":
			if a.commitMembers(ctx, projectID, sel) {
				return
			}
		case line == "cancel":
			fmt.Fprintln(a.out, "Cancelled, nothing assigned.")
			return
		case line == "list":
			renderMembers(a.out, sel.Details())
		case strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-"):
			a.toggleMember(sel, line, searcher)
		default:
			searcher.SetQuery(ctx, line)
			snap, ok := a.awaitSearch(snapshots)
			if !ok {
				fmt.Fprintln(a.out, "Search timed out.")
				continue
			}
			if len(snap.Query) >= search.DefaultMinQueryLen && len(snap.Results) == 0 {
				fmt.Fprintln(a.out, "No matching members.")
				continue
			}
			if len(snap.Results) > 0 {
				renderMembers(a.out, snap.Results)
			}
		}
	}
}

// awaitSearch drains snapshots until the search settles (not loading).
func (a *App) awaitSearch(snapshots <-chan search.Snapshot) (search.Snapshot, bool) {
	deadline := time.After(a.config.SearchDebounce + a.config.RequestTimeout + time.Second)
	for {
		select {
		case snap := <-snapshots:
			if !snap.Loading {
				return snap, true
			}
		case <-deadline:
			return search.Snapshot{}, false
		}
	}
}

func (a *App) toggleMember(sel *search.Selection, line string, searcher *search.Searcher) {
	id, err := strconv.ParseInt(line[1:], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(a.out, "Invalid member id %q.\n", line[1:])
		return
	}

	if sel.Toggle(id, searcher.Results()) {
		fmt.Fprintf(a.out, "Selected member %d.\n", id)
	} else {
		fmt.Fprintf(a.out, "Deselected member %d.\n", id)
	}
}

// commitMembers sends the selection to the server. An empty selection is a
// local validation error and never reaches the network; a failed request
// keeps the selection so the user can retry. Returns true when the flow is
// finished.
func (a *App) commitMembers(ctx context.Context, projectID int64, sel *search.Selection) bool {
	if sel.Len() == 0 {
		fmt.Fprintln(a.out, "Select at least one member first.")
		return false
	}

	msg, err := a.manager.AddMembers(ctx, projectID, sel.IDs())
	if err != nil {
		a.reportError(ctx, "member assignment", err)
		return false
	}

	if msg == "" {
		msg = "Members assigned."
	}
	fmt.Fprintln(a.out, msg)
	sel.Clear()

	// refresh the cached member list; a failure here only affects the cache
	if members, err := a.manager.ListMembers(ctx, projectID); err == nil {
		a.resources.Members.SetAll(members)
	} else {
		a.log.Warn(ctx, "member list refresh failed", "project_id", projectID, "error", err)
	}
	return true
}
