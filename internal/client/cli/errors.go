package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskflowhq/taskflow-cli/internal/client/api"
)

// reportError translates an API failure into one user-facing line. The
// three failure families are kept apart so the user knows whether to fix
// their input, check their connection or re-authenticate.
func (a *App) reportError(ctx context.Context, action string, err error) {
	var apiErr *api.Error
	switch {
	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintf(a.out, "Cannot reach the server, %s was not performed. Check your connection and try again.\n", action)
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Fprintln(a.out, "Session rejected by the server. Please login again.")
	case errors.As(err, &apiErr):
		fmt.Fprintf(a.out, "Server rejected %s: %s\n", action, apiErr.Message)
	default:
		fmt.Fprintf(a.out, "Failed to perform %s: %v\n", action, err)
	}
	a.log.Warn(ctx, "operation failed", "action", action, "error", err)
}
