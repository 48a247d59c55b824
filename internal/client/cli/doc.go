// Package cli is the interactive shell of the TaskFlow client. The top-level
// loop handles authentication and hands off to a role-specific dashboard
// chosen by the dispatcher; each dashboard is its own small command loop over
// the gateway clients, the session store and the shared resource store.
package cli
