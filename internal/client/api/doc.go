// Package api contains the HTTP gateway clients for the TaskFlow REST API.
//
// # Overview
//
// One transport core (Client) issues JSON requests, attaches the bearer
// token and a per-request correlation id, and unwraps the uniform response
// envelope {message, data, statusCode}. The statusCode inside the body is
// the authoritative success discriminator; the message is a human-readable
// diagnostic surfaced on failure paths.
//
// Per-role surfaces wrap the core: AuthClient (login/logout), AdminClient
// (user registration), ManagerClient (projects, members, tasks, stats),
// MemberClient (own tasks) and UserClient (current user, member search).
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable (no response received) and ErrUnauthorized.
// Server-rejected requests carry the envelope's message and status code as
// an *Error. Malformed payloads surface as wrapped decode errors.
//
// All operations accept context.Context and honor cancellation/timeouts.
package api
