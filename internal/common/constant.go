// Package common contains shared constants and sentinel errors used across
// TaskFlow client components.
package common

// IdentityStorageKey is the fixed metadata key under which the serialized
// identity of the logged-in user is persisted between application sessions.
const IdentityStorageKey = "session.identity"

// RequestIDHeaderName is the HTTP header carrying the per-request
// correlation id on outbound API calls.
const RequestIDHeaderName = "X-Request-Id"
