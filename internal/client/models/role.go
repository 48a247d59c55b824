// Package models defines the entity types exchanged with the TaskFlow API
// and held by the client-side stores.
package models

import (
	"errors"
	"fmt"
)

// Role classifies an authenticated user.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleMember  Role = "MEMBER"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a raw role string from the API or user input.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleMember:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// Known reports whether r is one of the three defined roles. Identities
// with unknown roles are treated as unauthorized by the dispatcher.
func (r Role) Known() bool {
	_, err := ParseRole(string(r))
	return err == nil
}
