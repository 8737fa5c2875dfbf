// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "fmt"

// # User Roles

// UserRole represents the authorization level carried by a token.
type UserRole string

const (
	// RoleAdmin may run bulk updates and destructive operations.
	RoleAdmin UserRole = "admin"

	// RoleEditor may create records.
	RoleEditor UserRole = "editor"

	// RoleViewer may only read reports.
	RoleViewer UserRole = "viewer"
)

// ParseRole converts a string into a known [UserRole].
func ParseRole(value string) (UserRole, error) {
	role := UserRole(value)
	if role.level() == 0 {
		return "", fmt.Errorf("sec: unknown role %q", value)
	}
	return role, nil
}

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleEditor:
		return 20
	case RoleViewer:
		return 10
	default:
		return 0
	}
}
