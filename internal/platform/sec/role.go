// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// Role represents an authorization membership granted to an account.
//
// Roles are a set, not a ladder: an Owner who was never made Admin does not
// pass an Admin guard.
type Role string

const (
	// Default role for every registered account
	RoleUser Role = "User"

	// Can read every blog post
	RoleAdmin Role = "Admin"

	// Can delete blog posts and grant ownership
	RoleOwner Role = "Owner"
)

// AllRoles returns the fixed role enumeration in seeding order.
func AllRoles() []Role {
	return []Role{RoleUser, RoleAdmin, RoleOwner}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// # Role Checks

// HasAny reports whether held contains at least one of the required roles.
// An empty requirement is satisfied by any authenticated caller.
func HasAny(held []string, required ...Role) bool {
	if len(required) == 0 {
		return true
	}

	for _, want := range required {
		for _, have := range held {
			if have == string(want) {
				return true
			}
		}
	}
	return false
}
