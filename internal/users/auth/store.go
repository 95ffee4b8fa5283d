// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"

	"github.com/ianbriton/blogapi/internal/platform/sec"
)

// # User Data Access

// UserRepository defines the data access contract for principals and their roles.
type UserRepository interface {

	/*
		FindByUsername returns the account with the given username.

		Returns apperr NOT_FOUND when no such account exists.
	*/
	FindByUsername(ctx context.Context, username string) (*User, error)

	/*
		Create persists a new account together with its initial roles in a
		single transaction.

		Returns apperr CONFLICT when the username is taken.
	*/
	Create(ctx context.Context, user *User, roles ...sec.Role) error

	// RolesOf returns the role names held by the account, sorted by name.
	RolesOf(ctx context.Context, userID string) ([]string, error)

	// AddToRole grants role to the account. Granting a held role is a no-op.
	AddToRole(ctx context.Context, userID string, role sec.Role) error

	// RoleExists reports whether the role row has been seeded.
	RoleExists(ctx context.Context, role sec.Role) (bool, error)

	// CreateRole inserts the role row. Creating an existing role is a no-op.
	CreateRole(ctx context.Context, role sec.Role) error
}
