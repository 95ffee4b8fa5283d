// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements registration, login, logout and role elevation.

# Architecture

  - Service: orchestrates the session use cases over a [UserRepository], a
    token issuer and the process-wide revocation set.
  - Repository: PostgreSQL tables users.account, users.role and users.accountrole.
  - Handler: the /api/Auth endpoints, declared as a route table.

Roles are embedded in the token at login. Granting a role never changes a
token that was already issued.
*/
package auth

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// # Domain Entities

// User is a registered principal.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is the result of a successful login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// # Field Identifiers

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// # Messages

const (
	MsgRoleExists        = "Role already exists"
	MsgRolesSeeded       = "Role Seeding to the Database succeeded."
	MsgUserExists        = "User already exists"
	MsgUserCreated       = "User successfully created."
	MsgUserCreateFailed  = "User creation failed"
	MsgInvalidCredential = "Invalid Credentials"
	MsgInvalidUserName   = "Invalid User name"
	MsgNowAdmin          = "User is now an Admin"
	MsgNowOwner          = "User is now an Owner"
)

// Username length bounds.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 256
)

// NormalizeUsername returns the key under which usernames are unique, so that
// "Alice" and "alice" name the same account.
func NormalizeUsername(username string) string {
	return cases.Fold().String(strings.TrimSpace(username))
}
