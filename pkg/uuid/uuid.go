// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides the identifiers used across the service.

  - [New] returns a time-ordered UUIDv7, used for primary keys so that inserts
    stay append-friendly in PostgreSQL B-tree indexes.
  - [NewRandom] returns a UUIDv4, used where the value must not reveal when it
    was created (token identifiers).
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		// entropy failure is an unrecoverable system-level error
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}
	return id.String()
}

// NewRandom generates a new random (version 4) UUID string.
func NewRandom() string {
	return uuid.NewString()
}

// Valid reports whether s parses as a UUID.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
