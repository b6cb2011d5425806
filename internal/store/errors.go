// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// violates the unique index on username or email.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user document produces an empty result.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrThoughtNotFound is returned when a query or update targets a thought
	// document that does not exist.
	ErrThoughtNotFound = errors.New("thought was not found")
)
