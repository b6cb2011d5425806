// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graph

import "errors"

// AuthenticationError signals that the caller either lacks a required
// identity or presented credentials that did not match. It is an
// operation-level failure surfaced to the GraphQL client with the
// UNAUTHENTICATED extension code; it is never retried and never logged as a
// server fault.
type AuthenticationError struct {
	Message string
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return e.Message
}

// Extensions marks the error with the conventional UNAUTHENTICATED code in
// the GraphQL error extensions, so clients can distinguish authorization
// failures from other errors without parsing messages.
func (e *AuthenticationError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "UNAUTHENTICATED"}
}

// The authentication failures surfaced by the resolver layer. Message texts
// are part of the client contract: login failures are deliberately
// indistinguishable, and the logged-in prompts match what clients display.
var (
	errNotLoggedIn          = &AuthenticationError{Message: "Not logged in"}
	errLoginRequired        = &AuthenticationError{Message: "You need to be logged in!"}
	errReactionNeedsLogin   = &AuthenticationError{Message: "You need to be logged in"}
	errIncorrectCredentials = &AuthenticationError{Message: "Incorrect credentials"}
)

// errInvalidID is returned when an ID argument is not a valid hex ObjectID.
var errInvalidID = errors.New("invalid id")
