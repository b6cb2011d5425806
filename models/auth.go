package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Identity is the authenticated identity attached to a request context after
// a token has been verified. It is an ephemeral, per-request value and is
// never persisted.
//
// A request without a valid credential simply has no Identity in its context;
// anonymous access is a valid state, not an error.
type Identity struct {
	// ID is the document identifier of the authenticated user.
	ID primitive.ObjectID

	// Username is the unique handle of the authenticated user.
	Username string

	// Email is the login address of the authenticated user.
	Email string
}

// Auth is the payload returned by the register and login mutations:
// a freshly issued signed token together with the account it asserts.
type Auth struct {
	// Token is the compact signed JWT string.
	Token string `json:"token"`

	// User is the account the token was issued for, with credential fields
	// stripped.
	User User `json:"user"`
}
