package service

import (
	"context"

	"github.com/MKhiriev/go-deep-thoughts/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService owns registration, credential verification, and the full token
// lifecycle (issuance and verification).
type AuthService interface {
	// RegisterUser validates and creates a new account. The password arrives
	// in plaintext and is hashed by the persistence layer.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the email/password pair. Both an unknown email and a
	// wrong password fail with [ErrIncorrectCredentials].
	Login(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed token asserting the given user's identity.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw token string and returns the identity it
	// asserts. Any failure is normalised to [ErrTokenIsExpiredOrInvalid].
	ParseToken(ctx context.Context, tokenString string) (models.Identity, error)
}

// ThoughtService owns the reading and writing of thoughts and their embedded
// reactions. Mutations take the verified caller identity explicitly; the
// service never consults ambient state for authorization.
type ThoughtService interface {
	ListThoughts(ctx context.Context, opts models.ListThoughtsOptions) ([]models.Thought, error)
	GetThought(ctx context.Context, id primitive.ObjectID) (models.Thought, error)

	// AddThought creates a thought owned by the identity's username and
	// appends its id to the owning user's thought list.
	AddThought(ctx context.Context, identity models.Identity, thoughtText string) (models.Thought, error)

	// AddReaction appends a reaction authored by the identity's username to
	// the given thought and returns the updated thought.
	AddReaction(ctx context.Context, identity models.Identity, thoughtID primitive.ObjectID, reactionBody string) (models.Thought, error)
}

// UserService owns credential-free user reads and the friend relation.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)

	// AddFriend adds friendID to the identity's friend set (idempotent) and
	// returns the updated user.
	AddFriend(ctx context.Context, identity models.Identity, friendID primitive.ObjectID) (models.User, error)
}
