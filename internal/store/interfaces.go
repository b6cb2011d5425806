package store

import (
	"context"

	"github.com/MKhiriev/go-deep-thoughts/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository is the data-access contract for user documents.
//
// Every read except [UserRepository.FindUserByEmail] excludes the password
// hash from its projection; FindUserByEmail is the single login-path read and
// the only place a credential ever leaves the store.
type UserRepository interface {
	// CreateUser persists a new user. The plaintext password in the input is
	// hashed at persistence time; callers never handle the hash.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by email for credential verification.
	// The returned record includes the password hash.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByUsername looks up a user by username, password excluded.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID looks up a user by document id, password excluded.
	FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error)

	// ListUsers returns all users, password excluded.
	ListUsers(ctx context.Context) ([]models.User, error)

	// ListUsersByIDs returns the users whose ids are in the given set,
	// password excluded. Missing ids are silently skipped.
	ListUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)

	// AppendThought appends a thought id to the user's owned-thought list.
	AppendThought(ctx context.Context, userID, thoughtID primitive.ObjectID) error

	// AddFriend adds friendID to the user's friend set using an atomic
	// set-add, so repeating the call is idempotent. Returns the updated user,
	// password excluded.
	AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) (models.User, error)
}

// ThoughtRepository is the data-access contract for thought documents and
// their embedded reactions.
type ThoughtRepository interface {
	// CreateThought persists a new thought and returns it with
	// server-assigned fields populated (ID, CreatedAt).
	CreateThought(ctx context.Context, thought models.Thought) (models.Thought, error)

	// FindThoughtByID returns a single thought by document id.
	FindThoughtByID(ctx context.Context, id primitive.ObjectID) (models.Thought, error)

	// ListThoughts returns thoughts ordered by creation time descending,
	// optionally restricted by the options' username filter.
	ListThoughts(ctx context.Context, opts models.ListThoughtsOptions) ([]models.Thought, error)

	// AppendReaction atomically appends a reaction to the thought's embedded
	// reaction sequence and returns the updated thought. Prior reactions are
	// never reordered or removed.
	AppendReaction(ctx context.Context, thoughtID primitive.ObjectID, reaction models.Reaction) (models.Thought, error)
}
