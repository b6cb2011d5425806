package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account and the primary identity entity of the
// application. It is stored as a document in the "users" collection.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the MongoDB document identifier of the user.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Username is the unique public handle of the user. Shown next to every
	// thought and reaction the user authors.
	Username string `bson:"username" json:"username"`

	// Email is the unique address used for login.
	Email string `bson:"email" json:"email"`

	// Password holds the bcrypt hash of the user's password.
	// It is populated only on the login read path and is never serialized
	// to JSON or returned by any public query.
	Password string `bson:"password,omitempty" json:"-"`

	// ThoughtIDs is the ordered list of thoughts owned by the user,
	// appended to every time the user posts.
	ThoughtIDs []primitive.ObjectID `bson:"thoughts" json:"thoughts"`

	// FriendIDs is the set of users this user has befriended.
	// Duplicate-free: additions use MongoDB's $addToSet operator.
	FriendIDs []primitive.ObjectID `bson:"friends" json:"friends"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}

// FriendCount returns the number of friends the user has.
func (u User) FriendCount() int {
	return len(u.FriendIDs)
}

// CollectionName returns the name of the MongoDB collection
// associated with the User model.
func (u User) CollectionName() string {
	return "users"
}

// Identity returns the authentication identity derived from the user record.
// It carries only the fields embedded into issued tokens.
func (u User) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
