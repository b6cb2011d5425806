package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Thought is a user-authored text post, the primary content unit of the
// application. It is stored as a document in the "thoughts" collection with
// its reactions embedded; reactions never live in a collection of their own.
//
// The text of a thought is immutable after creation. The only mutation a
// thought document ever receives is an append to its Reactions array.
type Thought struct {
	// ID is the MongoDB document identifier of the thought.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// ThoughtText is the body of the post, 1 to 280 characters.
	ThoughtText string `bson:"thoughtText" json:"thought_text"`

	// Username is the handle of the owning user, denormalized at creation
	// time so thoughts can be listed without a join.
	Username string `bson:"username" json:"username"`

	// CreatedAt is the timestamp when the thought was posted.
	// Listings are ordered by this field, newest first.
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`

	// Reactions is the append-only, insertion-ordered sequence of replies
	// attached to this thought.
	Reactions []Reaction `bson:"reactions" json:"reactions"`
}

// Reaction is a short reply embedded in its parent thought.
// Reactions are never edited or removed once appended.
type Reaction struct {
	// ID is the identifier of the reaction inside its parent document.
	ID primitive.ObjectID `bson:"reactionId" json:"id"`

	// ReactionBody is the text of the reply, 1 to 280 characters.
	ReactionBody string `bson:"reactionBody" json:"reaction_body"`

	// Username is the handle of the reacting user.
	Username string `bson:"username" json:"username"`

	// CreatedAt is the timestamp when the reaction was appended.
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}

// ReactionCount returns the number of reactions attached to the thought.
func (t Thought) ReactionCount() int {
	return len(t.Reactions)
}

// CollectionName returns the name of the MongoDB collection
// associated with the Thought model.
func (t Thought) CollectionName() string {
	return "thoughts"
}

// ListThoughtsOptions configures a thoughts listing. The zero value lists
// every thought.
type ListThoughtsOptions struct {
	// Username, when non-nil, restricts the listing to thoughts owned by
	// the given username (exact match). When nil no owner filter is applied.
	Username *string
}
