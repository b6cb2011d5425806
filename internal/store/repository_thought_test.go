package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/MKhiriev/go-deep-thoughts/internal/logger"
	"github.com/MKhiriev/go-deep-thoughts/models"
)

func TestListFilter_NoOptions(t *testing.T) {
	filter := listFilter(models.ListThoughtsOptions{})
	assert.Equal(t, bson.M{}, filter, "zero options must produce an unrestricted filter")
}

func TestListFilter_UsernameOption(t *testing.T) {
	username := "alice"
	filter := listFilter(models.ListThoughtsOptions{Username: &username})
	assert.Equal(t, bson.M{"username": "alice"}, filter)
}

func TestListFilter_EmptyUsernameIsStillAFilter(t *testing.T) {
	// An explicitly supplied empty username filters for the empty string;
	// only a nil option means "no filter".
	username := ""
	filter := listFilter(models.ListThoughtsOptions{Username: &username})
	assert.Equal(t, bson.M{"username": ""}, filter)
}

func TestUserReadProjection_ExcludesPassword(t *testing.T) {
	excluded, ok := userReadProjection["password"]
	assert.True(t, ok, "projection must mention the password field")
	assert.Equal(t, 0, excluded, "password must be excluded, not included")
}

func TestListThoughts_SortsNewestFirst(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find carries the descending sort", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "deep-thoughts.thoughts", mtest.FirstBatch))
		repo := NewThoughtRepository(newMockDB(mt), logger.Nop())

		thoughts, err := repo.ListThoughts(context.Background(), models.ListThoughtsOptions{})

		require.NoError(mt, err)
		assert.Empty(mt, thoughts)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)

		order, ok := evt.Command.Lookup("sort", "createdAt").Int32OK()
		require.True(mt, ok, "every listing must be ordered by creation time")
		assert.Equal(mt, int32(-1), order, "newest first")
	})
}

func TestListThoughts_OwnerFilterReachesTheFind(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("username option becomes an exact-match filter", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "deep-thoughts.thoughts", mtest.FirstBatch))
		repo := NewThoughtRepository(newMockDB(mt), logger.Nop())

		username := "alice"
		_, err := repo.ListThoughts(context.Background(), models.ListThoughtsOptions{Username: &username})
		require.NoError(mt, err)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "alice", evt.Command.Lookup("filter", "username").StringValue())
	})
}

func TestAppendReaction_UsesPush(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reaction is appended, prior entries untouched", func(mt *mtest.T) {
		thoughtID := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: thoughtID},
			{Key: "thoughtText", Value: "hello"},
			{Key: "username", Value: "alice"},
			{Key: "reactions", Value: bson.A{
				bson.D{
					{Key: "reactionId", Value: primitive.NewObjectID()},
					{Key: "reactionBody", Value: "nice"},
					{Key: "username", Value: "bob"},
				},
			}},
		}}))
		repo := NewThoughtRepository(newMockDB(mt), logger.Nop())

		updated, err := repo.AppendReaction(context.Background(), thoughtID, models.Reaction{
			ReactionBody: "nice",
			Username:     "bob",
		})

		require.NoError(mt, err)
		assert.Equal(mt, 1, updated.ReactionCount())

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "findAndModify", evt.CommandName)

		pushed, ok := evt.Command.Lookup("update", "$push", "reactions").DocumentOK()
		require.True(mt, ok, "reaction writes must append with $push")
		assert.Equal(mt, "nice", pushed.Lookup("reactionBody").StringValue())
		assert.Equal(mt, "bob", pushed.Lookup("username").StringValue())

		_, hasID := pushed.Lookup("reactionId").ObjectIDOK()
		assert.True(mt, hasID, "the reaction id is assigned server-side")
	})
}

func TestAppendReaction_UnknownThought(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no matching document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))
		repo := NewThoughtRepository(newMockDB(mt), logger.Nop())

		_, err := repo.AppendReaction(context.Background(), primitive.NewObjectID(), models.Reaction{
			ReactionBody: "nice",
			Username:     "bob",
		})

		assert.ErrorIs(mt, err, ErrThoughtNotFound)
	})
}
