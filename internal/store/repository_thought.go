package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-deep-thoughts/internal/logger"
	"github.com/MKhiriev/go-deep-thoughts/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// thoughtRepository is the MongoDB-backed implementation of
// [ThoughtRepository]. It manages the "thoughts" collection, including the
// reactions embedded in each thought document.
type thoughtRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewThoughtRepository constructs a [ThoughtRepository] backed by the
// provided database connection and logger.
func NewThoughtRepository(db *DB, logger *logger.Logger) ThoughtRepository {
	logger.Debug().Msg("creating thought repository")
	return &thoughtRepository{
		db:     db,
		logger: logger,
	}
}

// listFilter translates [models.ListThoughtsOptions] into a MongoDB filter
// document. The zero options value yields an empty filter (all thoughts);
// a username option yields an exact-match owner filter.
func listFilter(opts models.ListThoughtsOptions) bson.M {
	filter := bson.M{}
	if opts.Username != nil {
		filter["username"] = *opts.Username
	}

	return filter
}

// CreateThought persists a new thought document and returns it with
// server-assigned fields populated (ID, CreatedAt, empty reaction sequence).
func (r *thoughtRepository) CreateThought(ctx context.Context, thought models.Thought) (models.Thought, error) {
	log := logger.FromContext(ctx)

	thought.ID = primitive.NewObjectID()
	thought.CreatedAt = time.Now().UTC()
	if thought.Reactions == nil {
		thought.Reactions = []models.Reaction{}
	}

	if _, err := r.db.Thoughts().InsertOne(ctx, thought); err != nil {
		log.Err(err).Str("username", thought.Username).Msg("error inserting thought")
		return models.Thought{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return thought, nil
}

// FindThoughtByID retrieves a single thought document by its id.
//
// Error handling:
//   - No matching document → [ErrThoughtNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *thoughtRepository) FindThoughtByID(ctx context.Context, id primitive.ObjectID) (models.Thought, error) {
	log := logger.FromContext(ctx)

	var foundThought models.Thought
	err := r.db.Thoughts().FindOne(ctx, bson.M{"_id": id}).Decode(&foundThought)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Thought{}, ErrThoughtNotFound
		}

		log.Err(err).Str("thoughtID", id.Hex()).Msg("error finding thought")
		return models.Thought{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundThought, nil
}

// ListThoughts returns thought documents matching the given options, ordered
// by creation time descending (newest first).
func (r *thoughtRepository) ListThoughts(ctx context.Context, opts models.ListThoughtsOptions) ([]models.Thought, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.db.Thoughts().Find(ctx, listFilter(opts),
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		log.Err(err).Msg("error listing thoughts")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	thoughts := make([]models.Thought, 0)
	if err := cursor.All(ctx, &thoughts); err != nil {
		log.Err(err).Msg("error decoding thought documents")
		return nil, fmt.Errorf("error decoding thought documents: %w", err)
	}

	return thoughts, nil
}

// AppendReaction appends the given reaction to the thought's embedded
// reaction sequence with an atomic single-document $push, preserving the
// insertion order of prior entries, and returns the updated thought.
//
// Server-assigned reaction fields (ID, CreatedAt) are populated here.
func (r *thoughtRepository) AppendReaction(ctx context.Context, thoughtID primitive.ObjectID, reaction models.Reaction) (models.Thought, error) {
	log := logger.FromContext(ctx)

	reaction.ID = primitive.NewObjectID()
	reaction.CreatedAt = time.Now().UTC()

	var updatedThought models.Thought
	err := r.db.Thoughts().
		FindOneAndUpdate(ctx,
			bson.M{"_id": thoughtID},
			bson.M{"$push": bson.M{"reactions": reaction}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).
		Decode(&updatedThought)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Thought{}, ErrThoughtNotFound
		}

		log.Err(err).Str("thoughtID", thoughtID.Hex()).Msg("error appending reaction")
		return models.Thought{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updatedThought, nil
}
