package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deep-thoughts/internal/config"
	"github.com/MKhiriev/go-deep-thoughts/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Names of the two top-level document collections. Reactions are embedded in
// thought documents and never get a collection of their own.
const (
	usersCollection    = "users"
	thoughtsCollection = "thoughts"
)

// DB wraps a MongoDB client and the application database handle.
// It is the single shared connection used by all repositories.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewDB connects to MongoDB using the given configuration and verifies the
// connection with a ping against the primary. The server must not start
// accepting requests until the store reports ready, so a failed ping is a
// startup error, not a deferred one.
func NewDB(ctx context.Context, cfg config.Mongo, logger *logger.Logger) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("error pinging mongodb: %w", err)
	}

	logger.Info().Str("database", cfg.Database).Msg("connected to mongodb")

	return &DB{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   logger,
	}, nil
}

// Users returns the handle of the users collection.
func (db *DB) Users() *mongo.Collection {
	return db.database.Collection(usersCollection)
}

// Thoughts returns the handle of the thoughts collection.
func (db *DB) Thoughts() *mongo.Collection {
	return db.database.Collection(thoughtsCollection)
}

// EnsureIndexes creates the unique indexes required by the data model:
// one per username and one per email on the users collection. Index creation
// is idempotent, so calling this on every startup is safe.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := db.Users().Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("error creating user indexes: %w", err)
	}

	return nil
}

// Close disconnects the underlying MongoDB client.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
