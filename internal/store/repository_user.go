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
	"golang.org/x/crypto/bcrypt"
)

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// userReadProjection excludes the password hash from a user read.
// Applied to every lookup except the login-path read by email.
var userReadProjection = bson.M{"password": 0}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user document and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The plaintext password carried by the input is replaced with its bcrypt
// hash before the document is written; the hash is stripped from the
// returned record so it never travels back up the call stack.
//
// Error handling:
//   - Unique-index violation on username or email → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user.ID = primitive.NewObjectID()
	user.Password = string(hash)
	user.CreatedAt = time.Now().UTC()
	if user.ThoughtIDs == nil {
		user.ThoughtIDs = []primitive.ObjectID{}
	}
	if user.FriendIDs == nil {
		user.FriendIDs = []primitive.ObjectID{}
	}

	if _, err := r.db.Users().InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Err(err).Str("username", user.Username).Msg("duplicate username or email")
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).Str("username", user.Username).Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user.Password = ""
	return user, nil
}

// FindUserByEmail retrieves a user document by email, including the password
// hash. This is the login-path read; every other lookup excludes credentials.
//
// Error handling:
//   - No matching document → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	err := r.db.Users().FindOne(ctx, bson.M{"email": email}).Decode(&foundUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("email", email).Msg("error finding user by email")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// FindUserByUsername retrieves a user document by username with the password
// hash excluded from the projection.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// FindUserByID retrieves a user document by its id with the password hash
// excluded from the projection.
func (r *userRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// findOne runs a single-document lookup with the credential-free projection.
func (r *userRepository) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	err := r.db.Users().
		FindOne(ctx, filter, options.FindOne().SetProjection(userReadProjection)).
		Decode(&foundUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Any("filter", filter).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// ListUsers returns every user document with the password hash excluded.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return r.findAll(ctx, bson.M{})
}

// ListUsersByIDs returns the user documents whose ids are in the given set,
// password hash excluded. Unknown ids produce no error; they are skipped.
func (r *userRepository) ListUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	return r.findAll(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// findAll runs a multi-document lookup with the credential-free projection.
func (r *userRepository) findAll(ctx context.Context, filter bson.M) ([]models.User, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.db.Users().Find(ctx, filter, options.Find().SetProjection(userReadProjection))
	if err != nil {
		log.Err(err).Any("filter", filter).Msg("error listing users")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		log.Err(err).Msg("error decoding user documents")
		return nil, fmt.Errorf("error decoding user documents: %w", err)
	}

	return users, nil
}

// AppendThought appends thoughtID to the user's owned-thought list with an
// atomic single-document $push.
func (r *userRepository) AppendThought(ctx context.Context, userID, thoughtID primitive.ObjectID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.Users().UpdateByID(ctx, userID, bson.M{
		"$push": bson.M{"thoughts": thoughtID},
	})
	if err != nil {
		log.Err(err).Str("userID", userID.Hex()).Msg("error appending thought to user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// AddFriend adds friendID to the user's friend set with an atomic
// single-document $addToSet, so repeated calls leave exactly one entry.
// Returns the updated user with the password hash excluded.
func (r *userRepository) AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) (models.User, error) {
	log := logger.FromContext(ctx)

	var updatedUser models.User
	err := r.db.Users().
		FindOneAndUpdate(ctx,
			bson.M{"_id": userID},
			bson.M{"$addToSet": bson.M{"friends": friendID}},
			options.FindOneAndUpdate().
				SetReturnDocument(options.After).
				SetProjection(userReadProjection),
		).
		Decode(&updatedUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("userID", userID.Hex()).Str("friendID", friendID.Hex()).Msg("error adding friend")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updatedUser, nil
}
