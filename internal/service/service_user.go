package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deep-thoughts/internal/logger"
	"github.com/MKhiriev/go-deep-thoughts/internal/store"
	"github.com/MKhiriev/go-deep-thoughts/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userService is the concrete implementation of UserService. All reads go
// through credential-free repository projections, so no method of this
// service can ever observe a password hash.
type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns all users.
func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return u.userRepository.ListUsers(ctx)
}

// GetUserByUsername returns a single user by username.
func (u *userService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return u.userRepository.FindUserByUsername(ctx, username)
}

// GetUserByID returns a single user by document id.
func (u *userService) GetUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return u.userRepository.FindUserByID(ctx, id)
}

// GetUsersByIDs returns the users whose ids are in the given set.
func (u *userService) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	return u.userRepository.ListUsersByIDs(ctx, ids)
}

// AddFriend adds friendID to the identity's friend set and returns the
// updated user. The underlying set-add is idempotent: adding the same friend
// twice leaves exactly one entry.
func (u *userService) AddFriend(ctx context.Context, identity models.Identity, friendID primitive.ObjectID) (models.User, error) {
	log := logger.FromContext(ctx)

	updatedUser, err := u.userRepository.AddFriend(ctx, identity.ID, friendID)
	if err != nil {
		log.Err(err).Str("userID", identity.ID.Hex()).Str("friendID", friendID.Hex()).
			Msg("friend addition ended with error")
		return models.User{}, fmt.Errorf("friend addition ended with error: %w", err)
	}

	return updatedUser, nil
}
