package service

import (
	"context"

	"github.com/MKhiriev/go-deep-thoughts/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ─────────────────────────────────────────────
// Mock repositories
// ─────────────────────────────────────────────

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn    func(ctx context.Context, email string) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, id primitive.ObjectID) (models.User, error)
	listUsersFn          func(ctx context.Context) ([]models.User, error)
	listUsersByIDsFn     func(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	appendThoughtFn      func(ctx context.Context, userID, thoughtID primitive.ObjectID) error
	addFriendFn          func(ctx context.Context, userID, friendID primitive.ObjectID) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFn(ctx, username)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return m.findUserByIDFn(ctx, id)
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserRepository) ListUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	return m.listUsersByIDsFn(ctx, ids)
}

func (m *mockUserRepository) AppendThought(ctx context.Context, userID, thoughtID primitive.ObjectID) error {
	return m.appendThoughtFn(ctx, userID, thoughtID)
}

func (m *mockUserRepository) AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) (models.User, error) {
	return m.addFriendFn(ctx, userID, friendID)
}

// mockThoughtRepository implements store.ThoughtRepository for unit tests.
type mockThoughtRepository struct {
	createThoughtFn   func(ctx context.Context, thought models.Thought) (models.Thought, error)
	findThoughtByIDFn func(ctx context.Context, id primitive.ObjectID) (models.Thought, error)
	listThoughtsFn    func(ctx context.Context, opts models.ListThoughtsOptions) ([]models.Thought, error)
	appendReactionFn  func(ctx context.Context, thoughtID primitive.ObjectID, reaction models.Reaction) (models.Thought, error)
}

func (m *mockThoughtRepository) CreateThought(ctx context.Context, thought models.Thought) (models.Thought, error) {
	return m.createThoughtFn(ctx, thought)
}

func (m *mockThoughtRepository) FindThoughtByID(ctx context.Context, id primitive.ObjectID) (models.Thought, error) {
	return m.findThoughtByIDFn(ctx, id)
}

func (m *mockThoughtRepository) ListThoughts(ctx context.Context, opts models.ListThoughtsOptions) ([]models.Thought, error) {
	return m.listThoughtsFn(ctx, opts)
}

func (m *mockThoughtRepository) AppendReaction(ctx context.Context, thoughtID primitive.ObjectID, reaction models.Reaction) (models.Thought, error) {
	return m.appendReactionFn(ctx, thoughtID, reaction)
}
