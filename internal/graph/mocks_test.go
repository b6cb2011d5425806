package graph

import (
	"context"

	"github.com/MKhiriev/go-deep-thoughts/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for resolver tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Identity, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Identity, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockThoughtService implements service.ThoughtService for resolver tests.
type mockThoughtService struct {
	listThoughtsFn func(ctx context.Context, opts models.ListThoughtsOptions) ([]models.Thought, error)
	getThoughtFn   func(ctx context.Context, id primitive.ObjectID) (models.Thought, error)
	addThoughtFn   func(ctx context.Context, identity models.Identity, thoughtText string) (models.Thought, error)
	addReactionFn  func(ctx context.Context, identity models.Identity, thoughtID primitive.ObjectID, reactionBody string) (models.Thought, error)
}

func (m *mockThoughtService) ListThoughts(ctx context.Context, opts models.ListThoughtsOptions) ([]models.Thought, error) {
	return m.listThoughtsFn(ctx, opts)
}

func (m *mockThoughtService) GetThought(ctx context.Context, id primitive.ObjectID) (models.Thought, error) {
	return m.getThoughtFn(ctx, id)
}

func (m *mockThoughtService) AddThought(ctx context.Context, identity models.Identity, thoughtText string) (models.Thought, error) {
	return m.addThoughtFn(ctx, identity, thoughtText)
}

func (m *mockThoughtService) AddReaction(ctx context.Context, identity models.Identity, thoughtID primitive.ObjectID, reactionBody string) (models.Thought, error) {
	return m.addReactionFn(ctx, identity, thoughtID, reactionBody)
}

// mockUserService implements service.UserService for resolver tests.
type mockUserService struct {
	listUsersFn         func(ctx context.Context) ([]models.User, error)
	getUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	getUserByIDFn       func(ctx context.Context, id primitive.ObjectID) (models.User, error)
	getUsersByIDsFn     func(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	addFriendFn         func(ctx context.Context, identity models.Identity, friendID primitive.ObjectID) (models.User, error)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.getUserByUsernameFn(ctx, username)
}

func (m *mockUserService) GetUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return m.getUserByIDFn(ctx, id)
}

func (m *mockUserService) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	return m.getUsersByIDsFn(ctx, ids)
}

func (m *mockUserService) AddFriend(ctx context.Context, identity models.Identity, friendID primitive.ObjectID) (models.User, error) {
	return m.addFriendFn(ctx, identity, friendID)
}
