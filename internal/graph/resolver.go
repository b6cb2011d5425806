// Package graph implements the resolver layer of the GraphQL API.
//
// Each resolver method performs one logical operation against the services
// and either returns a result or fails with an operation-level error.
// Authorization is enforced here and nowhere else: transport middleware only
// attaches (or omits) the caller's identity, and every operation that
// requires one checks the request context itself.
package graph

import (
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/go-deep-thoughts/internal/logger"
	"github.com/MKhiriev/go-deep-thoughts/internal/service"
	"github.com/MKhiriev/go-deep-thoughts/internal/store"
	"github.com/MKhiriev/go-deep-thoughts/internal/utils"
	"github.com/MKhiriev/go-deep-thoughts/models"
)

// Resolver is the root resolver: every query and mutation of the schema is a
// method on it.
type Resolver struct {
	services *service.Services

	logger *logger.Logger
}

// NewResolver constructs the root resolver over the given services.
func NewResolver(services *service.Services, logger *logger.Logger) *Resolver {
	return &Resolver{
		services: services,
		logger:   logger,
	}
}

// parseID converts a GraphQL ID argument into an ObjectID.
func parseID(id graphql.ID) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return primitive.NilObjectID, errInvalidID
	}

	return objectID, nil
}

// ─────────────────────────────────────────────
// Query
// ─────────────────────────────────────────────

// Thoughts lists all thoughts newest first, optionally restricted to a
// single owner. Public: no identity required.
func (r *Resolver) Thoughts(ctx context.Context, args struct{ Username *string }) ([]*ThoughtResolver, error) {
	thoughts, err := r.services.ThoughtService.ListThoughts(ctx, models.ListThoughtsOptions{
		Username: args.Username,
	})
	if err != nil {
		return nil, err
	}

	return newThoughtResolvers(thoughts), nil
}

// Thought returns a single thought by id, or null when it does not exist.
// Public: no identity required.
func (r *Resolver) Thought(ctx context.Context, args struct{ ThoughtID graphql.ID }) (*ThoughtResolver, error) {
	id, err := parseID(args.ThoughtID)
	if err != nil {
		return nil, err
	}

	thought, err := r.services.ThoughtService.GetThought(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrThoughtNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &ThoughtResolver{thought: thought}, nil
}

// Users lists all users with their thoughts and friends expanded.
// Public: no identity required; no credential field ever reaches the result.
func (r *Resolver) Users(ctx context.Context) ([]*UserResolver, error) {
	users, err := r.services.UserService.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*UserResolver, 0, len(users))
	for _, user := range users {
		resolvers = append(resolvers, &UserResolver{user: user, root: r})
	}

	return resolvers, nil
}

// User returns a single user by username, or null when it does not exist.
// Public: no identity required.
func (r *Resolver) User(ctx context.Context, args struct{ Username string }) (*UserResolver, error) {
	user, err := r.services.UserService.GetUserByUsername(ctx, args.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return nil, nil
		}
		return nil, err
	}

	return &UserResolver{user: user, root: r}, nil
}

// Me returns the authenticated caller's own expanded record.
// Fails with an authentication error when the context carries no identity.
func (r *Resolver) Me(ctx context.Context) (*UserResolver, error) {
	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		r.logger.Debug().Str("operation", "me").Msg("rejecting anonymous caller")
		return nil, errNotLoggedIn
	}

	user, err := r.services.UserService.GetUserByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	return &UserResolver{user: user, root: r}, nil
}

// ─────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────

// AddUser registers a new account and returns the issued token together with
// the created user, symmetrically with Login.
func (r *Resolver) AddUser(ctx context.Context, args struct{ Username, Email, Password string }) (*AuthResolver, error) {
	user, err := r.services.AuthService.RegisterUser(ctx, models.User{
		Username: args.Username,
		Email:    args.Email,
		Password: args.Password,
	})
	if err != nil {
		return nil, err
	}

	token, err := r.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &AuthResolver{token: token.SignedString, user: user, root: r}, nil
}

// Login verifies an email/password pair and returns a fresh token together
// with the account. An unknown email and a wrong password fail with the
// identical "Incorrect credentials" message, so the caller cannot tell which
// check failed.
func (r *Resolver) Login(ctx context.Context, args struct{ Email, Password string }) (*AuthResolver, error) {
	user, err := r.services.AuthService.Login(ctx, args.Email, args.Password)
	if err != nil {
		if errors.Is(err, service.ErrIncorrectCredentials) {
			return nil, errIncorrectCredentials
		}
		return nil, err
	}

	token, err := r.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &AuthResolver{token: token.SignedString, user: user, root: r}, nil
}

// AddThought creates a thought owned by the authenticated caller.
// Fails with an authentication error when the context carries no identity;
// nothing is written in that case.
func (r *Resolver) AddThought(ctx context.Context, args struct{ ThoughtText string }) (*ThoughtResolver, error) {
	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		r.logger.Debug().Str("operation", "addThought").Msg("rejecting anonymous caller")
		return nil, errLoginRequired
	}

	thought, err := r.services.ThoughtService.AddThought(ctx, identity, args.ThoughtText)
	if err != nil {
		return nil, err
	}

	return &ThoughtResolver{thought: thought}, nil
}

// AddReaction appends a reaction authored by the authenticated caller to the
// given thought and returns the updated thought. Fails with an
// authentication error when the context carries no identity; the thought is
// left unmodified in that case.
func (r *Resolver) AddReaction(ctx context.Context, args struct {
	ThoughtID    graphql.ID
	ReactionBody string
}) (*ThoughtResolver, error) {
	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		r.logger.Debug().Str("operation", "addReaction").Msg("rejecting anonymous caller")
		return nil, errReactionNeedsLogin
	}

	thoughtID, err := parseID(args.ThoughtID)
	if err != nil {
		return nil, err
	}

	thought, err := r.services.ThoughtService.AddReaction(ctx, identity, thoughtID, args.ReactionBody)
	if err != nil {
		return nil, err
	}

	return &ThoughtResolver{thought: thought}, nil
}

// AddFriend adds the given user to the authenticated caller's friend set and
// returns the caller's updated record. The set-add is idempotent. Fails with
// an authentication error only when the context carries no identity.
func (r *Resolver) AddFriend(ctx context.Context, args struct{ FriendID graphql.ID }) (*UserResolver, error) {
	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		r.logger.Debug().Str("operation", "addFriend").Msg("rejecting anonymous caller")
		return nil, errLoginRequired
	}

	friendID, err := parseID(args.FriendID)
	if err != nil {
		return nil, err
	}

	user, err := r.services.UserService.AddFriend(ctx, identity, friendID)
	if err != nil {
		return nil, err
	}

	return &UserResolver{user: user, root: r}, nil
}
