package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/MKhiriev/go-deep-thoughts/models"
)

// UserResolver resolves the fields of the User type.
//
// The thoughts and friends fields expand document references into full
// records lazily, when the query actually selects them. The user value held
// here always comes from a credential-free projection, so a password hash
// can never appear in a result.
type UserResolver struct {
	user models.User
	root *Resolver
}

func (u *UserResolver) ID() graphql.ID {
	return graphql.ID(u.user.ID.Hex())
}

func (u *UserResolver) Username() string {
	return u.user.Username
}

func (u *UserResolver) Email() string {
	return u.user.Email
}

func (u *UserResolver) FriendCount() int32 {
	return int32(u.user.FriendCount())
}

// Thoughts expands the user's thoughts to full records, newest first.
// Thoughts are denormalized by owner username, so this is a listing with an
// owner filter rather than an id-set lookup.
func (u *UserResolver) Thoughts(ctx context.Context) ([]*ThoughtResolver, error) {
	username := u.user.Username
	thoughts, err := u.root.services.ThoughtService.ListThoughts(ctx, models.ListThoughtsOptions{
		Username: &username,
	})
	if err != nil {
		return nil, err
	}

	return newThoughtResolvers(thoughts), nil
}

// Friends expands the user's friend id set to full user records.
func (u *UserResolver) Friends(ctx context.Context) ([]*UserResolver, error) {
	friends, err := u.root.services.UserService.GetUsersByIDs(ctx, u.user.FriendIDs)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*UserResolver, 0, len(friends))
	for _, friend := range friends {
		resolvers = append(resolvers, &UserResolver{user: friend, root: u.root})
	}

	return resolvers, nil
}

// AuthResolver resolves the Auth payload returned by the addUser and login
// mutations: a signed token plus the account it asserts.
type AuthResolver struct {
	token string
	user  models.User
	root  *Resolver
}

func (a *AuthResolver) Token() string {
	return a.token
}

func (a *AuthResolver) User() *UserResolver {
	return &UserResolver{user: a.user, root: a.root}
}
