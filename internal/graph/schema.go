package graph

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/MKhiriev/go-deep-thoughts/internal/logger"
	"github.com/MKhiriev/go-deep-thoughts/internal/service"
)

// Schema is the GraphQL schema definition served by the API. It is the single
// external surface of the application: four public queries, one
// authenticated query, and five mutations.
const Schema = `
	scalar Time

	type User {
		id: ID!
		username: String!
		email: String!
		friendCount: Int!
		thoughts: [Thought!]!
		friends: [User!]!
	}

	type Thought {
		id: ID!
		thoughtText: String!
		createdAt: Time!
		username: String!
		reactionCount: Int!
		reactions: [Reaction!]!
	}

	type Reaction {
		id: ID!
		reactionBody: String!
		createdAt: Time!
		username: String!
	}

	type Auth {
		token: String!
		user: User!
	}

	type Query {
		thoughts(username: String): [Thought!]!
		thought(thoughtId: ID!): Thought
		users: [User!]!
		user(username: String!): User
		me: User!
	}

	type Mutation {
		addUser(username: String!, email: String!, password: String!): Auth!
		login(email: String!, password: String!): Auth!
		addThought(thoughtText: String!): Thought!
		addReaction(thoughtId: ID!, reactionBody: String!): Thought!
		addFriend(friendId: ID!): User!
	}

	schema {
		query: Query
		mutation: Mutation
	}
`

// NewSchema parses the schema definition and binds it to a fresh resolver
// wired to the given services.
func NewSchema(services *service.Services, logger *logger.Logger) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, NewResolver(services, logger))
}
