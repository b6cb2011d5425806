package graph

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/MKhiriev/go-deep-thoughts/models"
)

// ThoughtResolver resolves the fields of the Thought type. A thought carries
// its reactions embedded, so no field on it goes back to the store.
type ThoughtResolver struct {
	thought models.Thought
}

func newThoughtResolvers(thoughts []models.Thought) []*ThoughtResolver {
	resolvers := make([]*ThoughtResolver, 0, len(thoughts))
	for _, thought := range thoughts {
		resolvers = append(resolvers, &ThoughtResolver{thought: thought})
	}

	return resolvers
}

func (t *ThoughtResolver) ID() graphql.ID {
	return graphql.ID(t.thought.ID.Hex())
}

func (t *ThoughtResolver) ThoughtText() string {
	return t.thought.ThoughtText
}

func (t *ThoughtResolver) Username() string {
	return t.thought.Username
}

func (t *ThoughtResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: t.thought.CreatedAt}
}

func (t *ThoughtResolver) ReactionCount() int32 {
	return int32(t.thought.ReactionCount())
}

func (t *ThoughtResolver) Reactions() []*ReactionResolver {
	resolvers := make([]*ReactionResolver, 0, len(t.thought.Reactions))
	for _, reaction := range t.thought.Reactions {
		resolvers = append(resolvers, &ReactionResolver{reaction: reaction})
	}

	return resolvers
}

// ReactionResolver resolves the fields of the Reaction type.
type ReactionResolver struct {
	reaction models.Reaction
}

func (r *ReactionResolver) ID() graphql.ID {
	return graphql.ID(r.reaction.ID.Hex())
}

func (r *ReactionResolver) ReactionBody() string {
	return r.reaction.ReactionBody
}

func (r *ReactionResolver) Username() string {
	return r.reaction.Username
}

func (r *ReactionResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.reaction.CreatedAt}
}
