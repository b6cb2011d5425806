package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-deep-thoughts/internal/logger"
	"github.com/MKhiriev/go-deep-thoughts/internal/store"
	"github.com/MKhiriev/go-deep-thoughts/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxTextLength caps thought and reaction bodies, in runes.
const maxTextLength = 280

// thoughtService is the concrete implementation of ThoughtService.
// Mutations receive the verified caller identity from the resolver layer;
// by the time a call reaches this service authorization has already happened.
type thoughtService struct {
	thoughtRepository store.ThoughtRepository
	userRepository    store.UserRepository

	logger *logger.Logger
}

// NewThoughtService constructs a ThoughtService wired to the given
// repositories.
func NewThoughtService(thoughtRepository store.ThoughtRepository, userRepository store.UserRepository, logger *logger.Logger) ThoughtService {
	return &thoughtService{
		thoughtRepository: thoughtRepository,
		userRepository:    userRepository,
		logger:            logger,
	}
}

// ListThoughts returns thoughts ordered newest first, optionally filtered by
// owner username via opts.
func (t *thoughtService) ListThoughts(ctx context.Context, opts models.ListThoughtsOptions) ([]models.Thought, error) {
	return t.thoughtRepository.ListThoughts(ctx, opts)
}

// GetThought returns a single thought by id.
func (t *thoughtService) GetThought(ctx context.Context, id primitive.ObjectID) (models.Thought, error) {
	return t.thoughtRepository.FindThoughtByID(ctx, id)
}

// AddThought creates a thought owned by the identity's username and appends
// the new thought's id to the owning user's thought list.
//
// The two writes are separate single-document operations; there is no
// cross-document transaction. A crash between them leaves a thought whose id
// is missing from the owner's list, which listings tolerate because they
// query the thoughts collection by username.
func (t *thoughtService) AddThought(ctx context.Context, identity models.Identity, thoughtText string) (models.Thought, error) {
	log := logger.FromContext(ctx)

	if err := validateText(thoughtText, ErrThoughtTextRequired, ErrThoughtTextTooLong); err != nil {
		return models.Thought{}, err
	}

	thought, err := t.thoughtRepository.CreateThought(ctx, models.Thought{
		ThoughtText: thoughtText,
		Username:    identity.Username,
	})
	if err != nil {
		log.Err(err).Str("username", identity.Username).Msg("thought creation ended with error")
		return models.Thought{}, fmt.Errorf("thought creation ended with error: %w", err)
	}

	if err := t.userRepository.AppendThought(ctx, identity.ID, thought.ID); err != nil {
		log.Err(err).Str("username", identity.Username).Str("thoughtID", thought.ID.Hex()).
			Msg("error appending thought to owner")
		return models.Thought{}, fmt.Errorf("error appending thought to owner: %w", err)
	}

	return thought, nil
}

// AddReaction appends a reaction authored by the identity's username to the
// given thought and returns the updated thought.
func (t *thoughtService) AddReaction(ctx context.Context, identity models.Identity, thoughtID primitive.ObjectID, reactionBody string) (models.Thought, error) {
	log := logger.FromContext(ctx)

	if err := validateText(reactionBody, ErrReactionBodyRequired, ErrReactionBodyTooLong); err != nil {
		return models.Thought{}, err
	}

	updatedThought, err := t.thoughtRepository.AppendReaction(ctx, thoughtID, models.Reaction{
		ReactionBody: reactionBody,
		Username:     identity.Username,
	})
	if err != nil {
		log.Err(err).Str("username", identity.Username).Str("thoughtID", thoughtID.Hex()).
			Msg("reaction append ended with error")
		return models.Thought{}, fmt.Errorf("reaction append ended with error: %w", err)
	}

	return updatedThought, nil
}

// validateText enforces the shared 1..280 rune bounds on post bodies.
func validateText(text string, emptyErr, tooLongErr error) error {
	if text == "" {
		return emptyErr
	}

	if utf8.RuneCountInString(text) > maxTextLength {
		return tooLongErr
	}

	return nil
}
