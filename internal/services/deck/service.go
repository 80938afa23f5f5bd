package deck

//go:generate mockgen -destination=mock/mock_service.go -package=mockdeck -source=service.go

import (
	"context"
	"strings"

	"github.com/NolanKnievel/party-app/internal/domain/game"
	apperrors "github.com/NolanKnievel/party-app/internal/errors"
	"github.com/NolanKnievel/party-app/internal/repositories/decks"
	"github.com/NolanKnievel/party-app/internal/uuid"
)

// Repository is an alias for the deck repository interface
type Repository = decks.Repository

// Service defines the deck service interface
type Service interface {
	// CreateDeck validates and stores a new user deck
	CreateDeck(ctx context.Context, input *CreateDeckInput) (*game.QuestionDeck, error)

	// GetDeck retrieves a deck by ID
	GetDeck(ctx context.Context, deckID string) (*game.QuestionDeck, error)

	// UpdateDeckInfo updates a deck's name, description, or visibility
	UpdateDeckInfo(ctx context.Context, deckID string, input *UpdateDeckInput) (*game.QuestionDeck, error)

	// DeleteDeck removes a deck
	DeleteDeck(ctx context.Context, deckID string) error

	// AddQuestion appends a new question to a deck
	AddQuestion(ctx context.Context, deckID string, input *QuestionInput) (*game.QuestionDeck, error)

	// RemoveQuestion deletes a question from a deck
	RemoveQuestion(ctx context.Context, deckID, questionID string) (*game.QuestionDeck, error)

	// UpdateQuestion replaces a question in a deck
	UpdateQuestion(ctx context.Context, deckID string, question game.Question) (*game.QuestionDeck, error)

	// ListDecks retrieves all decks
	ListDecks(ctx context.Context) ([]*game.QuestionDeck, error)

	// ListDecksByCategory retrieves decks with at least one question in the category
	ListDecksByCategory(ctx context.Context, category game.Category) ([]*game.QuestionDeck, error)

	// ListDefaultDecks retrieves the system-provided decks
	ListDefaultDecks(ctx context.Context) ([]*game.QuestionDeck, error)

	// ListPublicDecks retrieves the shareable decks
	ListPublicDecks(ctx context.Context) ([]*game.QuestionDeck, error)

	// RecordDownload bumps a deck's download counter
	RecordDownload(ctx context.Context, deckID string) (*game.QuestionDeck, error)

	// RateDeck sets a deck's rating, which must land in [0, 5]
	RateDeck(ctx context.Context, deckID string, rating float64) (*game.QuestionDeck, error)
}

// CreateDeckInput contains data for creating a deck
type CreateDeckInput struct {
	Name        string
	Description string
	CreatorName string
	IsPublic    bool
	Questions   []QuestionInput
}

// QuestionInput contains data for creating a question
type QuestionInput struct {
	Text       string
	Category   game.Category
	Difficulty game.Difficulty
}

// UpdateDeckInput contains the deck fields that can be updated
type UpdateDeckInput struct {
	Name        *string
	Description *string
	IsPublic    *bool
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository     // Required
	UUIDGenerator uuid.Generator // Optional, defaults to Google UUIDs
	Denylist      []string       // Disallowed content terms, may be empty
}

// service implements the Service interface
type service struct {
	repository    Repository
	uuidGenerator uuid.Generator
	denylist      []string
}

// NewService creates a new deck service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		denylist:   cfg.Denylist,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// CreateDeck validates and stores a new user deck
func (s *service) CreateDeck(ctx context.Context, input *CreateDeckInput) (*game.QuestionDeck, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.InvalidArgument("deck name is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, apperrors.InvalidArgument("deck description is required")
	}
	if len(input.Questions) == 0 {
		return nil, apperrors.InvalidArgument("a deck needs at least one question")
	}

	questions := make([]game.Question, 0, len(input.Questions))
	for _, qi := range input.Questions {
		q, err := s.buildQuestion(&qi)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	deck := game.NewDeck(s.uuidGenerator.New(), input.Name, input.Description, questions)
	deck.CreatorName = input.CreatorName
	deck.IsPublic = input.IsPublic

	if !deck.IsValid() {
		return nil, apperrors.Validation("deck is not valid")
	}
	if !deck.IsAppropriate(s.denylist) {
		return nil, apperrors.Validation("deck contains disallowed content").
			WithMeta("deck_name", deck.SanitizedName())
	}

	if err := s.repository.Create(ctx, &deck); err != nil {
		return nil, apperrors.Wrap(err, "failed to store deck")
	}

	return &deck, nil
}

// GetDeck retrieves a deck by ID
func (s *service) GetDeck(ctx context.Context, deckID string) (*game.QuestionDeck, error) {
	if deckID == "" {
		return nil, apperrors.InvalidArgument("deck ID is required")
	}
	return s.repository.Get(ctx, deckID)
}

// UpdateDeckInfo updates a deck's name, description, or visibility
func (s *service) UpdateDeckInfo(ctx context.Context, deckID string, input *UpdateDeckInput) (*game.QuestionDeck, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}

	deck, err := s.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if deck.IsDefault {
		return nil, apperrors.InvalidArgument("default decks cannot be edited")
	}

	updated := *deck
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperrors.InvalidArgument("deck name cannot be empty")
		}
		updated.Name = *input.Name
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, apperrors.InvalidArgument("deck description cannot be empty")
		}
		updated.Description = *input.Description
	}
	if input.IsPublic != nil {
		updated.IsPublic = *input.IsPublic
	}

	if !updated.IsAppropriate(s.denylist) {
		return nil, apperrors.Validation("deck contains disallowed content")
	}

	return s.store(ctx, &updated)
}

// DeleteDeck removes a deck
func (s *service) DeleteDeck(ctx context.Context, deckID string) error {
	if deckID == "" {
		return apperrors.InvalidArgument("deck ID is required")
	}

	deck, err := s.repository.Get(ctx, deckID)
	if err != nil {
		return err
	}
	if deck.IsDefault {
		return apperrors.InvalidArgument("default decks cannot be deleted")
	}

	return s.repository.Delete(ctx, deckID)
}

// AddQuestion appends a new question to a deck
func (s *service) AddQuestion(ctx context.Context, deckID string, input *QuestionInput) (*game.QuestionDeck, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}

	deck, err := s.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	q, err := s.buildQuestion(input)
	if err != nil {
		return nil, err
	}

	updated := deck.WithQuestionAdded(q)
	return s.store(ctx, &updated)
}

// RemoveQuestion deletes a question from a deck. Decks keep at least one
// question; removing the last one is rejected.
func (s *service) RemoveQuestion(ctx context.Context, deckID, questionID string) (*game.QuestionDeck, error) {
	deck, err := s.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	if !deck.ContainsQuestion(questionID) {
		return nil, apperrors.NotFoundf("question not found: %s", questionID)
	}
	if deck.QuestionCount() == 1 {
		return nil, apperrors.Validation("cannot remove the last question from a deck")
	}

	updated := deck.WithQuestionRemoved(questionID)
	return s.store(ctx, &updated)
}

// UpdateQuestion replaces a question in a deck
func (s *service) UpdateQuestion(ctx context.Context, deckID string, question game.Question) (*game.QuestionDeck, error) {
	deck, err := s.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	if !deck.ContainsQuestion(question.ID) {
		return nil, apperrors.NotFoundf("question not found: %s", question.ID)
	}
	if !question.IsValid() {
		return nil, apperrors.Validation("question is not valid")
	}
	if !question.IsAppropriate(s.denylist) {
		return nil, apperrors.Validation("question contains disallowed content")
	}

	updated := deck.WithQuestionUpdated(question)
	return s.store(ctx, &updated)
}

// ListDecks retrieves all decks
func (s *service) ListDecks(ctx context.Context) ([]*game.QuestionDeck, error) {
	return s.repository.List(ctx)
}

// ListDecksByCategory retrieves decks with at least one question in the category
func (s *service) ListDecksByCategory(ctx context.Context, category game.Category) ([]*game.QuestionDeck, error) {
	if !category.IsKnown() {
		return nil, apperrors.InvalidArgumentf("unknown category: %s", category)
	}
	return s.repository.ListByCategory(ctx, category)
}

// ListDefaultDecks retrieves the system-provided decks
func (s *service) ListDefaultDecks(ctx context.Context) ([]*game.QuestionDeck, error) {
	return s.repository.ListDefault(ctx)
}

// ListPublicDecks retrieves the shareable decks
func (s *service) ListPublicDecks(ctx context.Context) ([]*game.QuestionDeck, error) {
	return s.repository.ListPublic(ctx)
}

// RecordDownload bumps a deck's download counter
func (s *service) RecordDownload(ctx context.Context, deckID string) (*game.QuestionDeck, error) {
	deck, err := s.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	updated := *deck
	updated.DownloadCount++
	return s.store(ctx, &updated)
}

// RateDeck sets a deck's rating
func (s *service) RateDeck(ctx context.Context, deckID string, rating float64) (*game.QuestionDeck, error) {
	if rating < 0 || rating > 5 {
		return nil, apperrors.InvalidArgumentf("rating %.1f is outside [0, 5]", rating)
	}

	deck, err := s.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	updated := *deck
	updated.Rating = rating
	return s.store(ctx, &updated)
}

func (s *service) buildQuestion(input *QuestionInput) (game.Question, error) {
	if strings.TrimSpace(input.Text) == "" {
		return game.Question{}, apperrors.InvalidArgument("question text is required")
	}
	if !input.Category.IsKnown() {
		return game.Question{}, apperrors.InvalidArgumentf("unknown category: %s", input.Category)
	}

	q := game.NewQuestion(s.uuidGenerator.New(), input.Text, input.Category, input.Difficulty)
	if !q.IsAppropriate(s.denylist) {
		return game.Question{}, apperrors.Validation("question contains disallowed content")
	}
	return q, nil
}

func (s *service) store(ctx context.Context, deck *game.QuestionDeck) (*game.QuestionDeck, error) {
	if err := s.repository.Update(ctx, deck); err != nil {
		return nil, apperrors.Wrap(err, "failed to store deck")
	}
	return deck, nil
}
