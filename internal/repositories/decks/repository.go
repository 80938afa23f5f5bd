package decks

//go:generate mockgen -destination=mock/mock_repository.go -package=mockdecks -source=repository.go

import (
	"context"

	"github.com/NolanKnievel/party-app/internal/domain/game"
)

// Repository defines the interface for question deck storage
type Repository interface {
	// Create stores a new deck
	Create(ctx context.Context, deck *game.QuestionDeck) error

	// Get retrieves a deck by ID
	Get(ctx context.Context, id string) (*game.QuestionDeck, error)

	// Update replaces an existing deck
	Update(ctx context.Context, deck *game.QuestionDeck) error

	// Delete removes a deck
	Delete(ctx context.Context, id string) error

	// Exists reports whether a deck with the given ID is stored
	Exists(ctx context.Context, id string) (bool, error)

	// List retrieves all stored decks
	List(ctx context.Context) ([]*game.QuestionDeck, error)

	// ListByCategory retrieves decks containing at least one question in the
	// given category
	ListByCategory(ctx context.Context, category game.Category) ([]*game.QuestionDeck, error)

	// ListDefault retrieves the system-provided decks
	ListDefault(ctx context.Context) ([]*game.QuestionDeck, error)

	// ListPublic retrieves the shareable decks
	ListPublic(ctx context.Context) ([]*game.QuestionDeck, error)
}
