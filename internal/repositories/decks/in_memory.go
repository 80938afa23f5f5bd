package decks

import (
	"context"
	"sync"

	"github.com/NolanKnievel/party-app/internal/domain/game"
	apperrors "github.com/NolanKnievel/party-app/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu    sync.RWMutex
	decks map[string]*game.QuestionDeck
}

// NewInMemoryRepository creates a new in-memory deck repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		decks: make(map[string]*game.QuestionDeck),
	}
}

// Create stores a new deck
func (r *inMemoryRepository) Create(_ context.Context, deck *game.QuestionDeck) error {
	if deck == nil {
		return apperrors.InvalidArgument("deck cannot be nil")
	}
	if deck.ID == "" {
		return apperrors.InvalidArgument("deck ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.decks[deck.ID]; exists {
		return apperrors.AlreadyExistsf("deck with ID %s already exists", deck.ID)
	}

	// Store a copy so callers cannot mutate what we hold
	deckCopy := *deck
	r.decks[deck.ID] = &deckCopy
	return nil
}

// Get retrieves a deck by ID
func (r *inMemoryRepository) Get(_ context.Context, id string) (*game.QuestionDeck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deck, exists := r.decks[id]
	if !exists {
		return nil, apperrors.NotFoundf("deck not found: %s", id)
	}

	deckCopy := *deck
	return &deckCopy, nil
}

// Update replaces an existing deck
func (r *inMemoryRepository) Update(_ context.Context, deck *game.QuestionDeck) error {
	if deck == nil {
		return apperrors.InvalidArgument("deck cannot be nil")
	}
	if deck.ID == "" {
		return apperrors.InvalidArgument("deck ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.decks[deck.ID]; !exists {
		return apperrors.NotFoundf("deck not found: %s", deck.ID)
	}

	deckCopy := *deck
	r.decks[deck.ID] = &deckCopy
	return nil
}

// Delete removes a deck
func (r *inMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.decks[id]; !exists {
		return apperrors.NotFoundf("deck not found: %s", id)
	}

	delete(r.decks, id)
	return nil
}

// Exists reports whether a deck with the given ID is stored
func (r *inMemoryRepository) Exists(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.decks[id]
	return exists, nil
}

// List retrieves all stored decks
func (r *inMemoryRepository) List(_ context.Context) ([]*game.QuestionDeck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	decks := make([]*game.QuestionDeck, 0, len(r.decks))
	for _, deck := range r.decks {
		deckCopy := *deck
		decks = append(decks, &deckCopy)
	}
	return decks, nil
}

// ListByCategory retrieves decks containing at least one question in the category
func (r *inMemoryRepository) ListByCategory(_ context.Context, category game.Category) ([]*game.QuestionDeck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var decks []*game.QuestionDeck
	for _, deck := range r.decks {
		for _, q := range deck.Questions {
			if q.Category == category {
				deckCopy := *deck
				decks = append(decks, &deckCopy)
				break
			}
		}
	}
	return decks, nil
}

// ListDefault retrieves the system-provided decks
func (r *inMemoryRepository) ListDefault(_ context.Context) ([]*game.QuestionDeck, error) {
	return r.listWhere(func(d *game.QuestionDeck) bool { return d.IsDefault })
}

// ListPublic retrieves the shareable decks
func (r *inMemoryRepository) ListPublic(_ context.Context) ([]*game.QuestionDeck, error) {
	return r.listWhere(func(d *game.QuestionDeck) bool { return d.IsPublic })
}

func (r *inMemoryRepository) listWhere(keep func(*game.QuestionDeck) bool) ([]*game.QuestionDeck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var decks []*game.QuestionDeck
	for _, deck := range r.decks {
		if keep(deck) {
			deckCopy := *deck
			decks = append(decks, &deckCopy)
		}
	}
	return decks, nil
}
