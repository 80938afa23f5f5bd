package games

import (
	"context"
	"sync"

	"github.com/NolanKnievel/party-app/internal/domain/game"
	apperrors "github.com/NolanKnievel/party-app/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu     sync.RWMutex
	states map[string]game.GameState
}

// NewInMemoryRepository creates a new in-memory game snapshot repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		states: make(map[string]game.GameState),
	}
}

// Create stores a snapshot for a new session
func (r *inMemoryRepository) Create(_ context.Context, state *game.GameState) error {
	if state == nil {
		return apperrors.InvalidArgument("state cannot be nil")
	}
	if state.SessionID == "" {
		return apperrors.InvalidArgument("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.states[state.SessionID]; exists {
		return apperrors.AlreadyExistsf("session %s already exists", state.SessionID)
	}

	r.states[state.SessionID] = *state
	return nil
}

// Get retrieves the snapshot for a session
func (r *inMemoryRepository) Get(_ context.Context, sessionID string) (*game.GameState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, exists := r.states[sessionID]
	if !exists {
		return nil, apperrors.NotFoundf("session not found: %s", sessionID)
	}

	return &state, nil
}

// Save replaces the snapshot for an existing session
func (r *inMemoryRepository) Save(_ context.Context, state *game.GameState) error {
	if state == nil {
		return apperrors.InvalidArgument("state cannot be nil")
	}
	if state.SessionID == "" {
		return apperrors.InvalidArgument("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[state.SessionID] = *state
	return nil
}

// Delete removes a session's snapshot
func (r *inMemoryRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.states, sessionID)
	return nil
}

// ListActive retrieves every stored snapshot that has not ended
func (r *inMemoryRepository) ListActive(_ context.Context) ([]*game.GameState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var states []*game.GameState
	for _, state := range r.states {
		if state.Phase != game.PhaseEnded {
			stateCopy := state
			states = append(states, &stateCopy)
		}
	}
	return states, nil
}
