package games

//go:generate mockgen -destination=mock/mock_repository.go -package=mockgames -source=repository.go

import (
	"context"

	"github.com/NolanKnievel/party-app/internal/domain/game"
)

// Repository defines the interface for game session snapshot storage.
// Snapshots round-trip whole: every field of the state, including the phase
// and the used-question set, survives a store and load.
type Repository interface {
	// Create stores a snapshot for a new session
	Create(ctx context.Context, state *game.GameState) error

	// Get retrieves the snapshot for a session
	Get(ctx context.Context, sessionID string) (*game.GameState, error)

	// Save replaces the snapshot for an existing session
	Save(ctx context.Context, state *game.GameState) error

	// Delete removes a session's snapshot
	Delete(ctx context.Context, sessionID string) error

	// ListActive retrieves every stored snapshot that has not ended
	ListActive(ctx context.Context) ([]*game.GameState, error)
}
