package game

//go:generate mockgen -destination=mock/mock_service.go -package=mockgame -source=service.go

import (
	"context"
	"strings"
	"time"

	domain "github.com/NolanKnievel/party-app/internal/domain/game"
	apperrors "github.com/NolanKnievel/party-app/internal/errors"
	"github.com/NolanKnievel/party-app/internal/random"
	"github.com/NolanKnievel/party-app/internal/repositories/games"
	deckService "github.com/NolanKnievel/party-app/internal/services/deck"
	"github.com/NolanKnievel/party-app/internal/uuid"
)

// Repository is an alias for the game snapshot repository interface
type Repository = games.Repository

// Service orchestrates game sessions. It owns the serialization contract of
// the state machine: each call loads the authoritative snapshot, applies
// exactly one transition, and persists the result.
type Service interface {
	// CreateGame assembles a session from a stored deck and player names
	CreateGame(ctx context.Context, input *CreateGameInput) (*domain.GameState, error)

	// GetGame retrieves the current snapshot of a session
	GetGame(ctx context.Context, sessionID string) (*domain.GameState, error)

	// StartGame moves a ready session from setup to spinning
	StartGame(ctx context.Context, sessionID string) (*domain.GameState, error)

	// PauseGame suspends an active session
	PauseGame(ctx context.Context, sessionID string) (*domain.GameState, error)

	// ResumeGame continues a paused session
	ResumeGame(ctx context.Context, sessionID string) (*domain.GameState, error)

	// EndGame concludes a session
	EndGame(ctx context.Context, sessionID string) (*domain.GameState, error)

	// SpinForPlayer picks the next player uniformly at random and selects them
	SpinForPlayer(ctx context.Context, sessionID string) (*domain.Player, error)

	// DrawQuestion returns the next question for the current player, cycling
	// the deck once it is exhausted
	DrawQuestion(ctx context.Context, sessionID string) (*domain.Question, error)

	// AdvanceTurn finishes the current turn and returns to spinning
	AdvanceTurn(ctx context.Context, sessionID string) (*domain.GameState, error)

	// AddPlayer adds a late joiner to the session
	AddPlayer(ctx context.Context, sessionID, playerName string) (*domain.GameState, error)

	// RemovePlayer drops a player from the session
	RemovePlayer(ctx context.Context, sessionID, playerID string) (*domain.GameState, error)

	// CleanupStale deletes sessions idle past the stale threshold and
	// returns how many were removed
	CleanupStale(ctx context.Context) (int, error)
}

// CreateGameInput contains data for creating a game session
type CreateGameInput struct {
	DeckID      string
	PlayerNames []string
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository     Repository          // Required
	DeckService    deckService.Service // Required
	UUIDGenerator  uuid.Generator      // Optional, defaults to Google UUIDs
	Random         random.Source       // Optional, defaults to math/rand
	StaleThreshold time.Duration       // Optional, defaults to the domain default
}

// service implements the Service interface
type service struct {
	repository     Repository
	deckService    deckService.Service
	uuidGenerator  uuid.Generator
	random         random.Source
	staleThreshold time.Duration
}

// NewService creates a new game service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.DeckService == nil {
		panic("deck service is required")
	}

	svc := &service{
		repository:     cfg.Repository,
		deckService:    cfg.DeckService,
		staleThreshold: cfg.StaleThreshold,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	if cfg.Random != nil {
		svc.random = cfg.Random
	} else {
		svc.random = random.NewRandSource()
	}

	if svc.staleThreshold == 0 {
		svc.staleThreshold = domain.DefaultStaleThreshold
	}

	return svc
}

// CreateGame assembles a session from a stored deck and player names
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*domain.GameState, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	if input.DeckID == "" {
		return nil, apperrors.InvalidArgument("deck ID is required")
	}
	if len(input.PlayerNames) < 2 {
		return nil, apperrors.InvalidArgument("a game needs at least 2 players")
	}

	deck, err := s.deckService.GetDeck(ctx, input.DeckID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load deck")
	}

	players := make([]domain.Player, 0, len(input.PlayerNames))
	for _, name := range input.PlayerNames {
		if strings.TrimSpace(name) == "" {
			return nil, apperrors.InvalidArgument("player names cannot be empty")
		}
		players = append(players, domain.NewPlayer(s.uuidGenerator.New(), name))
	}

	state := domain.NewGameState(s.uuidGenerator.New(), players, *deck)
	if !state.IsValid() {
		return nil, apperrors.Validation("game state is not valid")
	}

	if err := s.repository.Create(ctx, &state); err != nil {
		return nil, apperrors.Wrap(err, "failed to store game")
	}

	return &state, nil
}

// GetGame retrieves the current snapshot of a session
func (s *service) GetGame(ctx context.Context, sessionID string) (*domain.GameState, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidArgument("session ID is required")
	}
	return s.repository.Get(ctx, sessionID)
}

// StartGame moves a ready session from setup to spinning
func (s *service) StartGame(ctx context.Context, sessionID string) (*domain.GameState, error) {
	return s.transition(ctx, sessionID, "start", func(state domain.GameState) domain.GameState {
		return state.Start()
	})
}

// PauseGame suspends an active session
func (s *service) PauseGame(ctx context.Context, sessionID string) (*domain.GameState, error) {
	return s.transition(ctx, sessionID, "pause", func(state domain.GameState) domain.GameState {
		return state.Pause()
	})
}

// ResumeGame continues a paused session
func (s *service) ResumeGame(ctx context.Context, sessionID string) (*domain.GameState, error) {
	return s.transition(ctx, sessionID, "resume", func(state domain.GameState) domain.GameState {
		return state.Resume()
	})
}

// EndGame concludes a session
func (s *service) EndGame(ctx context.Context, sessionID string) (*domain.GameState, error) {
	state, err := s.GetGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ended := state.End()
	if err := s.repository.Save(ctx, &ended); err != nil {
		return nil, apperrors.Wrap(err, "failed to store game")
	}
	return &ended, nil
}

// SpinForPlayer picks the next player uniformly at random and selects them
func (s *service) SpinForPlayer(ctx context.Context, sessionID string) (*domain.Player, error) {
	state, err := s.GetGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if state.Phase != domain.PhaseSpinning {
		return nil, apperrors.Validationf("cannot spin while %s", state.Phase)
	}
	if len(state.Players) == 0 {
		return nil, apperrors.Validation("no players to spin for")
	}

	picked := state.Players[s.random.Intn(len(state.Players))]
	next := state.SelectPlayer(picked)
	if err := s.repository.Save(ctx, &next); err != nil {
		return nil, apperrors.Wrap(err, "failed to store game")
	}

	return &picked, nil
}

// DrawQuestion returns the next question for the current player. When the
// deck's rotation is exhausted the used set is reset first, so play cycles
// through the whole deck again.
func (s *service) DrawQuestion(ctx context.Context, sessionID string) (*domain.Question, error) {
	state, err := s.GetGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if state.Phase != domain.PhaseQuestioning {
		return nil, apperrors.Validationf("cannot draw a question while %s", state.Phase)
	}

	next := *state
	if !next.HasUnusedQuestions() {
		next = next.ResetQuestions()
	}

	question, ok := next.NextAvailableQuestion(s.random)
	if !ok {
		return nil, apperrors.Validation("deck has no questions to draw")
	}

	next = next.MarkQuestionUsed(question.ID)
	if err := s.repository.Save(ctx, &next); err != nil {
		return nil, apperrors.Wrap(err, "failed to store game")
	}

	return &question, nil
}

// AdvanceTurn finishes the current turn and returns to spinning
func (s *service) AdvanceTurn(ctx context.Context, sessionID string) (*domain.GameState, error) {
	return s.transition(ctx, sessionID, "advance the turn", func(state domain.GameState) domain.GameState {
		return state.AdvanceTurn()
	})
}

// AddPlayer adds a late joiner to the session
func (s *service) AddPlayer(ctx context.Context, sessionID, playerName string) (*domain.GameState, error) {
	if strings.TrimSpace(playerName) == "" {
		return nil, apperrors.InvalidArgument("player name is required")
	}

	state, err := s.GetGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next := state.AddPlayer(domain.NewPlayer(s.uuidGenerator.New(), playerName))
	if err := s.repository.Save(ctx, &next); err != nil {
		return nil, apperrors.Wrap(err, "failed to store game")
	}
	return &next, nil
}

// RemovePlayer drops a player from the session. Removal can leave the session
// below the 2 player minimum; the returned snapshot's IsValid reports that
// and it is up to the caller to end or refill the game.
func (s *service) RemovePlayer(ctx context.Context, sessionID, playerID string) (*domain.GameState, error) {
	if playerID == "" {
		return nil, apperrors.InvalidArgument("player ID is required")
	}

	state, err := s.GetGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next := state.RemovePlayer(playerID)
	if err := s.repository.Save(ctx, &next); err != nil {
		return nil, apperrors.Wrap(err, "failed to store game")
	}
	return &next, nil
}

// CleanupStale deletes sessions idle past the stale threshold
func (s *service) CleanupStale(ctx context.Context) (int, error) {
	states, err := s.repository.ListActive(ctx)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to list active games")
	}

	removed := 0
	for _, state := range states {
		if !state.IsStale(s.staleThreshold) {
			continue
		}
		if err := s.repository.Delete(ctx, state.SessionID); err != nil {
			return removed, apperrors.Wrapf(err, "failed to delete stale game %s", state.SessionID)
		}
		removed++
	}

	return removed, nil
}

// transition applies a single guarded transition. A rejected transition
// leaves the snapshot's phase unchanged, which surfaces as a validation
// error instead of silently persisting nothing new.
func (s *service) transition(ctx context.Context, sessionID, action string, apply func(domain.GameState) domain.GameState) (*domain.GameState, error) {
	state, err := s.GetGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next := apply(*state)
	if next.Phase == state.Phase {
		return nil, apperrors.Validationf("cannot %s while %s", action, state.Phase)
	}

	if err := s.repository.Save(ctx, &next); err != nil {
		return nil, apperrors.Wrap(err, "failed to store game")
	}
	return &next, nil
}
