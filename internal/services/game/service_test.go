package game_test

import (
	"context"
	"testing"
	"time"

	domain "github.com/NolanKnievel/party-app/internal/domain/game"
	apperrors "github.com/NolanKnievel/party-app/internal/errors"
	"github.com/NolanKnievel/party-app/internal/random"
	"github.com/NolanKnievel/party-app/internal/repositories/decks"
	"github.com/NolanKnievel/party-app/internal/repositories/games"
	deckService "github.com/NolanKnievel/party-app/internal/services/deck"
	gameService "github.com/NolanKnievel/party-app/internal/services/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	games gameService.Service
	decks deckService.Service
	repo  games.Repository
	src   *random.MockSource
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	deckRepo := decks.NewInMemoryRepository()
	gameRepo := games.NewInMemoryRepository()
	src := random.NewMockSource()

	deckSvc := deckService.NewService(&deckService.ServiceConfig{
		Repository: deckRepo,
	})
	gameSvc := gameService.NewService(&gameService.ServiceConfig{
		Repository:  gameRepo,
		DeckService: deckSvc,
		Random:      src,
	})

	return &testEnv{
		games: gameSvc,
		decks: deckSvc,
		repo:  gameRepo,
		src:   src,
	}
}

func (e *testEnv) createDeck(t *testing.T, questionCount int) *domain.QuestionDeck {
	t.Helper()

	prompts := []string{
		"Truth or dare?",
		"Would you rather fly or teleport?",
		"What's your hidden talent?",
		"Who here would survive a zombie movie?",
	}

	questions := make([]deckService.QuestionInput, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		questions = append(questions, deckService.QuestionInput{
			Text:       prompts[i%len(prompts)],
			Category:   domain.CategoryTruthOrDare,
			Difficulty: domain.DifficultyEasy,
		})
	}

	deck, err := e.decks.CreateDeck(context.Background(), &deckService.CreateDeckInput{
		Name:        "Road Trip",
		Description: "Questions for long drives",
		Questions:   questions,
	})
	require.NoError(t, err)
	return deck
}

func (e *testEnv) createGame(t *testing.T, questionCount int, playerNames ...string) *domain.GameState {
	t.Helper()

	deck := e.createDeck(t, questionCount)
	state, err := e.games.CreateGame(context.Background(), &gameService.CreateGameInput{
		DeckID:      deck.ID,
		PlayerNames: playerNames,
	})
	require.NoError(t, err)
	return state
}

func TestCreateGame(t *testing.T) {
	env := newTestEnv(t)

	state := env.createGame(t, 3, "Alice", "Bob", "Carol")

	assert.NotEmpty(t, state.SessionID)
	assert.Equal(t, domain.PhaseSetup, state.Phase)
	assert.Len(t, state.Players, 3)
	assert.True(t, state.IsValid())
	assert.True(t, state.CanStart())

	stored, err := env.games.GetGame(context.Background(), state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, state.SessionID, stored.SessionID)
}

func TestCreateGame_RequiresTwoPlayers(t *testing.T) {
	env := newTestEnv(t)
	deck := env.createDeck(t, 2)

	_, err := env.games.CreateGame(context.Background(), &gameService.CreateGameInput{
		DeckID:      deck.ID,
		PlayerNames: []string{"Alice"},
	})
	assert.True(t, apperrors.IsInvalidArgument(err))
}

func TestCreateGame_UnknownDeck(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.games.CreateGame(context.Background(), &gameService.CreateGameInput{
		DeckID:      "missing",
		PlayerNames: []string{"Alice", "Bob"},
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStartGame(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	state := env.createGame(t, 3, "Alice", "Bob")

	started, err := env.games.StartGame(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseSpinning, started.Phase)
	assert.NotNil(t, started.StartedAt)

	// Starting an already started game is a rejected transition
	_, err = env.games.StartGame(ctx, state.SessionID)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSpinForPlayer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	state := env.createGame(t, 3, "Alice", "Bob", "Carol")

	_, err := env.games.StartGame(ctx, state.SessionID)
	require.NoError(t, err)

	env.src.SetNextIntn(1)
	picked, err := env.games.SpinForPlayer(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", picked.Name)

	stored, err := env.games.GetGame(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseQuestioning, stored.Phase)
	require.NotNil(t, stored.CurrentPlayer)
	assert.Equal(t, picked.ID, stored.CurrentPlayer.ID)
}

func TestSpinForPlayer_OnlyWhileSpinning(t *testing.T) {
	env := newTestEnv(t)
	state := env.createGame(t, 3, "Alice", "Bob")

	_, err := env.games.SpinForPlayer(context.Background(), state.SessionID)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDrawQuestion_CyclesDeck(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	state := env.createGame(t, 2, "Alice", "Bob")

	_, err := env.games.StartGame(ctx, state.SessionID)
	require.NoError(t, err)
	_, err = env.games.SpinForPlayer(ctx, state.SessionID)
	require.NoError(t, err)

	first, err := env.games.DrawQuestion(ctx, state.SessionID)
	require.NoError(t, err)

	second, err := env.games.DrawQuestion(ctx, state.SessionID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// Deck exhausted; the next draw resets the rotation and succeeds
	stored, err := env.games.GetGame(ctx, state.SessionID)
	require.NoError(t, err)
	assert.False(t, stored.HasUnusedQuestions())

	third, err := env.games.DrawQuestion(ctx, state.SessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, third.ID)

	stored, err = env.games.GetGame(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Len(t, stored.UsedQuestions, 1)
}

func TestDrawQuestion_OnlyWhileQuestioning(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	state := env.createGame(t, 2, "Alice", "Bob")

	_, err := env.games.StartGame(ctx, state.SessionID)
	require.NoError(t, err)

	_, err = env.games.DrawQuestion(ctx, state.SessionID)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAdvanceTurn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	state := env.createGame(t, 2, "Alice", "Bob")

	_, err := env.games.StartGame(ctx, state.SessionID)
	require.NoError(t, err)
	_, err = env.games.SpinForPlayer(ctx, state.SessionID)
	require.NoError(t, err)

	advanced, err := env.games.AdvanceTurn(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseSpinning, advanced.Phase)
	assert.Nil(t, advanced.CurrentPlayer)
}

func TestPauseAndResume(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	state := env.createGame(t, 2, "Alice", "Bob")

	_, err := env.games.StartGame(ctx, state.SessionID)
	require.NoError(t, err)

	paused, err := env.games.PauseGame(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhasePaused, paused.Phase)

	resumed, err := env.games.ResumeGame(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseSpinning, resumed.Phase)

	// Resuming a running game is rejected
	_, err = env.games.ResumeGame(ctx, state.SessionID)
	assert.True(t, apperrors.IsValidation(err))
}

func TestEndGame(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	state := env.createGame(t, 2, "Alice", "Bob")

	ended, err := env.games.EndGame(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseEnded, ended.Phase)
	assert.Nil(t, ended.CurrentPlayer)
}

func TestAddAndRemovePlayer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	state := env.createGame(t, 2, "Alice", "Bob")

	withDave, err := env.games.AddPlayer(ctx, state.SessionID, "Dave")
	require.NoError(t, err)
	assert.Len(t, withDave.Players, 3)

	removed, err := env.games.RemovePlayer(ctx, state.SessionID, withDave.Players[2].ID)
	require.NoError(t, err)
	assert.Len(t, removed.Players, 2)
}

func TestCleanupStale(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	fresh := env.createGame(t, 2, "Alice", "Bob")
	stale := env.createGame(t, 2, "Carol", "Dave")

	// Age the second session past the default threshold
	aged := *stale
	aged.LastActivity = time.Now().Add(-time.Hour)
	require.NoError(t, env.repo.Save(ctx, &aged))

	removed, err := env.games.CleanupStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = env.games.GetGame(ctx, fresh.SessionID)
	assert.NoError(t, err)

	_, err = env.games.GetGame(ctx, stale.SessionID)
	assert.True(t, apperrors.IsNotFound(err))
}
