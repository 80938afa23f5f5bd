package decks_test

import (
	"context"
	"testing"

	"github.com/NolanKnievel/party-app/internal/domain/game"
	apperrors "github.com/NolanKnievel/party-app/internal/errors"
	"github.com/NolanKnievel/party-app/internal/repositories/decks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memDeck(id string, category game.Category, isDefault, isPublic bool) *game.QuestionDeck {
	deck := game.NewDeck(id, "Deck "+id, "A test deck", []game.Question{
		game.NewQuestion(id+"-q1", "Prompt one", category, game.DifficultyEasy),
	})
	deck.IsDefault = isDefault
	deck.IsPublic = isPublic
	return &deck
}

func TestInMemoryCreateGet(t *testing.T) {
	ctx := context.Background()
	repo := decks.NewInMemoryRepository()

	deck := memDeck("deck-1", game.CategoryTruthOrDare, false, false)
	require.NoError(t, repo.Create(ctx, deck))

	got, err := repo.Get(ctx, "deck-1")
	require.NoError(t, err)
	assert.Equal(t, deck.Name, got.Name)

	// The repository hands back copies
	got.Name = "mutated"
	again, err := repo.Get(ctx, "deck-1")
	require.NoError(t, err)
	assert.Equal(t, deck.Name, again.Name)
}

func TestInMemoryCreate_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := decks.NewInMemoryRepository()

	require.NoError(t, repo.Create(ctx, memDeck("deck-1", game.CategoryCustom, false, false)))
	err := repo.Create(ctx, memDeck("deck-1", game.CategoryCustom, false, false))
	assert.True(t, apperrors.IsAlreadyExists(err))
}

func TestInMemoryGet_NotFound(t *testing.T) {
	repo := decks.NewInMemoryRepository()

	_, err := repo.Get(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestInMemoryUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := decks.NewInMemoryRepository()

	deck := memDeck("deck-1", game.CategoryCustom, false, false)
	require.NoError(t, repo.Create(ctx, deck))

	deck.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, deck))

	got, err := repo.Get(ctx, "deck-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	require.NoError(t, repo.Delete(ctx, "deck-1"))
	_, err = repo.Get(ctx, "deck-1")
	assert.True(t, apperrors.IsNotFound(err))

	assert.True(t, apperrors.IsNotFound(repo.Delete(ctx, "deck-1")))
}

func TestInMemoryExists(t *testing.T) {
	ctx := context.Background()
	repo := decks.NewInMemoryRepository()

	exists, err := repo.Exists(ctx, "deck-1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, memDeck("deck-1", game.CategoryCustom, false, false)))

	exists, err = repo.Exists(ctx, "deck-1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestInMemoryListFilters(t *testing.T) {
	ctx := context.Background()
	repo := decks.NewInMemoryRepository()

	require.NoError(t, repo.Create(ctx, memDeck("deck-1", game.CategoryTruthOrDare, true, false)))
	require.NoError(t, repo.Create(ctx, memDeck("deck-2", game.CategoryWouldYouRather, false, true)))
	require.NoError(t, repo.Create(ctx, memDeck("deck-3", game.CategoryTruthOrDare, false, true)))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	defaults, err := repo.ListDefault(ctx)
	require.NoError(t, err)
	require.Len(t, defaults, 1)
	assert.Equal(t, "deck-1", defaults[0].ID)

	public, err := repo.ListPublic(ctx)
	require.NoError(t, err)
	assert.Len(t, public, 2)

	truthOrDare, err := repo.ListByCategory(ctx, game.CategoryTruthOrDare)
	require.NoError(t, err)
	assert.Len(t, truthOrDare, 2)

	custom, err := repo.ListByCategory(ctx, game.CategoryCustom)
	require.NoError(t, err)
	assert.Empty(t, custom)
}
