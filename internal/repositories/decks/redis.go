package decks

import (
	"context"
	"encoding/json"

	"github.com/NolanKnievel/party-app/internal/domain/game"
	apperrors "github.com/NolanKnievel/party-app/internal/errors"
	"github.com/redis/go-redis/v9"
)

const (
	deckKeyPrefix   = "deck:"
	allDecksKey     = "decks:all"
	defaultDecksKey = "decks:default"
	publicDecksKey  = "decks:public"
	categoryKey     = "decks:category:"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// NewRedisRepository creates a new Redis-backed deck repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	tp := cfg.TimeProvider
	if tp == nil {
		tp = NewRealTimeProvider()
	}

	return &redisRepository{
		client:       cfg.Client,
		timeProvider: tp,
	}
}

// Create stores a new deck
func (r *redisRepository) Create(ctx context.Context, deck *game.QuestionDeck) error {
	if deck == nil {
		return apperrors.InvalidArgument("deck cannot be nil")
	}
	if deck.ID == "" {
		return apperrors.InvalidArgument("deck ID cannot be empty")
	}

	exists, err := r.client.Exists(ctx, deckKeyPrefix+deck.ID).Result()
	if err != nil {
		return apperrors.Wrapf(err, "failed to check deck %s", deck.ID)
	}
	if exists > 0 {
		return apperrors.AlreadyExistsf("deck with ID %s already exists", deck.ID)
	}

	now := r.timeProvider.Now()
	deck.CreatedAt = now
	deck.LastModified = now

	return r.write(ctx, deck, nil)
}

// Get retrieves a deck by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*game.QuestionDeck, error) {
	data, err := r.client.Get(ctx, deckKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("deck not found: %s", id)
		}
		return nil, apperrors.Wrapf(err, "failed to get deck %s", id)
	}

	var deck game.QuestionDeck
	if err := json.Unmarshal(data, &deck); err != nil {
		return nil, apperrors.Wrapf(err, "failed to deserialize deck %s", id)
	}

	return &deck, nil
}

// Update replaces an existing deck and reconciles its index membership
func (r *redisRepository) Update(ctx context.Context, deck *game.QuestionDeck) error {
	if deck == nil {
		return apperrors.InvalidArgument("deck cannot be nil")
	}
	if deck.ID == "" {
		return apperrors.InvalidArgument("deck ID cannot be empty")
	}

	existing, err := r.Get(ctx, deck.ID)
	if err != nil {
		return err
	}

	deck.LastModified = r.timeProvider.Now()

	return r.write(ctx, deck, existing)
}

// Delete removes a deck and its index entries
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	deck, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, deckKeyPrefix+id)
	pipe.SRem(ctx, allDecksKey, id)
	pipe.SRem(ctx, defaultDecksKey, id)
	pipe.SRem(ctx, publicDecksKey, id)
	for _, cat := range deckCategories(deck) {
		pipe.SRem(ctx, categoryKey+string(cat), id)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrapf(err, "failed to delete deck %s", id)
	}

	return nil
}

// Exists reports whether a deck with the given ID is stored
func (r *redisRepository) Exists(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, deckKeyPrefix+id).Result()
	if err != nil {
		return false, apperrors.Wrapf(err, "failed to check deck %s", id)
	}
	return n > 0, nil
}

// List retrieves all stored decks
func (r *redisRepository) List(ctx context.Context) ([]*game.QuestionDeck, error) {
	return r.listFromIndex(ctx, allDecksKey)
}

// ListByCategory retrieves decks containing at least one question in the category
func (r *redisRepository) ListByCategory(ctx context.Context, category game.Category) ([]*game.QuestionDeck, error) {
	return r.listFromIndex(ctx, categoryKey+string(category))
}

// ListDefault retrieves the system-provided decks
func (r *redisRepository) ListDefault(ctx context.Context) ([]*game.QuestionDeck, error) {
	return r.listFromIndex(ctx, defaultDecksKey)
}

// ListPublic retrieves the shareable decks
func (r *redisRepository) ListPublic(ctx context.Context) ([]*game.QuestionDeck, error) {
	return r.listFromIndex(ctx, publicDecksKey)
}

// write stores the deck and brings its index membership in line with its
// current flags and question categories. When previous is non-nil, stale
// index entries from that version are removed.
func (r *redisRepository) write(ctx context.Context, deck, previous *game.QuestionDeck) error {
	data, err := json.Marshal(deck)
	if err != nil {
		return apperrors.Wrapf(err, "failed to serialize deck %s", deck.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, deckKeyPrefix+deck.ID, data, 0)
	pipe.SAdd(ctx, allDecksKey, deck.ID)

	if deck.IsDefault {
		pipe.SAdd(ctx, defaultDecksKey, deck.ID)
	} else {
		pipe.SRem(ctx, defaultDecksKey, deck.ID)
	}
	if deck.IsPublic {
		pipe.SAdd(ctx, publicDecksKey, deck.ID)
	} else {
		pipe.SRem(ctx, publicDecksKey, deck.ID)
	}

	current := deckCategories(deck)
	for _, cat := range current {
		pipe.SAdd(ctx, categoryKey+string(cat), deck.ID)
	}
	if previous != nil {
		for _, cat := range deckCategories(previous) {
			if !containsCategory(current, cat) {
				pipe.SRem(ctx, categoryKey+string(cat), deck.ID)
			}
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrapf(err, "failed to store deck %s", deck.ID)
	}

	return nil
}

// listFromIndex loads every deck referenced by the given index set
func (r *redisRepository) listFromIndex(ctx context.Context, indexKey string) ([]*game.QuestionDeck, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to read deck index %s", indexKey)
	}
	if len(ids) == 0 {
		return []*game.QuestionDeck{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = deckKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load decks")
	}

	decks := make([]*game.QuestionDeck, 0, len(values))
	for _, val := range values {
		data, ok := val.(string)
		if !ok {
			// Deck was deleted out from under the index; skip it
			continue
		}

		var deck game.QuestionDeck
		if err := json.Unmarshal([]byte(data), &deck); err != nil {
			continue
		}
		decks = append(decks, &deck)
	}

	return decks, nil
}

// deckCategories returns the distinct question categories present in the deck
func deckCategories(deck *game.QuestionDeck) []game.Category {
	seen := make(map[game.Category]bool)
	var categories []game.Category
	for _, q := range deck.Questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			categories = append(categories, q.Category)
		}
	}
	return categories
}

func containsCategory(categories []game.Category, c game.Category) bool {
	for _, cat := range categories {
		if cat == c {
			return true
		}
	}
	return false
}
