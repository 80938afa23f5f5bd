package games

import (
	"context"
	"encoding/json"
	"time"

	"github.com/NolanKnievel/party-app/internal/domain/game"
	apperrors "github.com/NolanKnievel/party-app/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	gameKeyPrefix = "game:"
	activeSetKey  = "games:active"

	// Abandoned sessions expire on their own
	defaultGameTTL = 48 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client  redis.UniversalClient
	GameTTL time.Duration
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client  redis.UniversalClient
	gameTTL time.Duration
}

// NewRedisRepository creates a new Redis-backed game snapshot repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.GameTTL
	if ttl == 0 {
		ttl = defaultGameTTL
	}

	return &redisRepository{
		client:  cfg.Client,
		gameTTL: ttl,
	}
}

// NewRedis creates a Redis-backed game snapshot repository with defaults
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

// Create stores a snapshot for a new session
func (r *redisRepository) Create(ctx context.Context, state *game.GameState) error {
	if state == nil {
		return apperrors.InvalidArgument("state cannot be nil")
	}
	if state.SessionID == "" {
		return apperrors.InvalidArgument("session ID cannot be empty")
	}

	exists, err := r.client.Exists(ctx, gameKeyPrefix+state.SessionID).Result()
	if err != nil {
		return apperrors.Wrapf(err, "failed to check session %s", state.SessionID)
	}
	if exists > 0 {
		return apperrors.AlreadyExistsf("session %s already exists", state.SessionID)
	}

	return r.write(ctx, state)
}

// Get retrieves the snapshot for a session
func (r *redisRepository) Get(ctx context.Context, sessionID string) (*game.GameState, error) {
	data, err := r.client.Get(ctx, gameKeyPrefix+sessionID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("session not found: %s", sessionID)
		}
		return nil, apperrors.Wrapf(err, "failed to get session %s", sessionID)
	}

	var state game.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, apperrors.Wrapf(err, "failed to deserialize session %s", sessionID)
	}

	return &state, nil
}

// Save replaces the snapshot for an existing session
func (r *redisRepository) Save(ctx context.Context, state *game.GameState) error {
	if state == nil {
		return apperrors.InvalidArgument("state cannot be nil")
	}
	if state.SessionID == "" {
		return apperrors.InvalidArgument("session ID cannot be empty")
	}

	return r.write(ctx, state)
}

// Delete removes a session's snapshot
func (r *redisRepository) Delete(ctx context.Context, sessionID string) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, gameKeyPrefix+sessionID)
	pipe.SRem(ctx, activeSetKey, sessionID)

	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrapf(err, "failed to delete session %s", sessionID)
	}
	return nil
}

// ListActive retrieves every stored snapshot that has not ended
func (r *redisRepository) ListActive(ctx context.Context) ([]*game.GameState, error) {
	sessionIDs, err := r.client.SMembers(ctx, activeSetKey).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read active session index")
	}
	if len(sessionIDs) == 0 {
		return []*game.GameState{}, nil
	}

	states := make([]*game.GameState, len(sessionIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range sessionIDs {
		i, id := i, id
		g.Go(func() error {
			state, getErr := r.Get(gctx, id)
			if getErr != nil {
				if apperrors.IsNotFound(getErr) {
					// Snapshot expired under the index; skip it
					return nil
				}
				return getErr
			}
			states[i] = state
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*game.GameState, 0, len(states))
	for _, state := range states {
		if state != nil {
			result = append(result, state)
		}
	}
	return result, nil
}

// write stores the snapshot and keeps the active index current: ended
// sessions drop out, everything else stays listed.
func (r *redisRepository) write(ctx context.Context, state *game.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return apperrors.Wrapf(err, "failed to serialize session %s", state.SessionID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, gameKeyPrefix+state.SessionID, data, r.gameTTL)
	if state.Phase == game.PhaseEnded {
		pipe.SRem(ctx, activeSetKey, state.SessionID)
	} else {
		pipe.SAdd(ctx, activeSetKey, state.SessionID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrapf(err, "failed to store session %s", state.SessionID)
	}
	return nil
}
