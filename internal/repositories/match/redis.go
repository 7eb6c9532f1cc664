package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/farkle/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	matchKeyPrefix   = "match:"
	recentMatchesKey = "matches:recent"

	defaultRecentLimit = 10
)

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errors.New("match not found")

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed match repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveMatch persists a match and indexes it by completion time
func (r *redisRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	if input.Match.ID == "" {
		return errors.New("match ID cannot be empty")
	}

	matchJSON, err := json.Marshal(input.Match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	pipe := r.client.TxPipeline()

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.Match.ID)
	pipe.Set(ctx, matchKey, matchJSON, 0)
	pipe.ZAdd(ctx, recentMatchesKey, redis.Z{
		Score:  float64(input.Match.CompletedAt.UnixNano()),
		Member: input.Match.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

// GetMatch retrieves a match by ID from Redis
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.MatchResult, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.MatchID)
	matchJSON, err := r.client.Get(ctx, matchKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var match models.MatchResult
	if err := json.Unmarshal([]byte(matchJSON), &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}

// GetRecentMatches retrieves the newest matches from the completion index
func (r *redisRepository) GetRecentMatches(ctx context.Context, input *GetRecentMatchesInput) (*GetRecentMatchesOutput, error) {
	limit := defaultRecentLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	matchIDs, err := r.client.ZRevRange(ctx, recentMatchesKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent match IDs: %w", err)
	}

	matches := make([]*models.MatchResult, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		match, err := r.GetMatch(ctx, &GetMatchInput{MatchID: matchID})
		if err != nil {
			if errors.Is(err, ErrMatchNotFound) {
				// Index entry outlived the match record
				continue
			}
			return nil, err
		}
		matches = append(matches, match)
	}

	return &GetRecentMatchesOutput{
		Matches: matches,
	}, nil
}
