package player

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/farkle/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	playerKeyPrefix = "player:"

	fieldGamesPlayed = "games_played"
	fieldWins        = "wins"
	fieldTotalPoints = "total_points"
	fieldBestScore   = "best_score"
)

// ErrPlayerNotFound is returned when a player has no record
var ErrPlayerNotFound = errors.New("player not found")

// raiseBestScoreScript sets hash field ARGV[1] of KEYS[1] to ARGV[2] when the
// field is missing or lower. It runs inside the same MULTI as the counters.
const raiseBestScoreScript = `
local current = redis.call("HGET", KEYS[1], ARGV[1])
if not current or tonumber(ARGV[2]) > tonumber(current) then
	redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
end
return 0
`

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis hashes
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

// RecordResult increments the player's counters and raises the best score
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) (*models.PlayerRecord, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("input and player name cannot be empty")
	}

	wins := int64(0)
	if input.Won {
		wins = 1
	}

	playerKey := playerKey(input.Name)

	pipe := r.client.TxPipeline()
	pipe.HIncrBy(ctx, playerKey, fieldGamesPlayed, 1)
	pipe.HIncrBy(ctx, playerKey, fieldWins, wins)
	pipe.HIncrBy(ctx, playerKey, fieldTotalPoints, int64(input.Points))
	pipe.Eval(ctx, raiseBestScoreScript, []string{playerKey}, fieldBestScore, input.Points)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record result: %w", err)
	}

	record, err := r.GetPlayerRecord(ctx, &GetPlayerRecordInput{Name: input.Name})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// GetPlayerRecord retrieves a player's record from Redis
func (r *redisRepository) GetPlayerRecord(ctx context.Context, input *GetPlayerRecordInput) (*models.PlayerRecord, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("input and player name cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, playerKey(input.Name)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player record: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrPlayerNotFound
	}

	record := &models.PlayerRecord{Name: input.Name}
	counters := map[string]*int{
		fieldGamesPlayed: &record.GamesPlayed,
		fieldWins:        &record.Wins,
		fieldTotalPoints: &record.TotalPoints,
		fieldBestScore:   &record.BestScore,
	}
	for field, target := range counters {
		raw, ok := fields[field]
		if !ok {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s for player %s: %w", field, input.Name, err)
		}
		*target = value
	}

	return record, nil
}

func playerKey(name string) string {
	return fmt.Sprintf("%s%s", playerKeyPrefix, strings.TrimSpace(name))
}
