package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/farkle/internal/common/clock"
	"github.com/KirkDiggler/farkle/internal/common/uuid"
	"github.com/KirkDiggler/farkle/internal/config"
	"github.com/KirkDiggler/farkle/internal/dice"
	"github.com/KirkDiggler/farkle/internal/handlers/console"
	matchRepo "github.com/KirkDiggler/farkle/internal/repositories/match"
	playerRepo "github.com/KirkDiggler/farkle/internal/repositories/player"
	matchService "github.com/KirkDiggler/farkle/internal/services/match"
	"github.com/KirkDiggler/farkle/internal/services/messaging"
	turnService "github.com/KirkDiggler/farkle/internal/services/turn"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn().Msg("Game interrupted")
		} else {
			log.Error().Err(err).Msg("Game failed")
		}
		stop()
		os.Exit(1)
	}
}

// setupLogging writes logs to stderr so they stay out of the game text
func setupLogging(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsProduction() {
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	terminal, err := console.New(&console.Config{
		In:        os.Stdin,
		Out:       os.Stdout,
		Messaging: messagingSvc,
	})
	if err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}

	turnSvc, err := turnService.New(&turnService.Config{
		DiceRoller: dice.New(&dice.Config{Seed: cfg.DiceSeed}),
		Decider:    terminal,
		Reporter:   terminal,
	})
	if err != nil {
		return fmt.Errorf("failed to create turn service: %w", err)
	}

	matchCfg := &matchService.Config{
		MaxPlayers:    cfg.MaxPlayers,
		TurnService:   turnSvc,
		Prompter:      terminal,
		Reporter:      terminal,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	}

	if cfg.HistoryEnabled() {
		redisClient, err := connectRedis(ctx, cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		matches, err := matchRepo.NewRedis(&matchRepo.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			return fmt.Errorf("failed to create match repository: %w", err)
		}

		players, err := playerRepo.NewRedis(&playerRepo.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			return fmt.Errorf("failed to create player repository: %w", err)
		}

		matchCfg.MatchRepo = matches
		matchCfg.PlayerRepo = players
	}

	matchSvc, err := matchService.New(matchCfg)
	if err != nil {
		return fmt.Errorf("failed to create match service: %w", err)
	}

	created, err := matchSvc.CreatePlayers(ctx, &matchService.CreatePlayersInput{})
	if err != nil {
		return err
	}

	result, err := matchSvc.Run(ctx, &matchService.RunInput{
		Players: created.Players,
	})
	if err != nil {
		return err
	}

	log.Debug().
		Str("match_id", result.MatchID).
		Int("rounds", result.Rounds).
		Int("turns", result.Turns).
		Msg("Match finished")

	return nil
}

func connectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Debug().Str("addr", cfg.RedisAddr).Msg("Match history enabled")
	return redisClient, nil
}
