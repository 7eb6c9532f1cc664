package match

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/farkle/internal/common/clock"
	"github.com/KirkDiggler/farkle/internal/common/uuid"
	"github.com/KirkDiggler/farkle/internal/models"
	matchRepo "github.com/KirkDiggler/farkle/internal/repositories/match"
	playerRepo "github.com/KirkDiggler/farkle/internal/repositories/player"
	"github.com/KirkDiggler/farkle/internal/services/turn"
)

const (
	defaultMaxPlayers = 10

	// recentMatchLimit is how many past matches are shown after a game
	recentMatchLimit = 5
)

// service implements the Service interface
type service struct {
	maxPlayers          int
	entryThreshold      int
	finalRoundThreshold int

	turnService   turn.Service
	prompter      Prompter
	reporter      Reporter
	clock         clock.Clock
	uuidGenerator uuid.UUID

	matchRepo  matchRepo.Repository
	playerRepo playerRepo.Repository
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TurnService == nil {
		return nil, ErrNilTurnService
	}

	if cfg.Prompter == nil {
		return nil, ErrNilPrompter
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	s := &service{
		maxPlayers:          cfg.MaxPlayers,
		entryThreshold:      cfg.EntryThreshold,
		finalRoundThreshold: cfg.FinalRoundThreshold,
		turnService:         cfg.TurnService,
		prompter:            cfg.Prompter,
		reporter:            cfg.Reporter,
		clock:               cfg.Clock,
		uuidGenerator:       cfg.UUIDGenerator,
		matchRepo:           cfg.MatchRepo,
		playerRepo:          cfg.PlayerRepo,
	}

	if s.maxPlayers <= 0 {
		s.maxPlayers = defaultMaxPlayers
	}
	if s.entryThreshold <= 0 {
		s.entryThreshold = models.EntryThreshold
	}
	if s.finalRoundThreshold <= 0 {
		s.finalRoundThreshold = models.FinalRoundThreshold
	}

	return s, nil
}

// CreatePlayers asks for the player count and names. A count that is not a
// whole number in 1..MaxPlayers, or a repeated name, fails the setup rather
// than being coerced.
func (s *service) CreatePlayers(ctx context.Context, input *CreatePlayersInput) (*CreatePlayersOutput, error) {
	rawCount, err := s.prompter.AskPlayerCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read player count: %w", err)
	}

	count, err := strconv.Atoi(strings.TrimSpace(rawCount))
	if err != nil || count < 1 || count > s.maxPlayers {
		return nil, fmt.Errorf("%w: got %q, maximum is %d", ErrInvalidPlayerCount, rawCount, s.maxPlayers)
	}

	players := make([]*models.Player, 0, count)
	seen := make(map[string]bool, count)
	for i := 1; i <= count; i++ {
		name, err := s.prompter.AskPlayerName(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("failed to read name for player %d: %w", i, err)
		}

		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Player %d", i)
		}

		// history is keyed by name
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePlayerName, name)
		}
		seen[name] = true

		players = append(players, models.NewPlayer(name))
	}

	return &CreatePlayersOutput{
		Players: players,
	}, nil
}

// UpdatePlayerPoints banks the round when the player is already in the game
// or the round itself reached the entry threshold
func (s *service) UpdatePlayerPoints(ctx context.Context, input *UpdatePlayerPointsInput) (*UpdatePlayerPointsOutput, error) {
	if input == nil || input.Player == nil {
		return nil, ErrNilPlayer
	}

	player := input.Player
	if player.Points() >= s.entryThreshold || input.RoundPoints >= s.entryThreshold {
		player.Award(input.RoundPoints)
		return &UpdatePlayerPointsOutput{
			Banked: true,
			Points: player.Points(),
		}, nil
	}

	err := s.report(ctx, &models.Event{
		Type:        models.EventTypeEntryDenied,
		PlayerName:  player.Name(),
		RoundPoints: input.RoundPoints,
		TotalPoints: player.Points(),
	})
	if err != nil {
		return nil, err
	}

	return &UpdatePlayerPointsOutput{
		Banked: false,
		Points: player.Points(),
	}, nil
}

// Run plays the match to completion. The first player to reach the final
// round threshold gives every other player exactly one more turn.
func (s *service) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil || len(input.Players) == 0 {
		return nil, ErrNoPlayers
	}

	players := input.Players
	for _, player := range players {
		if player == nil {
			return nil, ErrNilPlayer
		}
	}

	startedAt := s.clock.Now()
	output := &RunOutput{
		Status: models.MatchStatusRoundPlay,
	}

	playerIndex := 0
	finalRoundIndex := -1

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if finalRoundIndex != -1 {
			err := s.report(ctx, &models.Event{Type: models.EventTypeFinalRound})
			if err != nil {
				return nil, err
			}
		} else if playerIndex == 0 {
			output.Rounds++
			err := s.report(ctx, &models.Event{
				Type:  models.EventTypeRoundStart,
				Round: output.Rounds,
			})
			if err != nil {
				return nil, err
			}
		}

		player := players[playerIndex]
		turnOutput, err := s.turnService.PlayTurn(ctx, &turn.PlayTurnInput{
			Player: player,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to play turn for %s: %w", player.Name(), err)
		}
		output.Turns++

		_, err = s.UpdatePlayerPoints(ctx, &UpdatePlayerPointsInput{
			Player:      player,
			RoundPoints: turnOutput.Points,
		})
		if err != nil {
			return nil, err
		}

		if finalRoundIndex == -1 && player.Points() >= s.finalRoundThreshold {
			finalRoundIndex = playerIndex
			output.Status = models.MatchStatusFinalRound

			log.Debug().
				Str("player", player.Name()).
				Int("points", player.Points()).
				Int("round", output.Rounds).
				Msg("final round triggered")
		}

		playerIndex = (playerIndex + 1) % len(players)
		if playerIndex == finalRoundIndex {
			break
		}
	}

	output.Status = models.MatchStatusComplete
	output.Standings = RankPlayers(players)
	output.MatchID = s.uuidGenerator.NewUUID()

	err := s.report(ctx, &models.Event{
		Type:      models.EventTypeGameOver,
		Standings: output.Standings,
	})
	if err != nil {
		return nil, err
	}

	output.Records, output.RecentMatches = s.saveHistory(ctx, &models.MatchResult{
		ID:          output.MatchID,
		Standings:   output.Standings,
		Rounds:      output.Rounds,
		StartedAt:   startedAt,
		CompletedAt: s.clock.Now(),
	})

	if len(output.Records) > 0 {
		err := s.report(ctx, &models.Event{
			Type:    models.EventTypeRecords,
			Records: output.Records,
		})
		if err != nil {
			return nil, err
		}
	}

	if len(output.RecentMatches) > 0 {
		err := s.report(ctx, &models.Event{
			Type:    models.EventTypeRecentMatches,
			Matches: output.RecentMatches,
		})
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}

// saveHistory stores the finished match and each player's record, then reads
// back the latest matches. History is best effort: failures are logged and
// the match result stands.
func (s *service) saveHistory(ctx context.Context, result *models.MatchResult) ([]*models.PlayerRecord, []*models.MatchResult) {
	var recent []*models.MatchResult
	if s.matchRepo != nil {
		recent = s.saveMatch(ctx, result)
	}

	if s.playerRepo == nil {
		return nil, recent
	}

	records := make([]*models.PlayerRecord, 0, len(result.Standings))
	for _, standing := range result.Standings {
		record, err := s.playerRepo.RecordResult(ctx, &playerRepo.RecordResultInput{
			Name:   standing.Name,
			Points: standing.Points,
			Won:    standing.Rank == 1,
		})
		if err != nil {
			log.Warn().Err(err).Str("player", standing.Name).Msg("failed to record player result")
			continue
		}
		records = append(records, record)
	}

	return records, recent
}

func (s *service) saveMatch(ctx context.Context, result *models.MatchResult) []*models.MatchResult {
	err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{
		Match: result,
	})
	if err != nil {
		log.Warn().Err(err).Str("match_id", result.ID).Msg("failed to save match")
		return nil
	}
	log.Debug().Str("match_id", result.ID).Msg("match saved")

	recent, err := s.matchRepo.GetRecentMatches(ctx, &matchRepo.GetRecentMatchesInput{
		Limit: recentMatchLimit,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to load recent matches")
		return nil
	}
	return recent.Matches
}

func (s *service) report(ctx context.Context, event *models.Event) error {
	if s.reporter == nil {
		return nil
	}

	if err := s.reporter.Report(ctx, event); err != nil {
		return fmt.Errorf("failed to report %s: %w", event.Type, err)
	}
	return nil
}
