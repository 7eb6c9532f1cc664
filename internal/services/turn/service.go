package turn

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/farkle/internal/dice"
	"github.com/KirkDiggler/farkle/internal/models"
	"github.com/KirkDiggler/farkle/internal/services/scoring"
)

// service implements the Service interface
type service struct {
	diceRoller dice.Roller
	scorer     scoring.Scorer
	decider    Decider
	reporter   Reporter
	totalDice  int
}

// New creates a new turn service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Decider == nil {
		return nil, ErrNilDecider
	}

	scorer := cfg.Scorer
	if scorer == nil {
		scorer = scoring.New()
	}

	totalDice := cfg.TotalDice
	if totalDice <= 0 {
		totalDice = models.TotalDice
	}

	return &service{
		diceRoller: cfg.DiceRoller,
		scorer:     scorer,
		decider:    cfg.Decider,
		reporter:   cfg.Reporter,
		totalDice:  totalDice,
	}, nil
}

// PlayTurn rolls for the player until they bust or stop
func (s *service) PlayTurn(ctx context.Context, input *PlayTurnInput) (*PlayTurnOutput, error) {
	if input == nil || input.Player == nil {
		return nil, ErrNilPlayer
	}

	player := input.Player
	output := &PlayTurnOutput{
		State: StateRolling,
	}

	err := s.emit(ctx, output, &models.Event{
		Type:        models.EventTypeTurnStart,
		PlayerName:  player.Name(),
		TotalPoints: player.Points(),
	})
	if err != nil {
		return nil, err
	}

	diceCount := s.totalDice
	roundPoints := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		faces := s.diceRoller.Roll(diceCount)
		points, used := s.scorer.CalculatePoints(faces)
		roundPoints += points

		roll := &models.Roll{
			Faces:    faces,
			Points:   points,
			DiceUsed: used,
		}
		output.Rolls = append(output.Rolls, roll)

		err := s.emit(ctx, output, &models.Event{
			Type:        models.EventTypeRoll,
			PlayerName:  player.Name(),
			Roll:        roll,
			RoundPoints: roundPoints,
			TotalPoints: player.Points(),
			DiceCount:   diceCount,
		})
		if err != nil {
			return nil, err
		}

		if points == 0 {
			output.State = StateBusted
			output.Points = 0

			log.Debug().
				Str("player", player.Name()).
				Int("rolls", len(output.Rolls)).
				Msg("turn busted")

			err := s.emit(ctx, output, &models.Event{
				Type:        models.EventTypeBust,
				PlayerName:  player.Name(),
				TotalPoints: player.Points(),
			})
			if err != nil {
				return nil, err
			}
			return output, nil
		}

		// Every die scored, so the player throws a full set without being asked
		if used >= diceCount {
			output.State = StateHotDice
			diceCount = s.totalDice

			err := s.emit(ctx, output, &models.Event{
				Type:        models.EventTypeHotDice,
				PlayerName:  player.Name(),
				RoundPoints: roundPoints,
				TotalPoints: player.Points(),
				DiceCount:   diceCount,
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		diceCount -= used
		output.State = StateScoredContinue

		keepRolling, err := s.decider.ShouldContinue(ctx, &DecisionInput{
			PlayerName:  player.Name(),
			DiceCount:   diceCount,
			RoundPoints: roundPoints,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get decision: %w", err)
		}

		if !keepRolling {
			output.State = StateStopped
			output.Points = roundPoints

			log.Debug().
				Str("player", player.Name()).
				Int("rolls", len(output.Rolls)).
				Int("points", roundPoints).
				Msg("turn stopped")

			return output, nil
		}
	}
}

// emit records the event on the output and forwards it to the reporter
func (s *service) emit(ctx context.Context, output *PlayTurnOutput, event *models.Event) error {
	output.Events = append(output.Events, event)
	if s.reporter == nil {
		return nil
	}

	if err := s.reporter.Report(ctx, event); err != nil {
		return fmt.Errorf("failed to report %s: %w", event.Type, err)
	}
	return nil
}
