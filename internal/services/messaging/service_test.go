package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/farkle/internal/models"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) eventLines(event *models.Event) []string {
	output, err := s.service.GetEventMessage(s.ctx, &GetEventMessageInput{Event: event})
	s.Require().NoError(err)
	return output.Lines
}

func (s *MessagingServiceTestSuite) TestPrompts() {
	tests := []struct {
		input *GetPromptMessageInput
		want  string
	}{
		{&GetPromptMessageInput{Type: PromptTypePlayerCount}, "Enter number of players: "},
		{&GetPromptMessageInput{Type: PromptTypePlayerName, PlayerNumber: 2}, "Enter player 2 name: "},
		{&GetPromptMessageInput{Type: PromptTypeContinue, DiceCount: 3}, "Roll again with non-scored 3 dice? (y/n): "},
	}

	for _, tt := range tests {
		output, err := s.service.GetPromptMessage(s.ctx, tt.input)
		s.Require().NoError(err)
		s.Equal(tt.want, output.Prompt)
	}
}

func (s *MessagingServiceTestSuite) TestUnknownPrompt() {
	_, err := s.service.GetPromptMessage(s.ctx, &GetPromptMessageInput{Type: "shrug"})
	s.ErrorIs(err, ErrUnknownPromptType)

	_, err = s.service.GetPromptMessage(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *MessagingServiceTestSuite) TestRollLines() {
	lines := s.eventLines(&models.Event{
		Type:       models.EventTypeRoll,
		PlayerName: "Alpha",
		Roll: &models.Roll{
			Faces:    []int{1, 1, 1, 6, 3},
			Points:   1000,
			DiceUsed: 3,
		},
		RoundPoints: 1150,
		TotalPoints: 400,
	})

	s.Equal([]string{
		`"Alpha" rolls: [1, 1, 1, 6, 3]`,
		"Roll points: 1000",
		"Current round points: 1150",
		"Total points: 400",
	}, lines)
}

func (s *MessagingServiceTestSuite) TestFixedNotices() {
	s.Equal([]string{"Oops! No points this round."},
		s.eventLines(&models.Event{Type: models.EventTypeBust}))
	s.Equal([]string{"Hot dice! All dice scored, rolling 5 fresh dice."},
		s.eventLines(&models.Event{Type: models.EventTypeHotDice, DiceCount: 5}))
	s.Equal([]string{"Not enough points to get into the game."},
		s.eventLines(&models.Event{Type: models.EventTypeEntryDenied}))
	s.Equal([]string{""},
		s.eventLines(&models.Event{Type: models.EventTypeTurnStart}))
}

func (s *MessagingServiceTestSuite) TestBanners() {
	s.Equal([]string{"", "Round 3:", "---------------"},
		s.eventLines(&models.Event{Type: models.EventTypeRoundStart, Round: 3}))
	s.Equal([]string{"", "Final round!", "---------------"},
		s.eventLines(&models.Event{Type: models.EventTypeFinalRound}))
}

func (s *MessagingServiceTestSuite) TestGameOver() {
	lines := s.eventLines(&models.Event{
		Type: models.EventTypeGameOver,
		Standings: []*models.Standing{
			{Rank: 1, Name: "Beta", Points: 3100},
			{Rank: 2, Name: "Alpha", Points: 600},
		},
	})

	s.Equal([]string{
		"",
		"Game over!",
		"---------------",
		"1. Beta: 3100 points",
		"2. Alpha: 600 points",
	}, lines)
}

func (s *MessagingServiceTestSuite) TestRecords() {
	lines := s.eventLines(&models.Event{
		Type: models.EventTypeRecords,
		Records: []*models.PlayerRecord{
			{Name: "Beta", GamesPlayed: 4, Wins: 2, BestScore: 3550},
		},
	})

	s.Equal("Beta: 4 games, 2 wins, best 3550", lines[len(lines)-1])
}

func (s *MessagingServiceTestSuite) TestRecentMatches() {
	lines := s.eventLines(&models.Event{
		Type: models.EventTypeRecentMatches,
		Matches: []*models.MatchResult{
			{
				ID:          "m2",
				Rounds:      7,
				Standings:   []*models.Standing{{Rank: 1, Name: "Alpha", Points: 3250}, {Rank: 2, Name: "Beta", Points: 900}},
				CompletedAt: time.Date(2025, 4, 19, 21, 5, 0, 0, time.UTC),
			},
			{ID: "empty"},
		},
	})

	s.Equal([]string{
		"",
		"Recent matches",
		"---------------",
		"2025-04-19 21:05: Alpha won with 3250 points in 7 rounds",
	}, lines)
}

func (s *MessagingServiceTestSuite) TestCustomBannerWidth() {
	svc, err := NewService(&ServiceConfig{BannerWidth: 3})
	s.Require().NoError(err)

	output, err := svc.GetEventMessage(s.ctx, &GetEventMessageInput{
		Event: &models.Event{Type: models.EventTypeFinalRound},
	})
	s.Require().NoError(err)
	s.Equal("---", output.Lines[2])
}

func (s *MessagingServiceTestSuite) TestUnknownEvent() {
	_, err := s.service.GetEventMessage(s.ctx, &GetEventMessageInput{Event: &models.Event{Type: "nope"}})
	s.ErrorIs(err, ErrUnknownEventType)

	_, err = s.service.GetEventMessage(s.ctx, &GetEventMessageInput{})
	s.ErrorIs(err, ErrNilInput)
}
