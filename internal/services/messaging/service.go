package messaging

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/farkle/internal/models"
)

const (
	defaultBannerWidth = 15

	recentMatchTimeFormat = "2006-01-02 15:04"
)

// service implements the Service interface
type service struct {
	bannerRule string
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	width := defaultBannerWidth
	if config != nil && config.BannerWidth > 0 {
		width = config.BannerWidth
	}

	return &service{
		bannerRule: strings.Repeat("-", width),
	}, nil
}

// GetPromptMessage returns the text shown before reading a line of input
func (s *service) GetPromptMessage(ctx context.Context, input *GetPromptMessageInput) (*GetPromptMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var prompt string
	switch input.Type {
	case PromptTypePlayerCount:
		prompt = "Enter number of players: "
	case PromptTypePlayerName:
		prompt = fmt.Sprintf("Enter player %d name: ", input.PlayerNumber)
	case PromptTypeContinue:
		prompt = fmt.Sprintf("Roll again with non-scored %d dice? (y/n): ", input.DiceCount)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPromptType, input.Type)
	}

	return &GetPromptMessageOutput{
		Prompt: prompt,
	}, nil
}

// GetEventMessage returns the lines printed for a turn or match event
func (s *service) GetEventMessage(ctx context.Context, input *GetEventMessageInput) (*GetEventMessageOutput, error) {
	if input == nil || input.Event == nil {
		return nil, ErrNilInput
	}

	event := input.Event
	var lines []string

	switch event.Type {
	case models.EventTypeTurnStart:
		// blank line between turns
		lines = []string{""}
	case models.EventTypeRoll:
		lines = s.rollLines(event)
	case models.EventTypeBust:
		lines = []string{"Oops! No points this round."}
	case models.EventTypeHotDice:
		lines = []string{fmt.Sprintf("Hot dice! All dice scored, rolling %d fresh dice.", event.DiceCount)}
	case models.EventTypeRoundStart:
		lines = s.banner(fmt.Sprintf("Round %d:", event.Round))
	case models.EventTypeFinalRound:
		lines = s.banner("Final round!")
	case models.EventTypeEntryDenied:
		lines = []string{"Not enough points to get into the game."}
	case models.EventTypeGameOver:
		lines = s.standingsLines(event.Standings)
	case models.EventTypeRecords:
		lines = s.recordLines(event.Records)
	case models.EventTypeRecentMatches:
		lines = s.recentMatchLines(event.Matches)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEventType, event.Type)
	}

	return &GetEventMessageOutput{
		Lines: lines,
	}, nil
}

func (s *service) rollLines(event *models.Event) []string {
	var faces []int
	points := 0
	if event.Roll != nil {
		faces = event.Roll.Faces
		points = event.Roll.Points
	}

	return []string{
		fmt.Sprintf("\"%s\" rolls: %s", event.PlayerName, formatFaces(faces)),
		fmt.Sprintf("Roll points: %d", points),
		fmt.Sprintf("Current round points: %d", event.RoundPoints),
		fmt.Sprintf("Total points: %d", event.TotalPoints),
	}
}

// banner is preceded by a blank line and followed by the dashed rule
func (s *service) banner(title string) []string {
	return []string{"", title, s.bannerRule}
}

func (s *service) standingsLines(standings []*models.Standing) []string {
	lines := s.banner("Game over!")
	for _, standing := range standings {
		lines = append(lines, fmt.Sprintf("%d. %s: %d points", standing.Rank, standing.Name, standing.Points))
	}
	return lines
}

func (s *service) recordLines(records []*models.PlayerRecord) []string {
	lines := s.banner("All-time records")
	for _, record := range records {
		lines = append(lines, fmt.Sprintf("%s: %d games, %d wins, best %d",
			record.Name, record.GamesPlayed, record.Wins, record.BestScore))
	}
	return lines
}

func (s *service) recentMatchLines(matches []*models.MatchResult) []string {
	lines := s.banner("Recent matches")
	for _, match := range matches {
		winner := match.Winner()
		if winner == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s won with %d points in %d rounds",
			match.CompletedAt.Format(recentMatchTimeFormat), winner.Name, winner.Points, match.Rounds))
	}
	return lines
}

// formatFaces renders faces as [1, 1, 1, 6, 3]
func formatFaces(faces []int) string {
	parts := make([]string, len(faces))
	for i, face := range faces {
		parts[i] = strconv.Itoa(face)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
