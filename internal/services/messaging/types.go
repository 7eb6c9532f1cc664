package messaging

import (
	"github.com/KirkDiggler/farkle/internal/models"
)

// PromptType represents the different questions asked of players
type PromptType string

const (
	// PromptTypePlayerCount asks how many players are in the match
	PromptTypePlayerCount PromptType = "player_count"

	// PromptTypePlayerName asks for one player's name
	PromptTypePlayerName PromptType = "player_name"

	// PromptTypeContinue asks whether to roll the unscored dice again
	PromptTypeContinue PromptType = "continue"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// BannerWidth is the length of the dashed rule under banners
	BannerWidth int
}

// GetPromptMessageInput contains parameters for getting a prompt
type GetPromptMessageInput struct {
	Type PromptType

	// PlayerNumber is the 1-based seat for player name prompts
	PlayerNumber int

	// DiceCount is the number of unscored dice for continue prompts
	DiceCount int
}

// GetPromptMessageOutput contains the prompt text, without a trailing newline
type GetPromptMessageOutput struct {
	Prompt string
}

// GetEventMessageInput contains parameters for rendering an event
type GetEventMessageInput struct {
	Event *models.Event
}

// GetEventMessageOutput contains the rendered lines, without newlines
type GetEventMessageOutput struct {
	Lines []string
}
