package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetPromptMessage returns the text shown before reading a line of input
	GetPromptMessage(ctx context.Context, input *GetPromptMessageInput) (*GetPromptMessageOutput, error)

	// GetEventMessage returns the lines printed for a turn or match event
	GetEventMessage(ctx context.Context, input *GetEventMessageInput) (*GetEventMessageOutput, error)
}
