package messaging

// MessagingError is a custom error type for message rendering errors
type MessagingError string

// Error implements the error interface
func (e MessagingError) Error() string {
	return string(e)
}

const (
	ErrNilInput          MessagingError = "input cannot be nil"
	ErrUnknownPromptType MessagingError = "unknown prompt type"
	ErrUnknownEventType  MessagingError = "unknown event type"
)
