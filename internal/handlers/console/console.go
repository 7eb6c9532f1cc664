package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/KirkDiggler/farkle/internal/models"
	"github.com/KirkDiggler/farkle/internal/services/messaging"
	"github.com/KirkDiggler/farkle/internal/services/turn"
)

// stopAnswer is the only response that ends a turn
const stopAnswer = "n"

// Config holds configuration for the console handler
type Config struct {
	In        io.Reader
	Out       io.Writer
	Messaging messaging.Service
}

// Console reads player input line by line and prints game messages. It
// serves as the prompter, decider and reporter for the game services.
type Console struct {
	in        *bufio.Reader
	out       io.Writer
	messaging messaging.Service

	// lines is fed by a single reader goroutine, started on first read
	lines       chan lineResult
	startReader sync.Once
}

// New creates a new console handler
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("input and output cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Console{
		in:        bufio.NewReader(cfg.In),
		out:       cfg.Out,
		messaging: cfg.Messaging,
		lines:     make(chan lineResult),
	}, nil
}

// AskPlayerCount prompts for the number of players
func (c *Console) AskPlayerCount(ctx context.Context) (string, error) {
	return c.ask(ctx, &messaging.GetPromptMessageInput{
		Type: messaging.PromptTypePlayerCount,
	})
}

// AskPlayerName prompts for the name of the player in the given seat
func (c *Console) AskPlayerName(ctx context.Context, number int) (string, error) {
	return c.ask(ctx, &messaging.GetPromptMessageInput{
		Type:         messaging.PromptTypePlayerName,
		PlayerNumber: number,
	})
}

// ShouldContinue asks whether to roll the unscored dice. Only "n" stops;
// any other answer, including an empty line, keeps rolling. Running out of
// input stops the turn.
func (c *Console) ShouldContinue(ctx context.Context, input *turn.DecisionInput) (bool, error) {
	answer, err := c.ask(ctx, &messaging.GetPromptMessageInput{
		Type:      messaging.PromptTypeContinue,
		DiceCount: input.DiceCount,
	})
	if errors.Is(err, io.EOF) {
		// finish the prompt line before the next output
		_, err = fmt.Fprintln(c.out)
		return false, err
	}
	if err != nil {
		return false, err
	}

	return strings.TrimSpace(answer) != stopAnswer, nil
}

// Report prints the lines for a turn or match event
func (c *Console) Report(ctx context.Context, event *models.Event) error {
	output, err := c.messaging.GetEventMessage(ctx, &messaging.GetEventMessageInput{
		Event: event,
	})
	if err != nil {
		return err
	}

	for _, line := range output.Lines {
		if _, err := fmt.Fprintln(c.out, line); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
	}
	return nil
}

// ask prints the prompt without a newline and reads one line of input
func (c *Console) ask(ctx context.Context, input *messaging.GetPromptMessageInput) (string, error) {
	prompt, err := c.messaging.GetPromptMessage(ctx, input)
	if err != nil {
		return "", err
	}

	if _, err := io.WriteString(c.out, prompt.Prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	return c.readLine(ctx)
}

type lineResult struct {
	line string
	err  error
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned as is; io.EOF is returned once input is
// exhausted. Cancelling ctx abandons the wait but not the line, which is
// handed to the next read.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.startReader.Do(func() {
		go c.readLines()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return result.line, result.err
	}
}

// readLines sends every input line to c.lines and closes it after the
// first read error
func (c *Console) readLines() {
	defer close(c.lines)

	for {
		line, err := c.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			c.lines <- lineResult{err: err}
			return
		}

		c.lines <- lineResult{line: strings.TrimRight(line, "\r\n")}
		if err != nil {
			return
		}
	}
}
