// Package assistant sends manager questions about the attendance
// ledger to the Gemini API. The full ledger is embedded in the prompt
// as CSV; the reply is free text. A failed or quota-limited call is
// surfaced as a normal error for the caller to display, never a crash.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"
)

// ErrService wraps every assistant failure: missing key, transport or
// quota errors, and an open circuit breaker.
var ErrService = errors.New("assistant unavailable")

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Client asks the Gemini API questions over the ledger. Calls go
// through a circuit breaker so a failing API degrades to fast
// user-visible errors instead of a timeout on every question.
type Client struct {
	genai *genai.Client
	model string
	cb    *gobreaker.CircuitBreaker
}

// New builds a Client for the given API key and model name.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: no API key configured", ErrService)
	}
	if model == "" {
		model = DefaultModel
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("%w: creating client: %v", ErrService, err)
	}

	settings := gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}

	return &Client{
		genai: gc,
		model: model,
		cb:    gobreaker.NewCircuitBreaker(settings),
	}, nil
}

// BuildPrompt embeds the ledger CSV ahead of the question, the prompt
// shape the management screen's chat always used.
func BuildPrompt(ledgerCSV, question string) string {
	return fmt.Sprintf("Attendance data:\n%s\nQuestion: %s", ledgerCSV, question)
}

// Ask sends the ledger and question to the model and returns its
// reply.
func (c *Client) Ask(ctx context.Context, ledgerCSV, question string) (string, error) {
	prompt := BuildPrompt(ledgerCSV, question)

	res, err := c.cb.Execute(func() (any, error) {
		contents := []*genai.Content{
			genai.NewContentFromText(prompt, genai.RoleUser),
		}
		return c.genai.Models.GenerateContent(ctx, c.model, contents, nil)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			return "", fmt.Errorf("%w: too many recent failures, try again shortly", ErrService)
		}
		return "", fmt.Errorf("%w: %v", ErrService, err)
	}

	text := res.(*genai.GenerateContentResponse).Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response from model", ErrService)
	}
	return text, nil
}
