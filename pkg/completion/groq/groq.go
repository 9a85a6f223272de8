// Package groq implements the completion.Completer interface for Groq's
// OpenAI-compatible chat completions API.
package groq

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"jqlgen/pkg/completion"
	"jqlgen/pkg/convo"
)

// DefaultBaseURL is the base URL for the Groq API.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Client sends chat completions to the Groq API.
type Client struct {
	completion.Adapter
}

// New creates a Client with the given API key and HTTP client.
// A nil client falls back to a default client.
func New(apiKey string, client *http.Client) *Client {
	return &Client{
		Adapter: completion.New(DefaultBaseURL, completion.Auth{Key: apiKey}, client),
	}
}

// Complete sends a conversation to the Groq chat completions endpoint and
// returns the trimmed text of the first choice. Exactly one outbound request
// is made per call; there is no retry and no caching.
func (g *Client) Complete(ctx context.Context, c *convo.Conversation) (string, error) {
	req := chatRequest{
		Model:       g.Name,
		Messages:    convertMessages(c),
		Temperature: g.Temperature,
		MaxTokens:   g.MaxTokens,
	}

	var resp chatResponse
	if err := g.PostJSON(ctx, "/chat/completions", req, &resp); err != nil {
		return "", fmt.Errorf("groq: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq: empty response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// API request/response types.

type chatRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	Temperature float64      `json:"temperature,omitempty"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string   `json:"id"`
	Choices []choice `json:"choices"`
}

type choice struct {
	Message      apiMessage `json:"message"`
	FinishReason string     `json:"finish_reason"`
}

// convertMessages transforms a Conversation into the API message format.
func convertMessages(c *convo.Conversation) []apiMessage {
	msgs := make([]apiMessage, 0, c.Len())
	for _, m := range c.Messages() {
		msgs = append(msgs, apiMessage{
			Role:    m.Role.String(),
			Content: m.Text,
		})
	}
	return msgs
}

// verifyCompleter ensures Client satisfies the Completer interface at compile time.
var _ completion.Completer = (*Client)(nil)
