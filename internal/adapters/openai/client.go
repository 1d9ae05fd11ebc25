package openai

import (
	"context"
	"fmt"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const (
	defaultModel       = goopenai.GPT3Dot5Turbo
	defaultMaxTokens   = 120
	defaultTemperature = 0.7
)

// Client wraps the OpenAI chat-completion API as a compose.Completer. Calls
// are rate-limited so a chatty caller cannot burn through the quota.
type Client struct {
	api         *goopenai.Client
	model       string
	maxTokens   int
	temperature float32
	limiter     *rate.Limiter
}

// NewClient creates a completion client. baseURL overrides the API host when
// non-empty (self-hosted gateways); the default OpenAI endpoint is used
// otherwise.
func NewClient(apiKey, baseURL string) *Client {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" && baseURL != "https://api.openai.com" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/") + "/v1"
	}

	return &Client{
		api:         goopenai.NewClientWithConfig(cfg),
		model:       defaultModel,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
		limiter:     rate.NewLimiter(rate.Limit(5), 10),
	}
}

// Complete sends one system+user exchange and returns the single reply
// string. Timeouts, quota errors and malformed responses all surface as
// errors for the composer to recover from.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("completion rate limit: %w", err)
	}

	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: system},
			{Role: goopenai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
