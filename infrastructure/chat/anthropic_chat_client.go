package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicChatClient implements domain.ChatCompleter using the
// Anthropic messages API.
type AnthropicChatClient struct {
	client *anthropic.Client
}

// NewAnthropicChatClient creates a chat client backed by Anthropic.
func NewAnthropicChatClient(apiKey string) (*AnthropicChatClient, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic api key is not set")
	}
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)
	return &AnthropicChatClient{client: &client}, nil
}

// Complete sends the prompt as a single user message and concatenates
// the text blocks of the response.
func (c *AnthropicChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.ModelClaude3_7SonnetLatest,
		MaxTokens: int64(1024),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	var b strings.Builder
	for _, content := range message.Content {
		if content.Type == "text" {
			b.WriteString(content.Text)
		}
	}
	if b.Len() == 0 {
		return "", errors.New("chat completion returned no text content")
	}
	return b.String(), nil
}
