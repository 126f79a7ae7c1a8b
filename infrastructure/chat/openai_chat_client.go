package chat

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIChatClient implements domain.ChatCompleter using the OpenAI chat
// completions API.
type OpenAIChatClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIChatClient creates a chat client for the given model.
func NewOpenAIChatClient(apiKey, model string) (*OpenAIChatClient, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is not set")
	}
	return &OpenAIChatClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// Complete sends the prompt as a single user message and returns the
// first choice.
func (c *OpenAIChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
