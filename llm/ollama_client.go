package llm

import (
	"context"
	"fmt"

	"github.com/ollama/ollama/api"
)

type OllamaClient struct {
	client *api.Client
	model  string
}

// NewOllamaClient builds a client from the OLLAMA_HOST environment, for
// running summarization against a local model.
func NewOllamaClient(model string) (LLMClient, error) {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("error creating ollama client: %w", err)
	}

	return &OllamaClient{
		client: client,
		model:  model,
	}, nil
}

func (c *OllamaClient) GetModel() string {
	return c.model
}

func (c *OllamaClient) GenerateInference(ctx context.Context, messages []Message, callback func(chunk string) error, opts ...LLMOption) error {
	settings := LLMSettings{
		model:       c.model,
		temperature: 0.7,
		maxTokens:   4096,
		stream:      false,
	}

	// Apply options
	for _, opt := range opts {
		opt(&settings)
	}

	apiMessages := make([]api.Message, 0, len(messages)+1)
	if settings.system != "" {
		apiMessages = append(apiMessages, api.Message{Role: "system", Content: settings.system})
	}
	for _, m := range messages {
		apiMessages = append(apiMessages, api.Message{Role: m.Role, Content: m.Content})
	}

	request := &api.ChatRequest{
		Model:    settings.model,
		Messages: apiMessages,
		Stream:   &settings.stream,
		Options: map[string]any{
			"temperature": settings.temperature,
			"num_predict": settings.maxTokens,
		},
	}

	return c.client.Chat(ctx, request, func(resp api.ChatResponse) error {
		if resp.Message.Content == "" {
			return nil
		}
		return callback(resp.Message.Content)
	})
}
