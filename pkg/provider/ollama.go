package provider

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ollama/ollama/api"
	"github.com/steamseek/steamseek/pkg/errors"
)

/*
OllamaProvider is a provider for a local Ollama instance, useful when the
pipeline has to run without hosted API access.
*/
type OllamaProvider struct {
	client *api.Client
	Model  string
}

type OllamaProviderOption func(*OllamaProvider)

func NewOllamaProvider(options ...OllamaProviderOption) *OllamaProvider {
	prvdr := &OllamaProvider{}

	for _, option := range options {
		option(prvdr)
	}

	return prvdr
}

func (prvdr *OllamaProvider) Complete(
	ctx context.Context, prompt string,
) (string, error) {
	return prvdr.generate(ctx, prompt, nil)
}

func (prvdr *OllamaProvider) CompleteStructured(
	ctx context.Context, prompt string, schema map[string]any,
) (string, error) {
	format, err := json.Marshal(schema)

	if err != nil {
		return "", err
	}

	return prvdr.generate(ctx, prompt, format)
}

func (prvdr *OllamaProvider) generate(
	ctx context.Context, prompt string, format json.RawMessage,
) (string, error) {
	stream := false

	req := &api.ChatRequest{
		Model:  prvdr.Model,
		Stream: &stream,
		Format: format,
		Messages: []api.Message{
			{Role: "user", Content: prompt},
		},
	}

	var builder strings.Builder

	err := prvdr.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		builder.WriteString(resp.Message.Content)
		return nil
	})

	if err != nil {
		return "", err
	}

	if builder.Len() == 0 {
		return "", errors.ErrEmptyCompletion
	}

	return builder.String(), nil
}

func WithOllamaClient() OllamaProviderOption {
	return func(prvdr *OllamaProvider) {
		client, err := api.ClientFromEnvironment()

		if err != nil {
			log.Fatal("failed to create Ollama client", "error", err)
		}

		prvdr.client = client
	}
}

func WithOllamaModel(model string) OllamaProviderOption {
	return func(prvdr *OllamaProvider) {
		prvdr.Model = model
	}
}
