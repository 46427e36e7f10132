package provider

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/steamseek/steamseek/pkg/errors"
	"google.golang.org/genai"
)

/*
GoogleProvider is a provider for the Google Gemini API. It is the default
provider; the catalog descriptions were enhanced with Gemini, so staying on
the same model family keeps the filter prompts calibrated.
*/
type GoogleProvider struct {
	client *genai.Client
	Model  string
}

type GoogleProviderOption func(*GoogleProvider)

func NewGoogleProvider(options ...GoogleProviderOption) *GoogleProvider {
	prvdr := &GoogleProvider{}

	for _, option := range options {
		option(prvdr)
	}

	return prvdr
}

func (prvdr *GoogleProvider) Complete(
	ctx context.Context, prompt string,
) (string, error) {
	return prvdr.generate(ctx, prompt, nil)
}

func (prvdr *GoogleProvider) CompleteStructured(
	ctx context.Context, prompt string, schema map[string]any,
) (string, error) {
	return prvdr.generate(ctx, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenaiSchema(schema),
	})
}

func (prvdr *GoogleProvider) generate(
	ctx context.Context, prompt string, config *genai.GenerateContentConfig,
) (string, error) {
	resp, err := prvdr.client.Models.GenerateContent(
		ctx, prvdr.Model, genai.Text(prompt), config,
	)

	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.ErrEmptyCompletion
	}

	var builder strings.Builder

	for _, part := range resp.Candidates[0].Content.Parts {
		builder.WriteString(part.Text)
	}

	if builder.Len() == 0 {
		return "", errors.ErrEmptyCompletion
	}

	return builder.String(), nil
}

/*
toGenaiSchema maps the subset of JSON schema the pipeline uses (arrays of
flat objects with string/boolean/number fields) onto genai's typed schema.
*/
func toGenaiSchema(schema map[string]any) *genai.Schema {
	if schema == nil {
		return nil
	}

	out := &genai.Schema{}

	if desc, ok := schema["description"].(string); ok {
		out.Description = desc
	}

	switch schema["type"] {
	case "array":
		out.Type = genai.TypeArray

		if items, ok := schema["items"].(map[string]any); ok {
			out.Items = toGenaiSchema(items)
		}
	case "object":
		out.Type = genai.TypeObject
		out.Properties = map[string]*genai.Schema{}

		if props, ok := schema["properties"].(map[string]any); ok {
			for name, prop := range props {
				if propMap, ok := prop.(map[string]any); ok {
					out.Properties[name] = toGenaiSchema(propMap)
				}
			}
		}

		if required, ok := schema["required"].([]string); ok {
			out.Required = required
		}
	case "boolean":
		out.Type = genai.TypeBoolean
	case "number":
		out.Type = genai.TypeNumber
	case "integer":
		out.Type = genai.TypeInteger
	default:
		out.Type = genai.TypeString
	}

	return out
}

func WithGoogleClient() GoogleProviderOption {
	return func(prvdr *GoogleProvider) {
		apiKey := os.Getenv("GOOGLE_API_KEY")

		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}

		client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})

		if err != nil {
			log.Fatal("failed to create Google GenAI client", "error", err)
		}

		prvdr.client = client
	}
}

func WithGoogleModel(model string) GoogleProviderOption {
	return func(prvdr *GoogleProvider) {
		prvdr.Model = model
	}
}
