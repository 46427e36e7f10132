package provider

import (
	"fmt"

	"github.com/spf13/viper"
)

/*
FromConfig builds the configured completion provider. The provider name and
per-provider model live in the config file; credentials come from the
environment.
*/
func FromConfig(v *viper.Viper) (Interface, error) {
	switch name := v.GetString("provider.name"); name {
	case "google", "":
		return NewGoogleProvider(
			WithGoogleClient(),
			WithGoogleModel(v.GetString("provider.google.model")),
		), nil
	case "openai":
		return NewOpenAIProvider(
			WithOpenAIClient(),
			WithOpenAIModel(v.GetString("provider.openai.model")),
		), nil
	case "ollama":
		return NewOllamaProvider(
			WithOllamaClient(),
			WithOllamaModel(v.GetString("provider.ollama.model")),
		), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
}

/*
EmbedderFromConfig builds the configured query embedder.
*/
func EmbedderFromConfig(v *viper.Viper) (Embedder, error) {
	switch name := v.GetString("embedder.name"); name {
	case "clip", "":
		return NewClipEmbedder(v.GetString("embedder.clip.endpoint")), nil
	case "openai":
		return NewOpenAIEmbedder(
			WithOpenAIEmbedderClient(NewOpenAIProvider(WithOpenAIClient()).client),
			WithOpenAIEmbedderModel(v.GetString("embedder.openai.model")),
		), nil
	default:
		return nil, fmt.Errorf("unknown embedder %q", name)
	}
}
