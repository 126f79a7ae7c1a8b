// Package config loads and validates the service configuration from the
// environment, with .env / .env.azure file fallbacks.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Chat providers for the demo /joke route.
const (
	ChatProviderOpenAI    = "openai"
	ChatProviderAnthropic = "anthropic"
)

// Config holds every setting the service reads, resolved once at startup
// and shared read-only across requests.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `envconfig:"ADDR" default:":8000"`

	// OpenAIAPIKey authenticates embedding (and by default chat)
	// requests. Required.
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`

	// EmbeddingModel is the OpenAI embedding model name.
	EmbeddingModel string `envconfig:"EMBEDDING_MODEL" default:"text-embedding-3-large"`

	// EmbeddingDim is the vector size of the embedding model.
	EmbeddingDim uint64 `envconfig:"EMBEDDING_DIM" default:"3072"`

	// ChatProvider selects the /joke backend: openai or anthropic.
	ChatProvider string `envconfig:"CHAT_PROVIDER" default:"openai"`

	// ChatModel is the OpenAI chat model used by the /joke route.
	ChatModel string `envconfig:"OPENAI_MODEL_NAME" default:"gpt-4o-mini"`

	// AnthropicAPIKey is required only when ChatProvider is anthropic.
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`

	// QdrantAddr is the host:port of the Qdrant gRPC endpoint.
	QdrantAddr string `envconfig:"QDRANT_ADDR" default:"localhost:6334"`

	// SearchTopK is the number of candidates a similarity query returns.
	SearchTopK int `envconfig:"SEARCH_TOP_K" default:"10"`

	// StaticDir is the directory served at / and /static/.
	StaticDir string `envconfig:"STATIC_DIR" default:"static"`
}

// Load reads .env (falling back to .env.azure), resolves the environment
// into a Config and validates it. Values already present in the
// environment win over file values.
func Load(logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	loadEnvFile(logger)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadEnvFile tries .env first and .env.azure second. Neither existing is
// not fatal by itself; Validate rejects the config when required values
// stay unset.
func loadEnvFile(logger *slog.Logger) {
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded environment from .env")
		return
	}
	if err := godotenv.Load(".env.azure"); err == nil {
		logger.Info("loaded environment from .env.azure")
		return
	}
	logger.Warn("neither .env nor .env.azure found, using process environment only")
}

// Validate checks the configuration once at startup.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is not set")
	}
	if c.EmbeddingModel == "" {
		return errors.New("EMBEDDING_MODEL must not be empty")
	}
	if c.EmbeddingDim == 0 {
		return errors.New("EMBEDDING_DIM must be positive")
	}
	switch c.ChatProvider {
	case ChatProviderOpenAI:
	case ChatProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return errors.New("ANTHROPIC_API_KEY is required when CHAT_PROVIDER is anthropic")
		}
	default:
		return fmt.Errorf("unknown CHAT_PROVIDER %q", c.ChatProvider)
	}
	if c.SearchTopK <= 0 {
		return errors.New("SEARCH_TOP_K must be positive")
	}
	return nil
}
