package generator

import (
	"context"
	"net/http"
	"os"
)

// LLMClient abstracts the model provider so it can be swapped or mocked.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt, format ResponseFormat) (string, error)
}

// LLMSettings is the provider configuration handed to a concrete client.
type LLMSettings struct {
	Provider string
	Model    string
	// APIKey wins over APIKeyEnv when both are set.
	APIKey    string
	APIKeyEnv string
	BaseURL   string
	// HTTPClient is optional; tests point it at a stub transport.
	HTTPClient *http.Client
}

// ResolveAPIKey reads the key at call time, so a key exported after startup is picked up.
func (s *LLMSettings) ResolveAPIKey() string {
	if s.APIKey != "" {
		return s.APIKey
	}
	if s.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(s.APIKeyEnv)
}
