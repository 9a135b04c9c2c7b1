package cmd

import (
	"fmt"
	"net/http"

	"portfolio_blog/config"
	"portfolio_blog/generator"
)

func buildLLM(cfg config.LLMConfig) (generator.LLMClient, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI, config.ProviderGemini, config.ProviderDeepSeek:
		// Gemini and DeepSeek are both reached through their OpenAI-compatible endpoints.
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider:   cfg.Provider,
			Model:      cfg.Model,
			APIKey:     cfg.APIKey,
			APIKeyEnv:  cfg.APIKeyEnv,
			BaseURL:    cfg.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.Timeout},
		})
	case config.ProviderMock:
		return generator.MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.Provider)
	}
}
