// Package config loads settings from an optional file, PORTFOLIO_* environment
// variables and defaults, in that order of precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "PORTFOLIO"

// Provider names accepted in llm.provider.
const (
	ProviderOpenAI   = "openai"
	ProviderGemini   = "gemini"
	ProviderDeepSeek = "deepseek"
	ProviderMock     = "mock"
)

// GeminiOpenAIBaseURL is Google's OpenAI-compatible endpoint for Gemini models.
const GeminiOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

type Config struct {
	ServerAddr string      `mapstructure:"server_addr"`
	Site       SiteConfig  `mapstructure:"site"`
	LLM        LLMConfig   `mapstructure:"llm"`
	Admin      AdminConfig `mapstructure:"admin"`
}

type SiteConfig struct {
	Author string `mapstructure:"author"`
	Locale string `mapstructure:"locale"`
}

type LLMConfig struct {
	Provider  string        `mapstructure:"provider"`
	Model     string        `mapstructure:"model"`
	APIKey    string        `mapstructure:"api_key"`
	APIKeyEnv string        `mapstructure:"api_key_env"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type AdminConfig struct {
	PasswordHash string        `mapstructure:"password_hash"`
	JWTSecret    string        `mapstructure:"jwt_secret"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
}

var defaults = map[string]any{
	"server_addr":         ":8080",
	"site.author":         "Rıdvan Haliloğlu",
	"site.locale":         "tr",
	"llm.provider":        ProviderGemini,
	"llm.model":           "gemini-2.5-flash",
	"llm.api_key":         "",
	"llm.api_key_env":     "",
	"llm.base_url":        "",
	"llm.timeout":         "60s",
	"admin.password_hash": "",
	"admin.jwt_secret":    "",
	"admin.token_ttl":     "12h",
}

// Load reads path (yaml, json or toml, by extension) when given, then applies env overrides.
func Load(path string) (Config, error) {
	vp := viper.New()
	for k, v := range defaults {
		vp.SetDefault(k, v)
	}
	vp.SetEnvPrefix(envPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if path != "" {
		vp.SetConfigFile(path)
		if err := vp.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := vp.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyProviderDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyProviderDefaults() {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	if c.LLM.APIKeyEnv == "" {
		c.LLM.APIKeyEnv = DefaultKeyEnv(c.LLM.Provider)
	}
	if c.LLM.Provider == ProviderGemini && c.LLM.BaseURL == "" {
		c.LLM.BaseURL = GeminiOpenAIBaseURL
	}
}

// DefaultKeyEnv names the environment variable the API key is read from
// when llm.api_key_env is not set.
func DefaultKeyEnv(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderGemini:
		return "GEMINI_API_KEY"
	case ProviderDeepSeek:
		return "DEEPSEEK_API_KEY"
	default:
		return ""
	}
}

// Validate checks settings every command needs.
func (c Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderGemini, ProviderMock:
	case ProviderDeepSeek:
		// DeepSeek only exposes an OpenAI-compatible endpoint; it has no SDK default.
		if c.LLM.BaseURL == "" {
			return errors.New("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
	case "":
		return errors.New("llm config missing; please set llm.provider")
	default:
		return fmt.Errorf("llm provider %s not supported", c.LLM.Provider)
	}
	if c.LLM.Provider != ProviderMock && c.LLM.Model == "" {
		return errors.New("llm.model is required")
	}
	if c.LLM.Timeout <= 0 {
		return errors.New("llm.timeout must be positive")
	}
	if c.Site.Author == "" {
		return errors.New("site.author is required")
	}
	return nil
}

// ValidateServe additionally requires the admin credentials the HTTP API needs.
func (c Config) ValidateServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Admin.PasswordHash == "" {
		return errors.New("admin.password_hash is required; generate one with `portfolio hash-password`")
	}
	if len(c.Admin.JWTSecret) < 16 {
		return errors.New("admin.jwt_secret must be at least 16 characters")
	}
	if c.Admin.TokenTTL <= 0 {
		return errors.New("admin.token_ttl must be positive")
	}
	return nil
}
