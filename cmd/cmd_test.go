package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_blog/auth"
	"portfolio_blog/blog"
	"portfolio_blog/config"
	"portfolio_blog/generator"
)

func TestBuildLLM(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LLMConfig
		wantErr bool
		mock    bool
	}{
		{name: "gemini", cfg: config.LLMConfig{Provider: "gemini", Model: "gemini-2.5-flash", BaseURL: config.GeminiOpenAIBaseURL, Timeout: time.Minute}},
		{name: "openai", cfg: config.LLMConfig{Provider: "openai", Model: "gpt-4o-mini", Timeout: time.Minute}},
		{name: "deepseek", cfg: config.LLMConfig{Provider: "deepseek", Model: "deepseek-chat", BaseURL: "https://api.deepseek.com/v1", Timeout: time.Minute}},
		{name: "mock", cfg: config.LLMConfig{Provider: "mock"}, mock: true},
		{name: "missing model", cfg: config.LLMConfig{Provider: "openai"}, wantErr: true},
		{name: "unknown", cfg: config.LLMConfig{Provider: "claude", Model: "x"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm, err := buildLLM(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.mock {
				assert.IsType(t, generator.MockLLM{}, llm)
			} else {
				assert.IsType(t, &generator.OpenAILLM{}, llm)
			}
		})
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		flagTopic = ""
		flagConfig = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestComposeCommand_WithMockProvider(t *testing.T) {
	t.Setenv("PORTFOLIO_LLM_PROVIDER", "mock")

	out, err := run(t, "", "compose", "--topic", "Yeşil Gümrük")
	require.NoError(t, err)

	var post blog.Post
	require.NoError(t, json.Unmarshal([]byte(out), &post))
	assert.Equal(t, "Yeşil Gümrük: Sahadan Notlar", post.Title)
	assert.Equal(t, "Rıdvan Haliloğlu", post.Author)
	assert.Len(t, post.Tags, 3)
	assert.NotEmpty(t, post.ID)
}

func TestComposeCommand_BlankTopic(t *testing.T) {
	t.Setenv("PORTFOLIO_LLM_PROVIDER", "mock")

	_, err := run(t, "", "compose", "--topic", "   ")
	assert.ErrorContains(t, err, "--topic is required")
}

func TestComposeCommand_MissingKey(t *testing.T) {
	t.Setenv("PORTFOLIO_LLM_PROVIDER", "openai")
	t.Setenv("PORTFOLIO_LLM_BASE_URL", "http://127.0.0.1:1/v1/")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := run(t, "", "compose", "--topic", "x")
	assert.ErrorIs(t, err, generator.ErrConfiguration)
}

func TestHashPasswordCommand(t *testing.T) {
	out, err := run(t, "s3cret\n", "hash-password")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.True(t, auth.CheckPasswordHash("s3cret", hash))
}

func TestVersionCommand(t *testing.T) {
	SetVersionInfo("1.2.3", "abc", "today")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "portfolio 1.2.3 (commit: abc, built: today)\n", out)
}
