package generator

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAILLM implements LLMClient using the official openai-go SDK (chat completions).
// Any OpenAI-compatible endpoint works through BaseURL (Gemini, DeepSeek).
type OpenAILLM struct {
	Model    string
	Opts     []option.RequestOption
	settings LLMSettings
}

func NewOpenAILLMFromConfig(cfg *LLMSettings) (*OpenAILLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	// One attempt per generation; the SDK would otherwise retry twice.
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}
	return &OpenAILLM{Model: cfg.Model, Opts: opts, settings: *cfg}, nil
}

func (o *OpenAILLM) Complete(ctx context.Context, prompt Prompt, format ResponseFormat) (string, error) {
	apiKey := o.settings.ResolveAPIKey()
	if apiKey == "" {
		return "", fmt.Errorf("%w: %s api key missing; set llm.api_key or %s", ErrConfiguration, o.providerName(), o.envName())
	}

	opts := make([]option.RequestOption, 0, len(o.Opts)+1)
	opts = append(opts, o.Opts...)
	opts = append(opts, option.WithAPIKey(apiKey))
	client := openai.NewClient(opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        format.Name,
					Description: openai.String(format.Description),
					Schema:      format.Schema,
					Strict:      openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: %s returned no choices", ErrEmptyResponse, o.providerName())
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAILLM) providerName() string {
	if o.settings.Provider == "" {
		return "openai"
	}
	return o.settings.Provider
}

func (o *OpenAILLM) envName() string {
	if o.settings.APIKeyEnv == "" {
		return "llm.api_key_env"
	}
	return o.settings.APIKeyEnv
}
