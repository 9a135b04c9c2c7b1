package generator

import (
	"context"
	"errors"
	"log/slog"
	"time"
	"unicode/utf8"
)

// Composer drafts blog posts from a topic with a single model round trip.
type Composer struct {
	llm    LLMClient
	logger *slog.Logger
}

func NewComposer(llm LLMClient, logger *slog.Logger) (*Composer, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{llm: llm, logger: logger}, nil
}

// Generate returns a validated ContentResult or an error, never a partial result.
// Callers are expected to reject blank topics before calling.
func (c *Composer) Generate(ctx context.Context, topic string) (ContentResult, error) {
	start := time.Now()
	c.logger.DebugContext(ctx, "generation started", "topic_runes", utf8.RuneCountInString(topic))

	raw, err := c.llm.Complete(ctx, BuildPrompt(topic), BlogPostFormat)
	if err != nil {
		c.logger.ErrorContext(ctx, "generation failed", "stage", "complete", "error", err)
		return ContentResult{}, err
	}

	res, err := PostProcess(raw)
	if err != nil {
		c.logger.ErrorContext(ctx, "generation failed", "stage", "parse", "error", err)
		return ContentResult{}, err
	}

	c.logger.InfoContext(ctx, "generation done",
		"title", res.Title,
		"tags", len(res.Tags),
		"duration", time.Since(start))
	return res, nil
}
