package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"portfolio_blog/blog"
	"portfolio_blog/generator"
)

var flagTopic string

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Draft one post from a topic and print it as JSON",
	RunE:  runCompose,
}

func init() {
	composeCmd.Flags().StringVar(&flagTopic, "topic", "", "topic to write about")
}

func runCompose(cmd *cobra.Command, args []string) error {
	topic := strings.TrimSpace(flagTopic)
	if topic == "" {
		return errors.New("--topic is required")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	llm, err := buildLLM(cfg.LLM)
	if err != nil {
		return err
	}
	composer, err := generator.NewComposer(llm, slog.Default())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.LLM.Timeout)
	defer cancel()
	res, err := composer.Generate(ctx, topic)
	if err != nil {
		return err
	}

	post := blog.NewFactory(cfg.Site.Author, cfg.Site.Locale).FromResult(res)
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(post)
}
