package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"portfolio_blog/auth"
	"portfolio_blog/blog"
	"portfolio_blog/generator"
	"portfolio_blog/server"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the blog HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "http listen address (overrides server_addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.ValidateServe(); err != nil {
		return err
	}

	llm, err := buildLLM(cfg.LLM)
	if err != nil {
		return err
	}
	logger := slog.Default()
	if !blog.SupportedLocale(cfg.Site.Locale) {
		logger.Warn("unsupported site.locale, dates fall back to Turkish", "locale", cfg.Site.Locale)
	}
	composer, err := generator.NewComposer(llm, logger.With("component", "composer"))
	if err != nil {
		return err
	}
	seed, err := blog.SeedPosts()
	if err != nil {
		return err
	}
	verifier, err := auth.NewBcryptVerifier(cfg.Admin.PasswordHash)
	if err != nil {
		return err
	}
	issuer, err := auth.NewIssuer(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Options{
		Generator:       composer,
		Store:           blog.NewStore(seed...),
		Factory:         blog.NewFactory(cfg.Site.Author, cfg.Site.Locale),
		Verifier:        verifier,
		Issuer:          issuer,
		GenerateTimeout: cfg.LLM.Timeout,
		Logger:          logger,
	})
	if err != nil {
		return err
	}

	listen := cfg.ServerAddr
	if flagAddr != "" {
		listen = flagAddr
	}
	if listen == "" {
		listen = ":8080"
	}
	httpSrv := &http.Server{
		Addr:              listen,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting web server",
			"addr", listen,
			"provider", cfg.LLM.Provider,
			"model", cfg.LLM.Model,
			"posts", len(seed))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
