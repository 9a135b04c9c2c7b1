package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"portfolio_blog/auth"
	"portfolio_blog/blog"
	"portfolio_blog/generator"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"
)

// Generator drafts content from a topic.
type Generator interface {
	Generate(ctx context.Context, topic string) (generator.ContentResult, error)
}

type Options struct {
	Generator Generator
	Store     *blog.Store
	Factory   *blog.Factory
	Verifier  auth.Verifier
	Issuer    *auth.Issuer
	// GenerateTimeout bounds one model round trip.
	GenerateTimeout time.Duration
	Logger          *slog.Logger
}

type Server struct {
	gen      Generator
	store    *blog.Store
	factory  *blog.Factory
	verifier auth.Verifier
	issuer   *auth.Issuer
	timeout  time.Duration
	logger   *slog.Logger
	// generating admits one generation at a time.
	generating *semaphore.Weighted
}

func New(opts Options) (*Server, error) {
	if opts.Generator == nil {
		return nil, errors.New("generator required")
	}
	if opts.Store == nil || opts.Factory == nil {
		return nil, errors.New("post store and factory required")
	}
	if opts.Verifier == nil || opts.Issuer == nil {
		return nil, errors.New("admin verifier and token issuer required")
	}
	if opts.GenerateTimeout <= 0 {
		opts.GenerateTimeout = 60 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Server{
		gen:        opts.Generator,
		store:      opts.Store,
		factory:    opts.Factory,
		verifier:   opts.Verifier,
		issuer:     opts.Issuer,
		timeout:    opts.GenerateTimeout,
		logger:     opts.Logger,
		generating: semaphore.NewWeighted(1),
	}, nil
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.GET("/healthz", func(c *gin.Context) {
		success(c, gin.H{"posts": s.store.Len()}, "ok")
	})

	api := r.Group("/api")
	{
		api.GET("/posts", s.handleListPosts)
		api.GET("/posts/:id", s.handleGetPost)
		api.POST("/compose", s.handleCompose)
		api.POST("/admin/login", s.handleLogin)
	}

	admin := api.Group("/admin", s.adminAuth())
	{
		admin.GET("/posts", s.handleAdminListPosts)
		admin.POST("/posts", s.handleAdminCreatePost)
		admin.DELETE("/posts/:id", s.handleAdminDeletePost)
		admin.POST("/drafts", s.handleAdminDraft)
		admin.GET("/stats", s.handleAdminStats)
	}
	return r
}

// generateFailedMessage is the only thing a visitor learns about a failed generation.
const generateFailedMessage = "İçerik oluşturulurken bir hata oluştu. Lütfen tekrar deneyin."

// generate runs one guarded, time-bounded generation and writes the failure response itself.
func (s *Server) generate(c *gin.Context, topic string) (generator.ContentResult, bool) {
	if !s.generating.TryAcquire(1) {
		fail(c, http.StatusConflict, "a draft is already being generated")
		return generator.ContentResult{}, false
	}
	defer s.generating.Release(1)

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	res, err := s.gen.Generate(ctx, topic)
	if err != nil {
		s.logger.ErrorContext(ctx, "draft generation failed", "error", err)
		status := http.StatusBadGateway
		if errors.Is(err, generator.ErrConfiguration) {
			status = http.StatusServiceUnavailable
		}
		fail(c, status, generateFailedMessage)
		return generator.ContentResult{}, false
	}
	return res, true
}
