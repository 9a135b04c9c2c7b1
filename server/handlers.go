package server

import (
	"net/http"
	"strings"
	"time"

	"portfolio_blog/blog"
	"portfolio_blog/generator"

	"github.com/gin-gonic/gin"
)

type loginReq struct {
	Password string `json:"password" binding:"required"`
}

type loginResp struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type postDetail struct {
	blog.Post
	ContentHTML string `json:"contentHtml"`
}

type statsResp struct {
	TotalPosts int            `json:"totalPosts"`
	TotalTags  int            `json:"totalTags"`
	TagCounts  map[string]int `json:"tagCounts"`
	Latest     []blog.Post    `json:"latest"`
}

// bindTopic reads a non-blank topic or answers 400.
func bindTopic(c *gin.Context) (string, bool) {
	var req generator.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "topic is required")
		return "", false
	}
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		fail(c, http.StatusBadRequest, "topic is required")
		return "", false
	}
	return topic, true
}

// --- Public ---

func (s *Server) handleListPosts(c *gin.Context) {
	success(c, s.store.List(), "ok")
}

func (s *Server) handleGetPost(c *gin.Context) {
	post, ok := s.store.Get(c.Param("id"))
	if !ok {
		fail(c, http.StatusNotFound, "post not found")
		return
	}
	html, err := blog.RenderHTML(post.Content)
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), "render post", "id", post.ID, "error", err)
		fail(c, http.StatusInternalServerError, "could not render post")
		return
	}
	success(c, postDetail{Post: post, ContentHTML: html}, "ok")
}

// handleCompose drafts a post with the model and publishes it right away.
func (s *Server) handleCompose(c *gin.Context) {
	topic, ok := bindTopic(c)
	if !ok {
		return
	}
	res, ok := s.generate(c, topic)
	if !ok {
		return
	}
	post := s.factory.FromResult(res)
	s.store.Prepend(post)
	s.logger.InfoContext(c.Request.Context(), "post composed", "id", post.ID, "title", post.Title)
	successWithStatus(c, http.StatusCreated, post, "created")
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "password is required")
		return
	}
	if !s.verifier.Verify(req.Password) {
		s.logger.WarnContext(c.Request.Context(), "admin login rejected", "client_ip", c.ClientIP())
		fail(c, http.StatusUnauthorized, "wrong password")
		return
	}
	token, expires, err := s.issuer.Issue()
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), "issue admin token", "error", err)
		fail(c, http.StatusInternalServerError, "could not issue token")
		return
	}
	success(c, loginResp{Token: token, ExpiresAt: expires}, "ok")
}

// --- Admin ---

func (s *Server) handleAdminListPosts(c *gin.Context) {
	success(c, s.store.Search(c.Query("q")), "ok")
}

func (s *Server) handleAdminCreatePost(c *gin.Context) {
	var draft blog.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		fail(c, http.StatusBadRequest, "invalid post payload")
		return
	}
	post, err := s.factory.FromDraft(draft)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	s.store.Prepend(post)
	s.logger.InfoContext(c.Request.Context(), "post published", "id", post.ID, "title", post.Title)
	successWithStatus(c, http.StatusCreated, post, "created")
}

func (s *Server) handleAdminDeletePost(c *gin.Context) {
	id := c.Param("id")
	if !s.store.Remove(id) {
		fail(c, http.StatusNotFound, "post not found")
		return
	}
	s.logger.InfoContext(c.Request.Context(), "post deleted", "id", id)
	success(c, nil, "deleted")
}

// handleAdminDraft fills the admin form; nothing is stored.
func (s *Server) handleAdminDraft(c *gin.Context) {
	topic, ok := bindTopic(c)
	if !ok {
		return
	}
	res, ok := s.generate(c, topic)
	if !ok {
		return
	}
	success(c, res, "ok")
}

func (s *Server) handleAdminStats(c *gin.Context) {
	counts := s.store.TagCounts()
	success(c, statsResp{
		TotalPosts: s.store.Len(),
		TotalTags:  len(counts),
		TagCounts:  counts,
		Latest:     s.store.Latest(3),
	}, "ok")
}

var _ Generator = (*generator.Composer)(nil)
