// Package inbox is a small HTTP service that accepts contact form submissions
// and stores them, so the portfolio has an endpoint to post to during development.
package inbox

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/portfolio/internal/storage"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
	shutdownTimeout  = 5 * time.Second
)

// Store is the persistence the server needs.
type Store interface {
	Save(ctx context.Context, sub storage.Submission) (storage.Submission, error)
	List(ctx context.Context, limit int) ([]storage.Submission, error)
	Get(ctx context.Context, id string) (storage.Submission, error)
	Count(ctx context.Context) (int64, error)
}

// contactBody mirrors the JSON the portfolio posts.
type contactBody struct {
	FirstName    string `json:"firstName" binding:"max=200"`
	LastName     string `json:"lastName" binding:"max=200"`
	EmailAddress string `json:"emailAddress" binding:"required,email"`
	EmailMessage string `json:"emailMessage" binding:"max=10000"`
}

// Server wires the HTTP routes to a Store.
type Server struct {
	store Store
	token string
	// allowOrigin is echoed in CORS headers when non-empty.
	allowOrigin string
}

// Option configures a Server.
type Option func(*Server)

// WithToken enables the authenticated listing endpoints.
func WithToken(token string) Option {
	return func(s *Server) { s.token = token }
}

// WithAllowOrigin sets the CORS origin allowed to post.
func WithAllowOrigin(origin string) Option {
	return func(s *Server) { s.allowOrigin = origin }
}

// New returns a Server backed by store.
func New(store Store, opts ...Option) *Server {
	s := &Server{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the gin engine.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	if s.allowOrigin != "" {
		r.Use(s.cors())
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/contact", s.postContact)
	r.OPTIONS("/contact", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	admin := r.Group("/contact", s.auth())
	admin.GET("", s.listContacts)
	admin.GET("/:id", s.getContact)
	return r
}

// ListenAndServe runs the server until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("inbox listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) postContact(c *gin.Context) {
	var body contactBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := s.store.Save(c.Request.Context(), storage.Submission{
		RequestID:    c.GetHeader("X-Request-Id"),
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		EmailAddress: body.EmailAddress,
		EmailMessage: body.EmailMessage,
	})
	if err != nil {
		logrus.WithError(err).Warn("saving submission failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store submission"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": sub.ID})
}

func (s *Server) listContacts(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxListLimit)
	}
	subs, err := s.store.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total, err := s.store.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if subs == nil {
		subs = []storage.Submission{}
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "submissions": subs})
}

func (s *Server) getContact(c *gin.Context) {
	sub, err := s.store.Get(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, sub)
	}
}

// auth guards the listing routes. Without a configured token they do not exist.
func (s *Server) auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.token == "" {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		got := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(got), []byte(s.token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *Server) cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", s.allowOrigin)
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-Id")
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Debug("inbox request")
	}
}
