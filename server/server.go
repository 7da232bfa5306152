// Package server exposes the lexit service over HTTP. Handlers stay
// thin: they bind parameters, call one Service operation and map
// sentinel errors onto status codes.
package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poiesic/lexit"
)

// ErrServiceRequired is returned when a service is not provided.
var ErrServiceRequired = errors.New("service required")

// Server serves the string store over HTTP.
type Server struct {
	service *lexit.Service
	engine  *gin.Engine
	logger  *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// New creates a new server around service.
func New(service *lexit.Service, opts ...Option) (*Server, error) {
	if service == nil {
		return nil, ErrServiceRequired
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		service: service,
		engine:  engine,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.registerRoutes()
	return s, nil
}

// Handler returns the server as an http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr and serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("listening", "addr", addr)
	return s.engine.Run(addr)
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.root)
	s.engine.GET("/health", s.health)
	s.engine.POST("/strings", s.createString)
	s.engine.GET("/strings", s.listStrings)
	s.engine.GET("/strings/filter-by-natural-language", s.listByPhrase)
	s.engine.GET("/strings/:value", s.getString)
	s.engine.DELETE("/strings/:value", s.deleteString)
}
