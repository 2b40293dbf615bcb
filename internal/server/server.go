package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/cormacGreaney/greanium/internal/config"
	"github.com/cormacGreaney/greanium/internal/content"
	apperrors "github.com/cormacGreaney/greanium/internal/errors"
	"github.com/cormacGreaney/greanium/internal/github"
)

// mailSender relays validated contact submissions.
type mailSender interface {
	Configured() bool
	Send(ctx context.Context, name, email, message string) error
}

// statsProvider aggregates the GitHub stats view.
type statsProvider interface {
	Stats(ctx context.Context) (*github.Stats, error)
}

// chatService forwards prompts to the chat-completion upstream
// (nil if no API key is configured).
type chatService interface {
	Reply(ctx context.Context, prompt string) (string, error)
}

// contentStore reads the flat data files behind the files, links, and
// portfolio route groups.
type contentStore interface {
	ListFiles() ([]string, error)
	FilePath(name string) (string, error)
	Links() (json.RawMessage, error)
	Portfolio() (json.RawMessage, error)
	PortfolioProjects() (json.RawMessage, error)
	PortfolioBio() (json.RawMessage, error)
}

var _ contentStore = (*content.Store)(nil)

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	store     contentStore
	mailer    mailSender
	stats     statsProvider
	chat      chatService
	clock     clockwork.Clock
	startTime time.Time
}

func NewServer(cfg *config.Config, store contentStore, mailer mailSender, stats statsProvider, chat chatService, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		store:     store,
		mailer:    mailer,
		stats:     stats,
		chat:      chat,
		clock:     clock,
		startTime: clock.Now(),
	}

	// Register routes
	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
