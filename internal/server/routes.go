package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/health/version", s.handleVersion)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth
	s.echo.POST("/auth/login", s.handleLogin)

	// Files
	s.echo.GET("/files/", s.handleListFiles)
	s.echo.GET("/files/download/:filename", s.handleDownloadFile)

	// Links
	s.echo.GET("/links/", s.handleLinks)

	// Portfolio
	s.echo.GET("/portfolio/", s.handlePortfolio)
	s.echo.GET("/portfolio/projects", s.handlePortfolioProjects)
	s.echo.GET("/portfolio/bio", s.handlePortfolioBio)

	// Contact relay
	s.echo.POST("/contact/", s.handleContact)

	// GitHub stats
	s.echo.GET("/github/stats", s.handleGitHubStats)

	// AI chat proxy
	s.echo.POST("/ai", s.handleAIChat)

	// Front-end bundle; explicit routes above take precedence and the
	// static handler rejects paths escaping the root.
	s.echo.Static("/", s.config.FrontendDir)
}
