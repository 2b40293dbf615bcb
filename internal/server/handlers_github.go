package server

import (
	"fmt"

	"github.com/labstack/echo/v4"

	apperrors "github.com/cormacGreaney/greanium/internal/errors"
)

// handleGitHubStats returns the aggregated stats view. Partial upstream
// failures below the profile fetch are absorbed by the client; only a
// failed profile fetch (or a panic-level failure) surfaces here.
func (s *Server) handleGitHubStats(c echo.Context) error {
	stats, err := s.stats.Stats(c.Request().Context())
	if err != nil {
		return apperrors.ExternalError("Failed to fetch GitHub data", err).
			WithField("username", s.config.GitHubUsername)
	}

	if err := c.JSON(200, stats); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
