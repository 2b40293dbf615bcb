package server

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/cormacGreaney/greanium/internal/version"
)

func (s *Server) handleLiveness(c echo.Context) error {
	uptime := s.clock.Since(s.startTime).Seconds()
	return c.JSON(200, map[string]any{
		"status": "ok",
		"uptime": uptime,
	})
}

// handleReadiness verifies the front-end bundle is servable. The data
// files are deliberately not checked: their absence is a supported
// degraded state, not an outage.
func (s *Server) handleReadiness(c echo.Context) error {
	if err := s.checkFrontend(); err != nil {
		return c.JSON(503, map[string]any{
			"status":       "unhealthy",
			"failed_check": "frontend",
			"error":        err.Error(),
		})
	}

	return c.JSON(200, map[string]string{"status": "ready"})
}

func (s *Server) checkFrontend() error {
	index := filepath.Join(s.config.FrontendDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		return fmt.Errorf("root document not readable: %w", err)
	}
	return nil
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(200, version.Get())
}
