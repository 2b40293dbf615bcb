package server

import (
	"fmt"

	"github.com/labstack/echo/v4"

	apperrors "github.com/cormacGreaney/greanium/internal/errors"
)

// handleLinks returns the bookmark file verbatim; the system defines no
// schema for its entries.
func (s *Server) handleLinks(c echo.Context) error {
	links, err := s.store.Links()
	if err != nil {
		return apperrors.InternalError("failed to read links", err)
	}

	if err := c.JSONBlob(200, links); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
