package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/cormacGreaney/greanium/internal/content"
	apperrors "github.com/cormacGreaney/greanium/internal/errors"
)

func (s *Server) handlePortfolio(c echo.Context) error {
	doc, err := s.store.Portfolio()
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			// The shipped front-end expects a 200 with an embedded error
			// field here, not an HTTP error.
			if err := c.JSON(200, map[string]string{"error": "Portfolio data not found"}); err != nil {
				return fmt.Errorf("failed to send JSON response: %w", err)
			}
			return nil
		}
		return apperrors.InternalError("failed to read portfolio", err)
	}

	if err := c.JSONBlob(200, doc); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handlePortfolioProjects(c echo.Context) error {
	projects, err := s.store.PortfolioProjects()
	if err != nil {
		return apperrors.InternalError("failed to read portfolio", err)
	}

	if err := c.JSON(200, map[string]json.RawMessage{"projects": projects}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handlePortfolioBio(c echo.Context) error {
	bio, err := s.store.PortfolioBio()
	if err != nil {
		return apperrors.InternalError("failed to read portfolio", err)
	}

	if err := c.JSONBlob(200, bio); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
