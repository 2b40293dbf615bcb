package server

import (
	"fmt"

	"github.com/labstack/echo/v4"

	apperrors "github.com/cormacGreaney/greanium/internal/errors"
)

func (s *Server) handleListFiles(c echo.Context) error {
	files, err := s.store.ListFiles()
	if err != nil {
		return apperrors.InternalError("failed to list files", err)
	}

	if err := c.JSON(200, map[string]any{"files": files}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleDownloadFile(c echo.Context) error {
	name := c.Param("filename")

	path, err := s.store.FilePath(name)
	if err != nil {
		return apperrors.NotFoundError("File not found").WithField("filename", name)
	}

	return c.Attachment(path, name)
}
