package server

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	apperrors "github.com/cormacGreaney/greanium/internal/errors"
	"github.com/cormacGreaney/greanium/internal/metrics"
)

type chatRequest struct {
	Prompt string `json:"prompt"`
}

func (s *Server) handleAIChat(c echo.Context) error {
	var req chatRequest
	_ = c.Bind(&req)

	if req.Prompt == "" {
		return apperrors.ValidationError("No prompt provided")
	}

	if s.chat == nil {
		return apperrors.ExternalError("AI service is not configured", nil)
	}

	reply, err := s.chat.Reply(c.Request().Context(), req.Prompt)
	if err != nil {
		metrics.ChatRequestsTotal.WithLabelValues("error").Inc()
		slog.Error("Chat completion failed", "error", err)
		// The raw upstream error text is surfaced on purpose: the
		// front-end chat window renders it directly.
		if err := c.JSON(500, map[string]string{"error": err.Error()}); err != nil {
			return fmt.Errorf("failed to send JSON response: %w", err)
		}
		return nil
	}

	metrics.ChatRequestsTotal.WithLabelValues("ok").Inc()
	if err := c.JSON(200, map[string]string{"reply": reply}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
