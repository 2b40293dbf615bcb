package server

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	apperrors "github.com/cormacGreaney/greanium/internal/errors"
	"github.com/cormacGreaney/greanium/internal/metrics"
)

const maxMessageLength = 5000

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (s *Server) handleContact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("rejected").Inc()
		return apperrors.ValidationError("All fields are required")
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	if err := validateSubmission(name, email, message); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	if !s.mailer.Configured() {
		slog.Info("Contact form submission (mail not configured)",
			"name", name, "email", email, "message", message)
		metrics.ContactSubmissionsTotal.WithLabelValues("logged_only").Inc()
		if err := c.JSON(200, map[string]any{
			"success": true,
			"message": "Message received (not configured for email)",
		}); err != nil {
			return fmt.Errorf("failed to send JSON response: %w", err)
		}
		return nil
	}

	if err := s.mailer.Send(c.Request().Context(), name, email, message); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("failed").Inc()
		// The transport error is logged by the error middleware; the
		// caller only ever sees the generic message.
		return apperrors.ExternalError("Failed to send message. Please try again later.", err)
	}

	metrics.ContactSubmissionsTotal.WithLabelValues("sent").Inc()
	if err := c.JSON(200, map[string]any{
		"success": true,
		"message": "Message sent successfully",
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// validateSubmission applies the checks in their documented order: all
// fields present, email contains "@", message within the size limit.
func validateSubmission(name, email, message string) error {
	if name == "" || email == "" || message == "" {
		return apperrors.ValidationError("All fields are required")
	}
	if !strings.Contains(email, "@") {
		return apperrors.ValidationError("Invalid email address")
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return apperrors.ValidationError("Message too long")
	}
	return nil
}
