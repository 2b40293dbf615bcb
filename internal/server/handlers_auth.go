package server

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleLogin compares the submitted credentials against the configured
// pair. No session or token is issued; the check is stateless.
func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	// A malformed body just means the credentials cannot match.
	_ = c.Bind(&req)

	if req.Username != s.config.HubUser || req.Password != s.config.HubPass {
		if err := c.JSON(401, map[string]string{"status": "fail"}); err != nil {
			return fmt.Errorf("failed to send JSON response: %w", err)
		}
		return nil
	}

	if err := c.JSON(200, map[string]string{"status": "ok"}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
