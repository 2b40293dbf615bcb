package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv    string
	Port      string
	LogLevel  string
	LogFormat string

	HubUser string
	HubPass string

	FrontendDir   string
	DataDir       string
	FilesDir      string
	LinksFile     string
	PortfolioFile string

	ContactEmail string
	SMTPServer   string
	SMTPPort     int
	SMTPUser     string
	SMTPPass     string

	GitHubUsername string

	GeminiAPIKey string
	GeminiModel  string
}

func Load() (*Config, error) {
	// Best effort: a missing .env file is fine, real env vars win anyway.
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "5000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		HubUser:        getEnv("HUB_USER", "admin"),
		HubPass:        getEnv("HUB_PASS", "password"),
		FrontendDir:    getEnv("FRONTEND_DIR", "frontend"),
		DataDir:        getEnv("DATA_DIR", "data"),
		ContactEmail:   getEnv("CONTACT_EMAIL", ""),
		SMTPServer:     getEnv("SMTP_SERVER", ""),
		SMTPUser:       getEnv("SMTP_USER", ""),
		SMTPPass:       getEnv("SMTP_PASS", ""),
		GitHubUsername: getEnv("GITHUB_USERNAME", "cormacGreaney"),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
	}

	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("SMTP_PORT must be a number: %w", err)
	}
	cfg.SMTPPort = port

	cfg.FilesDir = getEnv("FILES_DIR", filepath.Join(cfg.DataDir, "files"))
	cfg.LinksFile = getEnv("LINKS_FILE", filepath.Join(cfg.DataDir, "links.json"))
	cfg.PortfolioFile = getEnv("PORTFOLIO_FILE", filepath.Join(cfg.DataDir, "portfolio.json"))

	return cfg, nil
}

// MailConfigured reports whether the contact relay can actually send mail.
// The port always has a default, so only the four string values gate it.
func (c *Config) MailConfigured() bool {
	return c.ContactEmail != "" && c.SMTPServer != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
