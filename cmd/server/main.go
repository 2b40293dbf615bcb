package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/cormacGreaney/greanium/internal/ai"
	"github.com/cormacGreaney/greanium/internal/config"
	"github.com/cormacGreaney/greanium/internal/content"
	"github.com/cormacGreaney/greanium/internal/github"
	"github.com/cormacGreaney/greanium/internal/logging"
	"github.com/cormacGreaney/greanium/internal/mail"
	"github.com/cormacGreaney/greanium/internal/server"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, draining...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	store := content.NewStore(cfg.FilesDir, cfg.LinksFile, cfg.PortfolioFile)

	mailer := mail.New(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.ContactEmail)
	if !cfg.MailConfigured() {
		slog.Warn("Mail transport not configured; contact submissions will only be logged")
	}

	stats := github.NewClient(cfg.GitHubUsername)

	// Create and start the HTTP server (pass nil explicitly when the chat
	// proxy is unconfigured to avoid a typed-nil interface)
	var srv *server.Server
	if cfg.GeminiAPIKey != "" {
		chat, err := ai.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			slog.Error("Failed to create AI client", "error", err)
			os.Exit(1)
		}
		srv = server.NewServer(cfg, store, mailer, stats, chat, clock)
	} else {
		slog.Warn("GEMINI_API_KEY not set; AI chat proxy disabled")
		srv = server.NewServer(cfg, store, mailer, stats, nil, clock)
	}

	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
