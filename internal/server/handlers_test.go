package server

import (
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/cormacGreaney/greanium/internal/config"
	"github.com/cormacGreaney/greanium/internal/content"
	"github.com/cormacGreaney/greanium/internal/github"
)

// --- Mock implementations ---

type mockMailer struct {
	configured bool
	sendFn     func(ctx context.Context, name, email, message string) error
}

func (m *mockMailer) Configured() bool {
	return m.configured
}

func (m *mockMailer) Send(ctx context.Context, name, email, message string) error {
	if m.sendFn != nil {
		return m.sendFn(ctx, name, email, message)
	}
	return nil
}

type mockStatsProvider struct {
	statsFn func(ctx context.Context) (*github.Stats, error)
}

func (m *mockStatsProvider) Stats(ctx context.Context) (*github.Stats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

type mockChatService struct {
	replyFn func(ctx context.Context, prompt string) (string, error)
}

func (m *mockChatService) Reply(ctx context.Context, prompt string) (string, error) {
	if m.replyFn != nil {
		return m.replyFn(ctx, prompt)
	}
	return "", fmt.Errorf("not implemented")
}

// --- Test server construction ---

type serverDeps struct {
	cfg    *config.Config
	store  contentStore
	mailer mailSender
	stats  statsProvider
	chat   chatService
	clock  clockwork.Clock
}

// newTestServer builds a Server over a temp data directory with mock
// collaborators. Options mutate the deps before construction.
func newTestServer(t *testing.T, opts ...func(*serverDeps)) *Server {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		AppEnv:         "test",
		Port:           "0",
		HubUser:        "admin",
		HubPass:        "password",
		FrontendDir:    filepath.Join(dir, "frontend"),
		DataDir:        dir,
		FilesDir:       filepath.Join(dir, "files"),
		LinksFile:      filepath.Join(dir, "links.json"),
		PortfolioFile:  filepath.Join(dir, "portfolio.json"),
		GitHubUsername: "testuser",
	}

	deps := &serverDeps{
		cfg:    cfg,
		store:  content.NewStore(cfg.FilesDir, cfg.LinksFile, cfg.PortfolioFile),
		mailer: &mockMailer{},
		stats:  &mockStatsProvider{},
		chat:   nil,
		clock:  clockwork.NewFakeClock(),
	}
	for _, opt := range opts {
		opt(deps)
	}

	return NewServer(deps.cfg, deps.store, deps.mailer, deps.stats, deps.chat, deps.clock)
}

// doJSON runs a request through the full middleware stack.
func doJSON(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func writeDataFile(t *testing.T, srv *Server, relative, contents string) {
	t.Helper()
	path := filepath.Join(srv.config.DataDir, relative)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}
