package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/langton/internal/config"
	"github.com/vovakirdan/langton/internal/core"
	"github.com/vovakirdan/langton/internal/render"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.langton/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Settings describes the run every session watches. Without an explicit
	// seed each session gets its own start position.
	Settings config.RunSettings

	// Display holds glyphs, colors and frame rate.
	Display config.Config
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	display := config.DefaultConfig()
	return SSHServerConfig{
		Address:     display.Server.Address,
		IdleTimeout: display.IdleTimeout(),
		Settings:    config.RunSettings{Rows: 20, Cols: 40, Turns: 1000},
		Display:     display,
	}
}

// SSHServer wraps a Wish SSH server that streams runs to each session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger

	// runs maps each live session to the stop function of its pulled run.
	runs sync.Map
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "langton-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	hostKeyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.releaseMiddleware,
			srv.loggingMiddleware,
		),
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKeyPath defaults the key to ~/.langton/host_key and makes sure
// its directory exists.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".langton", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler creates a viewer for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	seed := s.config.Settings.ResolveSeed()
	state, err := s.config.Settings.NewState(config.NewRand(seed))
	if err != nil {
		s.logger.Error("cannot create run", "user", sshSession.User(), "error", err)
		return nil, nil
	}
	s.logger.Debug("session run",
		"user", sshSession.User(),
		"seed", seed,
		"start", state.Ant().Pos,
	)

	cfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
		FPS:     s.config.Display.Watch.FPS,
		Seed:    seed,
	}

	// Colors are resolved against the remote terminal, not the server's.
	theme := render.NewThemeFor(bubbletea.MakeRenderer(sshSession), s.config.Display.Palette())
	styled := render.NewStyled(s.config.Display.RenderGlyphs(), theme, s.config.Display.FrameBorder())

	model := NewWatchModel(state, s.config.Settings.Turns, styled, cfg)
	s.runs.Store(sshSession, model.Stop)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// releaseMiddleware stops the session's run once its program has exited,
// whether the user quit, disconnected or hit the idle timeout.
func (s *SSHServer) releaseMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		defer s.release(sshSession)
		next(sshSession)
	}
}

func (s *SSHServer) release(sshSession ssh.Session) {
	if v, ok := s.runs.LoadAndDelete(sshSession); ok {
		v.(func())()
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("ssh server: %w", err)
	case <-done:
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
