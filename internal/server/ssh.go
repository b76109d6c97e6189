// Package server serves retrodesk sessions over SSH.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/Gaurav-Gosain/retrodesk/internal/app"
	"github.com/Gaurav-Gosain/retrodesk/internal/config"
	"github.com/Gaurav-Gosain/retrodesk/internal/input"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

// shutdownTimeout bounds how long open sessions get to drain.
const shutdownTimeout = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Host    string
	Port    string
	KeyPath string // empty: $XDG_DATA_HOME/retrodesk/ssh_host_ed25519

	// Config is shared read-only by every session.
	Config *config.UserConfig
	Logger *log.Logger
}

// StartSSHServer initializes and runs the SSH server until ctx is cancelled.
func StartSSHServer(ctx context.Context, cfg *SSHServerConfig) error {
	if cfg.Config == nil {
		cfg.Config = config.DefaultConfig()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	hostKeyPath, err := resolveHostKeyPath(cfg.KeyPath)
	if err != nil {
		return err
	}

	app.SetInputHandler(input.HandleInput)

	server, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			// Bubble Tea middleware for interactive sessions
			bubbletea.Middleware(teaHandler(cfg)),
			// Logging middleware for connection tracking
			logging.MiddlewareWithLogger(cfg.Logger),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		cfg.Logger.Info("starting SSH server", "addr", server.Addr, "host_key", hostKeyPath)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("SSH server: %w", err)
	case <-ctx.Done():
	}

	cfg.Logger.Info("shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("SSH shutdown: %w", err)
	}
	return nil
}

// resolveHostKeyPath returns keyPath, or the default host key location with
// its directory created.
func resolveHostKeyPath(keyPath string) (string, error) {
	if keyPath != "" {
		return keyPath, nil
	}
	path, err := xdg.DataFile(filepath.Join("retrodesk", "ssh_host_ed25519"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve host key path: %w", err)
	}
	return path, nil
}

// teaHandler creates a desktop for each SSH session
func teaHandler(cfg *SSHServerConfig) bubbletea.Handler {
	return func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, active := sess.Pty()
		if !active {
			cfg.Logger.Warn("session without a PTY", "user", sess.User())
			return nil, nil
		}
		return newSessionModel(cfg, sess.User(), pty.Window.Width, pty.Window.Height), []tea.ProgramOption{
			tea.WithFilter(app.MotionFilter),
		}
	}
}

// newSessionModel builds an independent desktop sized to the client PTY.
func newSessionModel(cfg *SSHServerConfig, user string, width, height int) *app.Desktop {
	d := app.New(cfg.Config, width, height,
		app.WithLogger(cfg.Logger.With("user", user)),
		app.WithDoubleClick(input.NewDoubleClick(cfg.Config.DoubleClick())),
	)
	d.Logger.Info("session started", "cols", width, "rows", height)
	return d
}
