package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/game"
	"github.com/vovakirdan/tui-adventure/internal/registry"
	"github.com/vovakirdan/tui-adventure/internal/state"
	"github.com/vovakirdan/tui-adventure/internal/storage"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.adventure/host_key.
	HostKeyPath string

	// DBPath is the path to the saves and records database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Adventure is the game configuration every session starts from.
	Adventure config.AdventureConfig

	// Loader reads the maps. Sessions share it.
	Loader *world.Loader
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.adventure/adventure.db",
		IdleTimeout: 30 * time.Minute,
		Adventure:   config.DefaultAdventureConfig(),
	}
}

// SSHServer wraps a Wish SSH server for the adventure.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "adventure-ssh",
		})
	}
	if cfg.Loader == nil {
		cfg.Loader = world.NewLoader(cfg.Adventure.Maps.Dir, logger)
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open database, saves are disabled", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".adventure", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a session for each SSH connection. The SSH user name
// is the save slot, so a returning player can continue from their checkpoint.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	user := sshSession.User()
	cfg := SessionConfig{
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.config.Adventure.Timing.TickRate,
		},
		HoldTicks: s.config.Adventure.Timing.HoldTicks,
		NewGame: func(cont bool) *game.Game {
			return s.newGame(user, cont)
		},
		CanContinue: func() bool {
			return s.resume(user) != nil
		},
	}
	if s.store != nil {
		cfg.Records = s.store
	}

	return NewSessionModel(cfg), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// newGame builds an adventure for one player.
func (s *SSHServer) newGame(user string, cont bool) *game.Game {
	deps := state.Deps{
		Config: s.config.Adventure,
		Loader: s.config.Loader,
		Logger: s.logger.With("user", user),
		Name:   user,
	}
	if s.store != nil {
		deps.Checkpoints = s.store
		deps.Recorder = s.store
	}
	if cont {
		deps.Resume = s.resume(user)
	}
	s.logger.Debug("adventure created", "user", user, "continue", deps.Resume != nil)
	return game.New(deps, cont)
}

// resume returns the player's saved checkpoint, or nil.
func (s *SSHServer) resume(user string) *registry.Registry {
	if s.store == nil {
		return nil
	}
	saved, err := s.store.LoadCheckpoint(user)
	if err != nil {
		s.logger.Warn("cannot load checkpoint", "user", user, "error", err)
		return nil
	}
	return saved
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

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
