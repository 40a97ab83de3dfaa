package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-adventure/internal/platform/tui"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the adventure SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own adventure. Checkpoints are saved in a
slot named after the SSH user, so reconnecting continues where the player
left off. Finished adventures share one records table.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.adventure/host_key

Examples:
  adventure serve                           # Listen on :23234 with auto-generated key
  adventure serve --ssh :2222               # Listen on port 2222
  adventure serve --host-key ./my_host_key  # Use specific host key
  adventure serve --db ./adventure.db       # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom adventure config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	serveCmd.Flags().StringVar(&flagMapsDir, "maps", "", "Directory with map files overriding the built-in maps")
	serveCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload maps from --maps when they change")
}

func runServe(cmd *cobra.Command, _ []string) error {
	adventure, err := loadAdventureConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("adventure-ssh", false)
	if err != nil {
		return err
	}
	defer closeLog()

	loader := world.NewLoader(adventure.Maps.Dir, logger)
	if adventure.Maps.Watch {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		if err := loader.Watch(ctx); err != nil {
			return err
		}
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Adventure:   adventure,
		Loader:      loader,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting adventure SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
