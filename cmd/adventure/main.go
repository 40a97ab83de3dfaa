// adventure is a tile-based adventure game played in the terminal.
//
// Usage:
//
//	adventure play           - Start or continue the adventure
//	adventure menu           - Start the title menu
//	adventure maps           - List available maps
//	adventure records        - Show finished adventures
//	adventure saves          - Show or clear saved checkpoints
//	adventure serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config)
//	--db <path>           - Set database path (default: ~/.adventure/adventure.db)
//	--log-level <level>   - Set log level: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "adventure",
	Short: "TUI Adventure - Explore a tiny world in your terminal",
	Long: `TUI Adventure is a tile-based adventure game for the terminal.
Walk the meadow, climb the ridges, collect coins and keys, open doors
and find your way to the end.

Available commands:
  play     - Start or continue the adventure
  menu     - Title menu: new game, continue, records
  maps     - List available maps
  records  - Show finished adventures
  saves    - Show or clear saved checkpoints
  serve    - Start SSH server for remote play

Examples:
  adventure play
  adventure play --continue
  adventure play --difficulty easy
  adventure records --interactive
  adventure serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.adventure/adventure.db", "Path to saves and records database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger creates the logger for a command. While the game owns the
// terminal, logs go to ~/.adventure/adventure.log; otherwise to stderr.
// The returned function closes the log file.
func newLogger(prefix string, toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	if toFile {
		f, fileErr := openLogFile()
		if fileErr != nil {
			// Logging is best-effort; the game still runs without it
			out = io.Discard
		} else {
			out = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".adventure")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "adventure.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
