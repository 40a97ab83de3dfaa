package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/game"
	"github.com/vovakirdan/tui-adventure/internal/platform/tui"
	"github.com/vovakirdan/tui-adventure/internal/registry"
	"github.com/vovakirdan/tui-adventure/internal/state"
	"github.com/vovakirdan/tui-adventure/internal/storage"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

var (
	flagConfig     string
	flagDifficulty string
	flagContinue   bool
	flagMapsDir    string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start or continue the adventure",
	Long: `Start the adventure, or continue from your last checkpoint.

Controls:
  Arrows/WASD/HJKL  - Walk
  Y/U/B/N           - Walk diagonally
  Space             - Open doors, confirm
  P/Esc             - Pause
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 4 spare lives, 15 seconds to continue
  normal - 2 spare lives
  hard   - no spare lives, 5 seconds to continue

Examples:
  adventure play
  adventure play --continue
  adventure play --difficulty hard
  adventure play --maps ./maps --watch
  adventure play --config ./my-adventure.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom adventure config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagContinue, "continue", false, "Continue from the last saved checkpoint")
	playCmd.Flags().StringVar(&flagMapsDir, "maps", "", "Directory with map files overriding the built-in maps")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload maps from --maps when they change")
}

// loadAdventureConfig loads the config and applies the command line flags.
func loadAdventureConfig() (config.AdventureConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	if flagMapsDir != "" {
		cfg.Maps.Dir = flagMapsDir
	}
	if flagWatch {
		cfg.Maps.Watch = true
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAdventureConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("adventure", true)
	if err != nil {
		return err
	}
	defer closeLog()

	loader := world.NewLoader(cfg.Maps.Dir, logger)
	if cfg.Maps.Watch {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		if err := loader.Watch(ctx); err != nil {
			return err
		}
	}

	deps := state.Deps{
		Config: cfg,
		Loader: loader,
		Logger: logger,
		Name:   storage.DefaultSlot,
	}

	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		deps.Checkpoints = store
		deps.Recorder = store
		if flagContinue {
			deps.Resume = loadResume(store, logger)
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
	}
	g := game.New(deps, flagContinue)
	if err := tui.Run(g, rc, cfg.Timing.HoldTicks); err != nil {
		return fmt.Errorf("running adventure: %w", err)
	}
	return g.Err()
}

// loadResume reads the local save slot. Without one the adventure starts
// from the beginning.
func loadResume(store *storage.Store, logger *log.Logger) *registry.Registry {
	saved, err := store.LoadCheckpoint(storage.DefaultSlot)
	if err != nil {
		logger.Warn("cannot load checkpoint", "err", err)
		return nil
	}
	if saved == nil {
		fmt.Fprintln(os.Stderr, "No saved checkpoint, starting a new adventure.")
	}
	return saved
}
