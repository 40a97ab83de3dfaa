package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/game"
	"github.com/vovakirdan/tui-adventure/internal/platform/tui"
	"github.com/vovakirdan/tui-adventure/internal/state"
	"github.com/vovakirdan/tui-adventure/internal/storage"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the title menu",
	Long: `Start the title menu: begin a new adventure, continue from the last
checkpoint or browse the records. Leaving a game with Q returns to the menu.

Examples:
  adventure menu
  adventure menu --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom adventure config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	menuCmd.Flags().StringVar(&flagMapsDir, "maps", "", "Directory with map files overriding the built-in maps")
	menuCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload maps from --maps when they change")
}

func runMenu(cmd *cobra.Command, _ []string) error {
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
	} else {
		defer store.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	session := tui.SessionConfig{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Timing.TickRate,
		},
		HoldTicks: cfg.Timing.HoldTicks,
		NewGame: func(cont bool) *game.Game {
			deps := state.Deps{
				Config: cfg,
				Loader: loader,
				Logger: logger,
				Name:   storage.DefaultSlot,
			}
			if store != nil {
				deps.Checkpoints = store
				deps.Recorder = store
				if cont {
					deps.Resume = loadResume(store, logger)
				}
			}
			return game.New(deps, cont)
		},
	}
	if store != nil {
		session.Records = store
		session.CanContinue = func() bool {
			saved, loadErr := store.LoadCheckpoint(storage.DefaultSlot)
			return loadErr == nil && saved != nil
		}
	}

	return tui.RunSession(session)
}
