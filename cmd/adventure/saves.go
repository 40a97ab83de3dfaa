package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-adventure/internal/storage"
)

var (
	flagClear     bool
	flagClearSlot string
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Show or clear saved checkpoints",
	Long: `List the checkpoints saved in the database. Local play saves to the
"default" slot; SSH players save to a slot named after their user.

Examples:
  adventure saves
  adventure saves --slot alice --clear
  adventure saves --clear`,
	Args: cobra.NoArgs,
	RunE: runSaves,
}

func init() {
	savesCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete saved checkpoints")
	savesCmd.Flags().StringVar(&flagClearSlot, "slot", "", "Only clear this slot")
}

func runSaves(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if flagClearSlot != "" {
			if err := store.DeleteCheckpoint(flagClearSlot); err != nil {
				return err
			}
			fmt.Printf("Cleared checkpoint %q.\n", flagClearSlot)
			return nil
		}
		if err := store.ClearCheckpoints(); err != nil {
			return err
		}
		fmt.Println("Cleared all checkpoints.")
		return nil
	}

	saves, err := store.Checkpoints()
	if err != nil {
		return fmt.Errorf("retrieving checkpoints: %w", err)
	}
	if len(saves) == 0 {
		fmt.Println("No checkpoints saved yet.")
		return nil
	}

	fmt.Printf("  %-12s  %-10s  %-7s  %-5s  %-4s  %-5s  %s\n", "Slot", "Map", "Tile", "Coins", "Keys", "Taken", "Saved")
	fmt.Printf("  %-12s  %-10s  %-7s  %-5s  %-4s  %-5s  %s\n", "----", "---", "----", "-----", "----", "-----", "-----")
	for _, s := range saves {
		fmt.Printf("  %-12s  %-10s  %-7s  %-5d  %-4d  %-5d  %s\n",
			s.Slot,
			s.Map,
			fmt.Sprintf("%d,%d", s.TileX, s.TileY),
			s.Coins,
			s.Keys,
			s.Removed,
			s.UpdatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}
