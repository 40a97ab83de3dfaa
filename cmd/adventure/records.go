package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/platform/tui"
	"github.com/vovakirdan/tui-adventure/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show finished adventures",
	Long: `Display the best finished adventures: most coins first, then the
fastest.

Examples:
  adventure records
  adventure records --limit 25
  adventure records --interactive`,
	Args: cobra.NoArgs,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse records and saves in a table")
	recordsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of records to show")
}

func runRecords(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	tickRate := config.DefaultAdventureConfig().Timing.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunRecords(store, tickRate, width, height)
	}

	results, err := store.TopResults(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving records: %w", err)
	}

	fmt.Println("Finished adventures")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No adventures finished yet.")
		fmt.Println()
		fmt.Println("Play 'adventure play' and find your way to the end!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-7s  %s\n", "Rank", "Player", "Coins", "Lives", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-7s  %s\n", "----", "------", "-----", "-----", "----", "----")

	for i, r := range results {
		secs := r.Ticks / tickRate
		fmt.Printf("  %-4d  %-12s  %-7s  %-5d  %-7s  %s\n",
			i+1,
			r.Player,
			fmt.Sprintf("%d/%d", r.Coins, r.Total),
			r.Lives,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}
