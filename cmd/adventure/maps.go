package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-adventure/internal/world"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List available maps",
	Long: `Shows the maps the adventure can load: the built-in ones and any
found in the directory given with --maps.`,
	Args: cobra.NoArgs,
	RunE: runMaps,
}

func init() {
	mapsCmd.Flags().StringVar(&flagMapsDir, "maps", "", "Directory with map files overriding the built-in maps")
}

func runMaps(_ *cobra.Command, _ []string) error {
	loader := world.NewLoader(flagMapsDir, nil)
	names, err := loader.Names()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Println("No maps available.")
		return nil
	}

	fmt.Println("Available maps:")
	fmt.Println()

	type row struct{ name, title, size string }
	rows := make([]row, 0, len(names))
	maxNameLen := 4 // "Name" header
	for _, name := range names {
		def, err := loader.Definition(name)
		if err != nil {
			rows = append(rows, row{name, "(invalid: " + err.Error() + ")", "-"})
			continue
		}
		cols := 0
		if len(def.Rows) > 0 {
			cols = len([]rune(def.Rows[0]))
		}
		rows = append(rows, row{name, def.Title, fmt.Sprintf("%dx%d", cols, len(def.Rows))})
		maxNameLen = max(maxNameLen, len(name))
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "Name", "Size", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "----", "----", "-----")

	for _, r := range rows {
		fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, r.name, r.size, r.title)
	}
	return nil
}
