package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
)

var renderersCmd = &cobra.Command{
	Use:   "renderers",
	Short: "List terminal renderers",
	Long:  `Shows the renderers available to 't2048 play --renderer'.`,
	Args:  cobra.NoArgs,
	Run:   runRenderers,
}

func runRenderers(cmd *cobra.Command, args []string) {
	renderers := registry.List()

	if len(renderers) == 0 {
		fmt.Println("No renderers available.")
		return
	}

	fmt.Println("Available renderers:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, r := range renderers {
		if len(r.ID) > maxIDLen {
			maxIDLen = len(r.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, r := range renderers {
		fmt.Printf("  %-*s  %s\n", maxIDLen, r.ID, r.Title)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play --renderer <id>' to use one.")
}
