package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List available terminal backends",
	Run: func(cmd *cobra.Command, args []string) {
		backends := registry.List()

		if len(backends) == 0 {
			fmt.Println("No backends registered.")
			return
		}

		fmt.Println("Available backends:")
		fmt.Println()
		for _, b := range backends {
			marker := " "
			if b.ID == defaultBackend {
				marker = "*"
			}
			fmt.Printf(" %s %-8s %s\n", marker, b.ID, b.Title)
		}
		fmt.Println()
		fmt.Println("Use 'chase play --backend <id>' to pick one.")
	},
}
