// chase is a terminal game: steer through a walled arena, pick up hearts and
// stay away from the enemies closing in on you.
//
// Usage:
//
//	chase play        - Play a game
//	chase backends    - List terminal backends
//	chase config      - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Custom config YAML (default: search ~/.chase, ./configs, embedded)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-chase/internal/platform/tcellui"
	_ "github.com/vovakirdan/tui-chase/internal/platform/tui"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chase",
	Short: "Chase - outrun your pursuers in the terminal",
	Long: `Chase is a real-time terminal game. Steer through a walled arena,
collect hearts for score and keep away from the enemies closing in on you.

Available commands:
  play      - Start a game
  backends  - Show available terminal backends
  config    - Print the effective configuration

Examples:
  chase play
  chase play --difficulty hard --backend tcell
  chase play --config ./my-arena.yaml --seed 42
  chase config > ~/.chase/config.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}
