// lightcycle is a two-player light-cycle duel played in the terminal.
//
// Usage:
//
//	lightcycle list              - List available variants
//	lightcycle play [variant]    - Play a duel (default: duel)
//	lightcycle menu              - Start menu to pick a variant interactively
//	lightcycle config            - Print the duel configuration
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--config <path>   - Path to a custom duel config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-lightcycle/internal/games/cycles"
)

var (
	// Global flags
	flagFPS    int
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lightcycle",
	Short: "Light Cycles - a two-player duel in your terminal",
	Long: `Light Cycles is a terminal game for two players on one keyboard.
Each player rides a cycle that leaves a solid trail; steer your rival
into a wall or a trail while staying alive yourself.

Available commands:
  list     - Show all available variants
  play     - Play a duel directly
  menu     - Interactive variant picker menu
  config   - Print the duel configuration

Examples:
  lightcycle play
  lightcycle play duel_blitz
  lightcycle menu --fps 30
  lightcycle play --config ./my-duel.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom duel config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
