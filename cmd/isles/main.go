// isles is a terminal platform for two island games: a tile-collecting
// meadow walk and a word-typing letter-crash drive.
//
// Usage:
//
//	isles list               - List available games
//	isles play <game>        - Play a game
//	isles menu               - Start menu to pick games interactively
//	isles serve              - Start SSH server for remote play
//	isles scores <game>      - Show high scores for a game
//	isles stats              - Show letter-crash play statistics
//	isles shop               - List the decoration catalog
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.isles/isles.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/letter-isles/internal/games/crash"
	_ "github.com/vovakirdan/letter-isles/internal/games/meadow"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "isles",
	Short: "Letter Isles - island games in your terminal",
	Long: `Letter Isles is a terminal-based playground: collect your way
across a vanishing meadow, or type words and crash a car through
their letters to unlock new islands.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View letter-crash play statistics
  shop     - List the decoration catalog

Examples:
  isles list
  isles play crash
  isles menu
  isles serve --ssh :2222
  isles scores meadow`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.isles/isles.db", "Path to database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(shopCmd)
}
