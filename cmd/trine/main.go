// trine is a sliding-tile merge puzzle for the terminal.
//
// Usage:
//
//	trine play               - Play in the local terminal
//	trine serve              - Start SSH server for remote play
//	trine scores             - Show the best finished games
//
// Global flags:
//
//	--config <path> - Path to a custom config YAML
//	--db <path>     - Set database path (default: ~/.trine/trine.db)
//	--seed <value>  - Set RNG seed for reproducible spawns
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trine",
	Short: "Trine - A sliding-tile merge puzzle in your terminal",
	Long: `Trine is a terminal puzzle: slide tiles across the board and merge
equal pairs to climb the doubling ladder. Reach the target tile to win;
run out of moves and it's a stalemate.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play
  scores   - View the best finished games

Examples:
  trine play
  trine play --new
  trine serve --ssh :2222
  trine scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.trine/trine.db", "Path to results database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
