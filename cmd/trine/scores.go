package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkotenko/trine/internal/platform/tui"
	"github.com/dkotenko/trine/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished games",
	Long: `Display the best finished games, ranked by highest tile reached and
then by fewest moves.

Examples:
  trine scores
  trine scores --limit 25
  trine scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse results in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	results, err := store.TopResults(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Games")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No finished games yet.")
		fmt.Println()
		fmt.Println("Play 'trine play' to get on the board!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "Rank", "Tile", "Moves", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "----", "----", "-----", "------", "----")

	for i, entry := range results {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %-10s  %s\n", i+1, entry.BestTile, entry.Moves, entry.Outcome, dateStr)
	}

	fmt.Println()
	if best, bestErr := store.BestTile(); bestErr == nil && best > 0 {
		fmt.Printf("Best tile ever: %d\n", best)
	}
}
