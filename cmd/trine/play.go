package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkotenko/trine/internal/config"
	"github.com/dkotenko/trine/internal/game"
	"github.com/dkotenko/trine/internal/platform/tui"
	"github.com/dkotenko/trine/internal/storage"
)

var flagNew bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start the puzzle in the local terminal. An unfinished game is resumed
automatically; pass --new to discard it and start over.

Controls:
  Arrows/WASD - Slide tiles
  R           - New game
  ?           - Toggle help
  Q/Ctrl+C    - Quit (progress is saved)

Examples:
  trine play
  trine play --new
  trine play --seed 42
  trine play --config ./my-trine.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNew, "new", false, "Discard any saved game and start fresh")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var chooser game.CellChooser
	if flagSeed != 0 {
		chooser = game.NewRandomChooser(flagSeed)
	}

	session, err := game.NewSession(cfg.GameRules(), chooser)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid rules: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Resume a saved game unless asked not to. Anything malformed in the
	// saved slot is treated as "no prior state".
	resumed := false
	if store != nil && !flagNew {
		if blob, loadErr := store.LoadSession(); loadErr == nil && blob != nil {
			if snap, decErr := game.DecodeSnapshot(blob); decErr == nil {
				if session.Restore(snap) == nil && !session.Outcome().Terminal() {
					resumed = true
				}
			}
		}
	}
	if !resumed {
		session.Reset()
	}

	runErr := tui.Run(session, store, cfg.UI, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
