package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/games/typefall"
	"github.com/vovakirdan/typefall/internal/platform/tui"
	"github.com/vovakirdan/typefall/internal/registry"
	"github.com/vovakirdan/typefall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWords      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play typefall",
	Long: `Start a game session.

Controls:
  a-z              - Type the active piece's word
  Left/Right       - Move the piece (only before typing starts)
  Up               - Rotate the piece (only before typing starts)
  Enter/Tab/Space  - Drop the piece immediately
  Esc              - Pause
  Ctrl+R           - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Ctrl+C           - Quit

Difficulty options:
  easy   - Slower starting fall speed
  normal - The reference pace
  hard   - Faster starting fall speed
  fixed  - No speed progression, stays at the starting pace

Examples:
  typefall play
  typefall play --difficulty hard
  typefall play --words ./packs/animals.yaml
  typefall play --config ./my-typefall.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagWords, "words", "", "Path to a word pack file (.txt or .yaml)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Difficulty: flagDifficulty,
	}

	// Plumb flags into the game before creation
	typefall.SetConfigPath(flagConfig)
	typefall.SetWordPack(flagWords)

	game, err := registry.Create("typefall")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = "normal"
	}

	runErr := tui.Run(game, store, cfg, difficulty)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
