// typefall is a typing-gated falling-block puzzle for the terminal.
// Each piece carries a word; type it correctly to send the piece down.
//
// Usage:
//
//	typefall play            - Play directly
//	typefall menu            - Pick difficulty interactively
//	typefall serve           - Start SSH server for remote play
//	typefall scores          - Show high scores
//	typefall words <file>    - Inspect a word pack
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.typefall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/typefall/internal/games/typefall"
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
	Use:   "typefall",
	Short: "Typefall - Type the word on each falling piece",
	Long: `Typefall is a falling-block puzzle where every piece is tagged with
a word. Move the piece while its word is untouched; once you start typing,
the piece is locked to its column. Finish the word and the piece slams down.

Available commands:
  play     - Play directly with the current config
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  words    - Inspect a word pack file

Examples:
  typefall play
  typefall play --difficulty hard
  typefall play --words ./packs/animals.yaml
  typefall menu
  typefall serve --ssh :2222
  typefall scores --difficulty hard`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.typefall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(wordsCmd)
}
