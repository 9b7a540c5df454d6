package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typefall/internal/wordbank"
)

var (
	flagWordsMinLen int
	flagWordsMaxLen int
)

var wordsCmd = &cobra.Command{
	Use:   "words [file]",
	Short: "Inspect a word pack",
	Long: `Load a word pack file and report which words the game would use.

Words are trimmed, lowercased and checked against the typing rules:
ASCII letters only, within the configured length range. Without a file
argument the embedded default list is shown.

Examples:
  typefall words
  typefall words ./packs/animals.yaml
  typefall words ./mywords.txt --min-length 4 --max-length 6`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWords,
}

func init() {
	wordsCmd.Flags().IntVar(&flagWordsMinLen, "min-length", 3, "Minimum word length")
	wordsCmd.Flags().IntVar(&flagWordsMaxLen, "max-length", 8, "Maximum word length")
}

func runWords(cmd *cobra.Command, args []string) {
	var raw []string
	source := "embedded default list"

	if len(args) == 1 {
		loaded, err := wordbank.LoadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading word pack: %v\n", err)
			os.Exit(1)
		}
		raw = loaded
		source = args[0]
	} else {
		raw = wordbank.DefaultWords()
	}

	usable := wordbank.Filter(raw, flagWordsMinLen, flagWordsMaxLen)

	fmt.Printf("Word pack: %s\n", source)
	fmt.Printf("  Total entries:  %d\n", len(raw))
	fmt.Printf("  Usable words:   %d (length %d-%d, ASCII letters only)\n",
		len(usable), flagWordsMinLen, flagWordsMaxLen)
	fmt.Println()

	if len(usable) == 0 {
		fmt.Println("No usable words. The game would fall back to the embedded list.")
		os.Exit(1)
	}

	// Preview a handful so a bad pack is obvious at a glance
	preview := usable
	if len(preview) > 10 {
		preview = preview[:10]
	}
	fmt.Println("Sample:")
	for _, w := range preview {
		fmt.Printf("  %s\n", w)
	}
	if len(usable) > len(preview) {
		fmt.Printf("  ... and %d more\n", len(usable)-len(preview))
	}
}
