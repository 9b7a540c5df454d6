// Package wordbank supplies the words that get attached to falling pieces.
// A bank validates its word list up front so the game engine never sees an
// empty or non-typeable word, and it can be cycled forever.
package wordbank

import (
	"fmt"
	"math/rand"
	"strings"
)

// Source supplies words for new pieces. Implementations must be callable
// repeatedly without exhausting.
type Source interface {
	// Next returns the word for the next piece. Always non-empty.
	Next() string
}

// Bank is a Source backed by a fixed word list. Words are dealt in a
// shuffled order and reshuffled each time the list is exhausted, so the
// sequence is deterministic for a given seed but does not repeat words
// before the whole list has been seen.
type Bank struct {
	words []string
	order []int
	pos   int
	rng   *rand.Rand
}

// New creates a Bank from the given words, validating every entry.
// The rng drives the deal order; it must not be nil.
func New(words []string, rng *rand.Rand) (*Bank, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("wordbank: empty word list")
	}
	if rng == nil {
		return nil, fmt.Errorf("wordbank: nil rng")
	}
	for _, w := range words {
		if err := Validate(w); err != nil {
			return nil, err
		}
	}

	b := &Bank{
		words: make([]string, len(words)),
		order: make([]int, len(words)),
		rng:   rng,
	}
	for i, w := range words {
		b.words[i] = strings.ToLower(w)
		b.order[i] = i
	}
	b.shuffle()
	return b, nil
}

// Next returns the next word in the current deal, reshuffling when the
// list wraps around.
func (b *Bank) Next() string {
	if b.pos >= len(b.order) {
		b.shuffle()
	}
	w := b.words[b.order[b.pos]]
	b.pos++
	return w
}

// Len returns the number of words in the bank.
func (b *Bank) Len() int {
	return len(b.words)
}

func (b *Bank) shuffle() {
	b.rng.Shuffle(len(b.order), func(i, j int) {
		b.order[i], b.order[j] = b.order[j], b.order[i]
	})
	b.pos = 0
}

// Validate checks that a word satisfies the piece contract: non-empty and
// ASCII alphabetic only. Anything else is a word-pack fault and must be
// rejected before it reaches the engine.
func Validate(word string) error {
	if word == "" {
		return fmt.Errorf("wordbank: empty word")
	}
	for _, r := range word {
		if !isASCIIAlpha(r) {
			return fmt.Errorf("wordbank: word %q contains non-alphabetic character %q", word, r)
		}
	}
	return nil
}

// Filter returns the words whose length falls within [minLen, maxLen] and
// that pass Validate. Invalid entries are dropped rather than failing the
// whole pack, matching how user-supplied dictionaries behave.
func Filter(words []string, minLen, maxLen int) []string {
	var out []string
	for _, w := range words {
		w = strings.TrimSpace(w)
		if len(w) < minLen || len(w) > maxLen {
			continue
		}
		if Validate(w) != nil {
			continue
		}
		out = append(out, strings.ToLower(w))
	}
	return out
}

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
