package typefall

// TypingResult classifies one character of input against the active word.
type TypingResult int

const (
	// TypingRejected means the character did not match; progress unchanged.
	TypingRejected TypingResult = iota
	// TypingAdvanced means the character matched and progress moved forward.
	TypingAdvanced
	// TypingCompleted means the character matched the final letter.
	// Completion is a drop trigger: the piece hard-drops immediately.
	TypingCompleted
)

// String returns a human-readable name for the result.
func (r TypingResult) String() string {
	switch r {
	case TypingRejected:
		return "Rejected"
	case TypingAdvanced:
		return "Advanced"
	case TypingCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// TypingGate matches incoming characters against the active piece's word.
// All voluntary piece mobility is gated behind it: lateral movement is only
// permitted before any character has been typed, and finishing the word
// forces the drop.
type TypingGate struct {
	caseSensitive bool
}

// NewTypingGate creates a gate. The reference behavior is case-insensitive
// ASCII comparison; caseSensitive flips that.
func NewTypingGate(caseSensitive bool) TypingGate {
	return TypingGate{caseSensitive: caseSensitive}
}

// OnChar matches ch against the piece's word at the current progress index.
// On mismatch the progress index is left unchanged. On a match the index
// advances; matching the final character returns TypingCompleted.
// A nil or already-typed piece rejects everything.
func (g TypingGate) OnChar(p *Piece, ch rune) TypingResult {
	if p == nil || p.Typed() {
		return TypingRejected
	}

	want := rune(p.Word[p.Progress])
	if !g.caseSensitive {
		want = lowerASCII(want)
		ch = lowerASCII(ch)
	}
	if ch != want {
		return TypingRejected
	}

	p.Progress++
	if p.Typed() {
		return TypingCompleted
	}
	return TypingAdvanced
}

// MayMove reports whether lateral movement is currently permitted for the
// piece. Movement is only allowed while no character has been typed; once
// typing begins the piece is committed to its column until the word is
// finished or an explicit drop is issued.
func (g TypingGate) MayMove(p *Piece) bool {
	return p != nil && p.Progress == 0
}

func lowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
