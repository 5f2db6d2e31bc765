// Package textclean normalizes raw transcription output: verbal fillers are
// stripped and the spacing/punctuation damage they leave behind is repaired.
package textclean

import (
	"regexp"
	"strings"
)

// fillers are replaced with a single space, in order. Longer phrases come
// first so "you know what I mean" is removed as a unit before the standalone
// "you know" rule can split it. Capitalized and lowercase variants are listed
// separately instead of case-folding, so surrounding text keeps its case.
// Do not reorder.
var fillers = []string{
	"you know what I mean", "you know what i mean",
	"I mean,", "i mean,", "I mean", "i mean",
	"you know,", "You know,", "you know", "You know",
	", like,", ", Like,",
	"like,", "Like,",
	", um,", ", Um,", ", uh,", ", Uh,",
	"um,", "Um,", "uh,", "Uh,",
	" um ", " Um ", " uh ", " Uh ",
	" um.", " uh.",
}

var (
	multiSpace       = regexp.MustCompile("  +")
	spaceBeforePunct = regexp.MustCompile(`\s+([.,!?;:])`)
	postTerminal     = regexp.MustCompile(`([.!?])\s{2,}`)
	leadingPunct     = regexp.MustCompile(`^[\s.,!?;:]+`)
)

// Clean strips filler phrases and repairs spacing and punctuation. It is
// idempotent: cleaning already-clean text is a no-op. Removing one filler can
// expose another ("I, um, mean hello" leaves "I mean hello"), so the pass
// repeats until the text stops changing; every rule strictly shortens the
// text, so this terminates.
func Clean(text string) string {
	for {
		next := cleanPass(text)
		if next == text {
			return next
		}
		text = next
	}
}

func cleanPass(text string) string {
	before := text
	for _, filler := range fillers {
		text = strings.ReplaceAll(text, filler, " ")
	}
	removedFiller := text != before

	text = multiSpace.ReplaceAllString(text, " ")
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = postTerminal.ReplaceAllString(text, "$1 ")
	if removedFiller {
		// Removing a leading filler can strand its punctuation at the start
		// ("I mean, the plan" -> ", the plan"). Text that never held a
		// filler keeps whatever it starts with.
		text = leadingPunct.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}
