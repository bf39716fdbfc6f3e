// Package reader holds the client-side reading workflow: a selection becomes
// the front of a flashcard draft, its translation becomes the back, and the
// finished pair is saved into a list.
package reader

import "strings"

// NormalizeSelection trims surrounding whitespace and lower-cases raw.
// ok is false when nothing is left. Normalization is idempotent.
func NormalizeSelection(raw string) (text string, ok bool) {
	text = strings.ToLower(strings.TrimSpace(raw))
	return text, text != ""
}
