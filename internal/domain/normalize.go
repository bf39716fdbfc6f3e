package domain

import (
	"strings"
)

// NormalizeName prepares a user-supplied display name (text or list name)
// for storage:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into a single space
//
// Case is preserved; names are shown back to the user as typed.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
