// Command reader is the interactive reading client: it lists texts and
// lists, and drives a reading session that turns selections into
// flashcards.
package main

import (
	"os"

	"github.com/heartmarshall/lingoreader-backend/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
