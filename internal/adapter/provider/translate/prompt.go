package translate

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
)

// buildPrompt renders the instruction sent to chat-style LLM providers.
func buildPrompt(text, source, target string) string {
	from := "the detected source language"
	if source != "" {
		from = languageLabel(source)
	}

	return fmt.Sprintf(
		"Translate the following text from %s to %s. "+
			"Reply with the translation only, without quotes, notes or alternatives. "+
			"If the text cannot be translated, reply with an empty message.\n\n%s",
		from, languageLabel(target), text,
	)
}

func languageLabel(code string) string {
	if lang, ok := domain.LookupLanguage(code); ok {
		return fmt.Sprintf("%s (%s)", lang.NativeName, lang.Code)
	}
	return code
}

// cleanCompletion trims model output down to the translation line.
func cleanCompletion(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}
