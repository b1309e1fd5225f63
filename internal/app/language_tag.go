package app

import (
	"regexp"
	"strings"
)

// The provider is instructed to open its reply with "LANGUAGE: en" or
// "LANGUAGE: fr" on its own line. The tag is advisory: replies without it
// pass through untouched.
var languageTagPattern = regexp.MustCompile(`(?i)^LANGUAGE:\s*(en|fr)\b`)

// stripLanguageTag removes the leading language tag line and the blank
// line that follows it, returning the remaining content trimmed. Text
// whose first non-empty line is not a tag is returned unchanged.
func stripLanguageTag(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !languageTagPattern.MatchString(trimmed) {
			return text
		}

		rest := i + 1
		if rest < len(lines) && strings.TrimSpace(lines[rest]) == "" {
			rest++
		}
		remaining := append(append([]string{}, lines[:i]...), lines[rest:]...)
		return strings.TrimSpace(strings.Join(remaining, "\n"))
	}
	return text
}
