package game

import (
	"strings"
	"unicode"
)

// sanitizeText strips leading and trailing whitespace and control characters
func sanitizeText(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})
}

// containsDisallowed reports whether text contains any denylist term,
// matching case-insensitively on substrings
func containsDisallowed(text string, denylist []string) bool {
	lowered := strings.ToLower(text)
	for _, term := range denylist {
		if term == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
