package analyze

import (
	"sort"
	"strings"
)

// DetectScope scans bid document text for the configured scope
// keywords and returns the sorted, deduplicated set found. Matching is
// case-insensitive and word-boundary aware, so "paint" does not match
// "painless".
func DetectScope(text string, keywords []string) []string {
	textLower := strings.ToLower(text)

	seen := make(map[string]struct{})
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if containsWord(textLower, kw) {
			seen[kw] = struct{}{}
		}
	}

	found := make([]string, 0, len(seen))
	for kw := range seen {
		found = append(found, kw)
	}
	sort.Strings(found)
	return found
}

// containsWord checks if text contains the word with word-boundary
// awareness. Multi-word phrases fall back to plain substring matching.
func containsWord(text, word string) bool {
	if strings.Contains(word, " ") {
		return strings.Contains(text, word)
	}

	idx := strings.Index(text, word)
	if idx == -1 {
		return false
	}

	if idx > 0 && isWordChar(text[idx-1]) {
		return containsWord(text[idx+len(word):], word)
	}

	endIdx := idx + len(word)
	if endIdx < len(text) && isWordChar(text[endIdx]) {
		return containsWord(text[idx+len(word):], word)
	}

	return true
}

// isWordChar returns true for alphanumeric characters
func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
