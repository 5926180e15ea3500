package vendors

import (
	"strings"

	"github.com/agext/levenshtein"
)

// Normalize lowers the vendor name onto its matching key: lower-cased,
// punctuation stripped, whitespace collapsed.
func Normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'ä' || r == 'ö' || r == 'ü' || r == 'ß':
			b.WriteRune(r)
		case r == ' ' || r == '\t':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Similarity is the normalized edit-distance ratio
// (maxLen - distance) / maxLen over classic single-character
// insert/delete/substitute operations. Symmetric and deterministic;
// identical strings score 1.0, fully distinct strings 0.0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.Distance(a, b, levenshtein.NewParams())
	return float64(maxLen-dist) / float64(maxLen)
}
