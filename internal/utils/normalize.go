package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}\s@.]+`)
	whitespacePattern  = regexp.MustCompile(`\s+`)

	diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// NormalizeName prepares a person name for comparison: lowercase, diacritics
// folded, punctuation stripped, whitespace collapsed.
func NormalizeName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	lower = FoldDiacritics(lower)
	lower = punctuationPattern.ReplaceAllString(lower, " ")
	return CollapseWhitespace(lower)
}

// NormalizeForComparison case-folds and collapses whitespace without
// touching punctuation. Used for duplicate text comparison, where pasted
// text must match stored text despite copy-paste whitespace damage.
func NormalizeForComparison(text string) string {
	return CollapseWhitespace(strings.ToLower(strings.TrimSpace(text)))
}

// CollapseWhitespace reduces any whitespace run to a single space.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// FoldDiacritics removes combining marks so "José" compares equal to "Jose".
func FoldDiacritics(text string) string {
	folded, _, err := transform.String(diacriticStripper, text)
	if err != nil {
		return text
	}
	return folded
}

// FirstToken returns the first whitespace-delimited token of a string.
func FirstToken(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
