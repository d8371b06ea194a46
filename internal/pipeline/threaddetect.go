package pipeline

import (
	"regexp"

	"corlog/internal/models"
)

// threadIndicator is one named heuristic for spotting concatenated messages
// in a pasted block. Rules are advisory and independently testable.
type threadIndicator struct {
	name       string
	pattern    *regexp.Regexp
	minMatches int
}

var threadIndicators = []threadIndicator{
	{
		// A single message has at most one header block.
		name:       "repeated header keywords",
		pattern:    regexp.MustCompile(`(?mi)^(From|Sent|Subject):`),
		minMatches: 4,
	},
	{
		name:       "long separator lines",
		pattern:    regexp.MustCompile(`[.\-=_*]{20,}`),
		minMatches: 1,
	},
	{
		name:       "reply markers",
		pattern:    regexp.MustCompile(`(?m)On .{1,80}? wrote:`),
		minMatches: 1,
	},
	{
		name:       "repeated document-style headers",
		pattern:    regexp.MustCompile(`(?mi)^Email (?:from|to) .+? (?:to|from) .+?,`),
		minMatches: 2,
	},
}

// DetectThreadSignals examines raw pasted text for signals that it contains
// multiple concatenated messages. Pure text analysis, deterministic, no
// external calls. Confidence grows with the number of distinct indicator
// types found, not the raw match count of any one type. The hard rule is
// "if uncertain, do not split": RecommendSplit stays false below medium
// confidence.
func DetectThreadSignals(rawText string) models.ThreadDetectionResult {
	var found []string
	for _, ind := range threadIndicators {
		matches := ind.pattern.FindAllStringIndex(rawText, -1)
		if len(matches) >= ind.minMatches {
			found = append(found, ind.name)
		}
	}

	confidence := "low"
	switch {
	case len(found) >= 3:
		confidence = "high"
	case len(found) == 2:
		confidence = "medium"
	}

	return models.ThreadDetectionResult{
		LooksLikeThread: len(found) > 0,
		Confidence:      confidence,
		Indicators:      found,
		RecommendSplit:  len(found) >= 2,
	}
}
