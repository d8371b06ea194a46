// Package pipeline turns raw formatting-service responses into validated
// correspondence entries. Recovery is limited to stripping wrapper artifacts
// the model adds around its JSON; no semantic repair is ever attempted.
package pipeline

import (
	"encoding/json"
	"strings"
)

// ParseFailureKind classifies why a response could not be parsed.
type ParseFailureKind string

const (
	FailureUnterminatedString ParseFailureKind = "unterminated_string"
	FailureUnexpectedToken    ParseFailureKind = "unexpected_token"
	FailureUnexpectedEnd      ParseFailureKind = "unexpected_end_of_input"
	FailureNoObject           ParseFailureKind = "no_object"
	FailureOther              ParseFailureKind = "other"
)

// RecoveryResult is the outcome of attempting to recover structured data
// from a raw model response.
type RecoveryResult struct {
	Success        bool
	Data           map[string]interface{}
	FailureKind    ParseFailureKind
	Error          string
	AttemptedFixes []string
}

// RecoverJSON strips wrapping artifacts from a raw model response and
// attempts a strict parse. The model is instructed to return bare JSON but
// sometimes wraps it in a code fence or adds prose around it anyway.
func RecoverJSON(raw string) RecoveryResult {
	var fixes []string

	text := strings.TrimSpace(raw)

	if stripped, ok := stripFence(text); ok {
		text = stripped
		fixes = append(fixes, "stripped code fence")
	}

	// Slice to the outermost braces to drop any leading or trailing prose.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return RecoveryResult{
			Success:        false,
			FailureKind:    FailureNoObject,
			Error:          "The response contained no JSON object. Your original text is preserved and can be saved unformatted.",
			AttemptedFixes: fixes,
		}
	}
	if start > 0 || end < len(text)-1 {
		fixes = append(fixes, "sliced to outermost braces")
	}
	text = text[start : end+1]

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		kind := classifyParseError(err)
		return RecoveryResult{
			Success:        false,
			FailureKind:    kind,
			Error:          failureMessage(kind),
			AttemptedFixes: fixes,
		}
	}

	return RecoveryResult{
		Success:        true,
		Data:           data,
		AttemptedFixes: fixes,
	}
}

// stripFence removes a leading markdown code fence (with optional language
// tag) or triple-quote wrapper, plus its closing counterpart.
func stripFence(text string) (string, bool) {
	for _, fence := range []string{"```", `"""`} {
		if !strings.HasPrefix(text, fence) {
			continue
		}
		rest := text[len(fence):]
		// Drop a language tag such as "json" on the fence line.
		if idx := strings.Index(rest, "\n"); idx != -1 {
			rest = rest[idx+1:]
		}
		rest = strings.TrimSpace(rest)
		rest = strings.TrimSuffix(rest, fence)
		return strings.TrimSpace(rest), true
	}
	return text, false
}

func classifyParseError(err error) ParseFailureKind {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "string literal"):
		return FailureUnterminatedString
	case strings.Contains(msg, "unexpected end of JSON input"):
		return FailureUnexpectedEnd
	case strings.Contains(msg, "invalid character"):
		return FailureUnexpectedToken
	default:
		return FailureOther
	}
}

func failureMessage(kind ParseFailureKind) string {
	var cause string
	switch kind {
	case FailureUnterminatedString:
		cause = "it contains an unterminated quoted string"
	case FailureUnexpectedEnd:
		cause = "it was cut off before the end"
	case FailureUnexpectedToken:
		cause = "it contains an unexpected character"
	default:
		cause = "it could not be parsed"
	}
	return "The formatting service returned a response that could not be read (" + cause + "). Your original text is preserved and can be saved unformatted."
}
