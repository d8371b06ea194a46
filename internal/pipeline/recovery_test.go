package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverJSON_CleanJSON(t *testing.T) {
	result := RecoverJSON(`{"subject_guess": "Quote follow-up", "warnings": []}`)

	require.True(t, result.Success)
	assert.Equal(t, "Quote follow-up", result.Data["subject_guess"])
	assert.Empty(t, result.AttemptedFixes)
}

func TestRecoverJSON_FencedJSONMatchesDirectParse(t *testing.T) {
	payload := `{"subject_guess": "Re: invoice", "entry_type_guess": "Email", "warnings": ["ambiguous date"]}`

	var direct map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(payload), &direct))

	tests := []struct {
		name    string
		wrapped string
	}{
		{"plain fence", "```\n" + payload + "\n```"},
		{"json fence", "```json\n" + payload + "\n```"},
		{"triple quotes", `"""` + "\n" + payload + "\n" + `"""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RecoverJSON(tt.wrapped)
			require.True(t, result.Success)
			assert.Equal(t, direct, result.Data)
			assert.Contains(t, result.AttemptedFixes, "stripped code fence")
		})
	}
}

func TestRecoverJSON_SurroundingProse(t *testing.T) {
	raw := "Sure! Here is the formatted entry:\n" +
		`{"subject_guess": "Call notes", "warnings": []}` +
		"\nLet me know if you need anything else."

	result := RecoverJSON(raw)

	require.True(t, result.Success)
	assert.Equal(t, "Call notes", result.Data["subject_guess"])
	assert.Contains(t, result.AttemptedFixes, "sliced to outermost braces")
}

func TestRecoverJSON_NoObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"plain prose", "I could not format this text."},
		{"empty input", ""},
		{"only closing brace", "} oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RecoverJSON(tt.raw)
			assert.False(t, result.Success)
			assert.Equal(t, FailureNoObject, result.FailureKind)
			assert.Contains(t, result.Error, "original text is preserved")
		})
	}
}

func TestRecoverJSON_ClassifiesParseErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind ParseFailureKind
	}{
		{
			name: "unterminated string",
			raw:  "{\"subject_guess\": \"cut\noff\"}",
			kind: FailureUnterminatedString,
		},
		{
			name: "unexpected token",
			raw:  `{subject_guess: "no quotes"}`,
			kind: FailureUnexpectedToken,
		},
		{
			name: "truncated response",
			raw:  `{"subject_guess": "Quote", "warnings": [}`,
			kind: FailureUnexpectedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RecoverJSON(tt.raw)
			require.False(t, result.Success)
			assert.Equal(t, tt.kind, result.FailureKind)
			assert.Contains(t, result.Error, "original text is preserved")
		})
	}
}

func TestRecoverJSON_NoSemanticRepair(t *testing.T) {
	// Missing closing brace inside the braced span: recovery must not
	// attempt brace balancing.
	result := RecoverJSON(`{"entries": [{"subject_guess": "a"}`)
	assert.False(t, result.Success)
}
