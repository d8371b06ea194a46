package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "Jane Wright", "jane wright"},
		{"punctuation stripped", "O'Brien, Patrick", "o brien patrick"},
		{"whitespace collapsed", "  Jane   Wright ", "jane wright"},
		{"diacritics folded", "José Núñez", "jose nunez"},
		{"email characters kept", "jane@acme.com", "jane@acme.com"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestNormalizeForComparison(t *testing.T) {
	a := NormalizeForComparison("Hi Jane,\n\nFollowing  up on the QUOTE.")
	b := NormalizeForComparison("hi jane, following up on the quote.")
	assert.Equal(t, a, b)
}

func TestNormalizeForComparison_KeepsPunctuation(t *testing.T) {
	assert.Equal(t, "hi, jane.", NormalizeForComparison("Hi,  Jane."))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("a\t b\n\n c"))
}

func TestFirstToken(t *testing.T) {
	assert.Equal(t, "jane", FirstToken("jane wright"))
	assert.Equal(t, "", FirstToken("   "))
}
