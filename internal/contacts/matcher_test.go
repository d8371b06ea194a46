package contacts

import (
	"testing"

	"corlog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func dirPtr(d models.Direction) *models.Direction { return &d }

func testContacts() []models.Contact {
	return []models.Contact{
		{
			ID:             "c1",
			Name:           "Frederick Mitchell",
			Email:          strPtr("frederick@acme.com"),
			SecondaryEmail: strPtr("fred.m@gmail.com"),
		},
		{
			ID:    "c2",
			Name:  "Jane Wright",
			Email: strPtr("jane.wright@acme.com"),
		},
		{
			ID:   "c3",
			Name: "José Núñez",
		},
	}
}

func TestMatchName_SelfTokensNeverMatch(t *testing.T) {
	m := NewMatcher("")
	for _, name := range []string{"me", "Me", "I", "myself"} {
		assert.Nil(t, m.MatchName(name, testContacts()), "self token %q must never match", name)
	}
}

func TestMatchName_SelfAliasNeverMatches(t *testing.T) {
	m := NewMatcher("Jane Wright")
	assert.Nil(t, m.MatchName("Jane Wright", testContacts()))

	// Other names still match with the alias configured.
	matched := m.MatchName("Frederick Mitchell", testContacts())
	require.NotNil(t, matched)
	assert.Equal(t, "c1", matched.ID)
}

func TestMatchName_EmailAddress(t *testing.T) {
	m := NewMatcher("")

	tests := []struct {
		name    string
		input   string
		matchID string
	}{
		{"primary email", "frederick@acme.com", "c1"},
		{"secondary email", "fred.m@gmail.com", "c1"},
		{"case insensitive", "JANE.WRIGHT@ACME.COM", "c2"},
		{"unknown address", "nobody@nowhere.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := m.MatchName(tt.input, testContacts())
			if tt.matchID == "" {
				assert.Nil(t, matched)
				return
			}
			require.NotNil(t, matched)
			assert.Equal(t, tt.matchID, matched.ID)
		})
	}
}

func TestMatchName_Rules(t *testing.T) {
	m := NewMatcher("")

	tests := []struct {
		name    string
		input   string
		matchID string
	}{
		{"exact normalized", "frederick mitchell", "c1"},
		{"exact with punctuation", "Jane Wright.", "c2"},
		{"diacritics folded", "Jose Nunez", "c3"},
		{"first name only", "Frederick", "c1"},
		{"nickname", "Freddie", "c1"},
		{"nickname other direction", "Fred", "c1"},
		{"substring containment", "Wright", "c2"},
		{"no match", "Quentin Blake", ""},
		{"empty input", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := m.MatchName(tt.input, testContacts())
			if tt.matchID == "" {
				assert.Nil(t, matched)
				return
			}
			require.NotNil(t, matched)
			assert.Equal(t, tt.matchID, matched.ID)
		})
	}
}

func TestMatchName_TieBrokenByInputOrder(t *testing.T) {
	m := NewMatcher("")
	list := []models.Contact{
		{ID: "a", Name: "Jane Adams"},
		{ID: "b", Name: "Jane Brook"},
	}

	matched := m.MatchName("Jane", list)
	require.NotNil(t, matched)
	assert.Equal(t, "a", matched.ID)
}

func TestMatchName_PrefersRuleConsumingMoreOfTheName(t *testing.T) {
	m := NewMatcher("")
	list := []models.Contact{
		{ID: "partial", Name: "Jane Brook"}, // first-name hit only
		{ID: "full", Name: "Jane Wright"},   // exact hit
	}

	matched := m.MatchName("Jane Wright", list)
	require.NotNil(t, matched)
	assert.Equal(t, "full", matched.ID)
}

func TestMatchEntriesToContacts(t *testing.T) {
	m := NewMatcher("")

	entries := []models.FormattedEntry{
		{
			DirectionGuess: dirPtr(models.DirectionReceived),
			ExtractedNames: &models.ExtractedNames{Sender: strPtr("Jane Wright"), Recipient: strPtr("me")},
		},
		{
			DirectionGuess: dirPtr(models.DirectionSent),
			ExtractedNames: &models.ExtractedNames{Sender: strPtr("me"), Recipient: strPtr("Freddie")},
		},
		{
			DirectionGuess: dirPtr(models.DirectionReceived),
			ExtractedNames: &models.ExtractedNames{Sender: strPtr("Quentin Blake")},
		},
		{
			// No names extracted at all.
		},
	}

	results := m.MatchEntriesToContacts(entries, testContacts())

	require.Len(t, results, 4)

	require.NotNil(t, results[0].ContactID)
	assert.Equal(t, "c2", *results[0].ContactID)
	assert.Equal(t, "Jane Wright", *results[0].MatchedFrom)
	assert.Equal(t, models.MatchConfidenceHigh, results[0].Confidence)

	require.NotNil(t, results[1].ContactID)
	assert.Equal(t, "c1", *results[1].ContactID, "sent entries match on the recipient name")

	assert.Nil(t, results[2].ContactID)
	assert.Nil(t, results[2].ContactName)
	assert.Equal(t, models.MatchConfidenceLow, results[2].Confidence)

	assert.Nil(t, results[3].ContactID)
	assert.Equal(t, models.MatchConfidenceLow, results[3].Confidence)
}

func TestMatchEntriesToContacts_UnknownDirectionUsesSender(t *testing.T) {
	m := NewMatcher("")
	entries := []models.FormattedEntry{
		{ExtractedNames: &models.ExtractedNames{Sender: strPtr("Jane Wright"), Recipient: strPtr("Frederick Mitchell")}},
	}

	results := m.MatchEntriesToContacts(entries, testContacts())

	require.Len(t, results, 1)
	require.NotNil(t, results[0].ContactID)
	assert.Equal(t, "c2", *results[0].ContactID)
}

func TestNicknameEquivalent(t *testing.T) {
	assert.True(t, nicknameEquivalent("frederick", "freddie"))
	assert.True(t, nicknameEquivalent("bill", "william"))
	assert.False(t, nicknameEquivalent("frederick", "bill"))
	assert.False(t, nicknameEquivalent("zelda", "frederick"))
	assert.False(t, nicknameEquivalent("", "frederick"))
}
