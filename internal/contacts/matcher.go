// Package contacts resolves free-text names against a business's known
// contacts and extracts contact records from pasted legacy documents.
package contacts

import (
	"strings"

	"corlog/internal/models"
	"corlog/internal/utils"
)

// selfTokens are first-person references: they name the user, not a
// correspondent, and must never match a contact.
var selfTokens = map[string]struct{}{
	"me":     {},
	"i":      {},
	"myself": {},
}

// matchRule is one name-matching strategy. Rules are ordered by how much of
// the name they consume; the first rule with a hit wins, ties broken by
// contact input order.
type matchRule struct {
	name    string
	matches func(extracted, contact string) bool
}

var matchRules = []matchRule{
	{
		name: "exact",
		matches: func(extracted, contact string) bool {
			return extracted == contact
		},
	},
	{
		name: "first name",
		matches: func(extracted, contact string) bool {
			first := utils.FirstToken(extracted)
			return first != "" && first == utils.FirstToken(contact)
		},
	},
	{
		name: "nickname",
		matches: func(extracted, contact string) bool {
			return nicknameEquivalent(utils.FirstToken(extracted), utils.FirstToken(contact))
		},
	},
	{
		name: "containment",
		matches: func(extracted, contact string) bool {
			return extracted != "" && contact != "" &&
				(strings.Contains(extracted, contact) || strings.Contains(contact, extracted))
		},
	},
}

// Matcher fuzzy-matches extracted names against known contacts. It is a
// pure value: no external calls, safe for concurrent use.
type Matcher struct {
	selfAlias string
}

// NewMatcher creates a matcher. selfAlias is an optional configured
// first-person name (how the user signs their own messages) that, like
// "me", never matches a contact.
func NewMatcher(selfAlias string) *Matcher {
	return &Matcher{selfAlias: utils.NormalizeName(selfAlias)}
}

// MatchName resolves a free-text name to a contact, or nil when nothing
// matches. Names containing "@" are matched as email addresses against
// every address known for any contact.
func (m *Matcher) MatchName(extractedName string, contactList []models.Contact) *models.Contact {
	name := strings.TrimSpace(extractedName)
	if name == "" {
		return nil
	}

	normalized := utils.NormalizeName(name)
	if _, self := selfTokens[normalized]; self {
		return nil
	}
	if m.selfAlias != "" && normalized == m.selfAlias {
		return nil
	}

	if strings.Contains(name, "@") {
		return matchByEmail(name, contactList)
	}

	for _, rule := range matchRules {
		for i := range contactList {
			if rule.matches(normalized, utils.NormalizeName(contactList[i].Name)) {
				return &contactList[i]
			}
		}
	}

	return nil
}

func matchByEmail(address string, contactList []models.Contact) *models.Contact {
	needle := strings.ToLower(strings.TrimSpace(address))
	for i := range contactList {
		for _, email := range contactList[i].Emails() {
			if strings.ToLower(email) == needle {
				return &contactList[i]
			}
		}
	}
	return nil
}

// MatchEntriesToContacts resolves each formatted entry's extracted name to
// a contact. Results are ordered identically to the entries. direction
// decides which side of the exchange names the correspondent: the sender
// of a received message, the recipient of a sent one. When direction is
// unknown the sender name is tried, since the correspondent most often is
// the sender. A miss yields a low-confidence result with nil fields; a
// contact is never fabricated.
func (m *Matcher) MatchEntriesToContacts(entries []models.FormattedEntry, contactList []models.Contact) []models.ContactMatchResult {
	results := make([]models.ContactMatchResult, 0, len(entries))

	for _, entry := range entries {
		name := correspondentName(entry)
		if name == "" {
			results = append(results, models.ContactMatchResult{Confidence: models.MatchConfidenceLow})
			continue
		}

		matched := m.MatchName(name, contactList)
		if matched == nil {
			results = append(results, models.ContactMatchResult{Confidence: models.MatchConfidenceLow})
			continue
		}

		id := matched.ID
		contactName := matched.Name
		from := name
		results = append(results, models.ContactMatchResult{
			ContactID:   &id,
			ContactName: &contactName,
			MatchedFrom: &from,
			Confidence:  models.MatchConfidenceHigh,
		})
	}

	return results
}

func correspondentName(entry models.FormattedEntry) string {
	if entry.ExtractedNames == nil {
		return ""
	}

	sender, recipient := "", ""
	if entry.ExtractedNames.Sender != nil {
		sender = *entry.ExtractedNames.Sender
	}
	if entry.ExtractedNames.Recipient != nil {
		recipient = *entry.ExtractedNames.Recipient
	}

	if entry.DirectionGuess != nil && *entry.DirectionGuess == models.DirectionSent {
		return recipient
	}
	return sender
}
