// Package commit turns a validated formatting result into the set of
// correspondence records to persist, together with the business timestamp
// update that accompanies them.
package commit

import (
	"fmt"
	"strings"
	"time"

	"corlog/internal/database"
	"corlog/internal/models"

	"github.com/google/uuid"
)

const subjectLimit = 90

// Metadata carries the user's submission details: the business and fallback
// contact, plus the type/date/direction the user picked in the form.
type Metadata struct {
	BusinessID       string
	PrimaryContactID string
	RawText          string
	EntryType        models.EntryType
	Direction        *models.Direction
	EntryDate        time.Time
}

// Plan is the full set of writes one save operation implies.
type Plan struct {
	Records         []models.Correspondence
	LastContactedAt time.Time
}

// BuildPlan builds the records to persist from a successful formatting
// result. For a thread split each entry becomes its own record,
// fingerprinted on its own formatted text: the raw submission is shared
// across all split entries, so hashing it would make every entry after the
// first look like a duplicate. A single entry is fingerprinted on the full
// raw text. matches, when given, attributes split entries to their matched
// contacts; anything below high confidence falls back to the primary
// contact.
func BuildPlan(response *models.ModelResponse, matches []models.ContactMatchResult, meta Metadata) (*Plan, error) {
	if response == nil {
		return nil, fmt.Errorf("formatting response is required to build a commit plan")
	}

	now := time.Now().UTC()

	if response.Kind == models.ResponseThreadSplit {
		entries := response.Entries()
		if len(entries) == 0 {
			return nil, fmt.Errorf("thread split produced no entries")
		}

		plan := &Plan{Records: make([]models.Correspondence, 0, len(entries))}
		for i, entry := range entries {
			record := recordFromEntry(entry, meta, now)
			record.ContentHash = database.Fingerprint(strings.TrimSpace(entry.FormattedText))
			record.ContactID = attributedContact(matches, i, meta.PrimaryContactID)
			plan.Records = append(plan.Records, record)
		}
		plan.LastContactedAt = latestEntryDate(plan.Records)
		return plan, nil
	}

	entry := response.Single
	if entry == nil {
		return nil, fmt.Errorf("single-entry response carries no entry")
	}

	record := recordFromEntry(*entry, meta, now)
	// The user picked type, date and direction explicitly for a single
	// submission; the model's guesses are advisory there.
	record.EntryType = meta.EntryType
	record.EntryDate = meta.EntryDate
	record.Direction = meta.Direction
	record.ContentHash = database.Fingerprint(strings.TrimSpace(meta.RawText))
	primary := meta.PrimaryContactID
	if primary != "" {
		record.ContactID = &primary
	}

	return &Plan{
		Records:         []models.Correspondence{record},
		LastContactedAt: record.EntryDate,
	}, nil
}

// BuildUnformattedRecord builds the single record for the degraded path:
// the raw text is saved as-is, with status unformatted (user skipped
// formatting) or failed (the formatting service could not produce a
// usable response).
func BuildUnformattedRecord(meta Metadata, status models.FormattingStatus) models.Correspondence {
	now := time.Now().UTC()
	record := models.Correspondence{
		ID:               uuid.NewString(),
		BusinessID:       meta.BusinessID,
		EntryType:        meta.EntryType,
		Direction:        meta.Direction,
		Subject:          fallbackSubject(meta.RawText),
		EntryDate:        meta.EntryDate,
		RawTextOriginal:  meta.RawText,
		ContentHash:      database.Fingerprint(strings.TrimSpace(meta.RawText)),
		FormattingStatus: status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if meta.PrimaryContactID != "" {
		primary := meta.PrimaryContactID
		record.ContactID = &primary
	}
	return record
}

func recordFromEntry(entry models.FormattedEntry, meta Metadata, now time.Time) models.Correspondence {
	formatted := entry.FormattedText
	subject := truncateSubject(entry.SubjectGuess)
	if subject == "" {
		subject = fallbackSubject(formatted)
	}

	return models.Correspondence{
		ID:                    uuid.NewString(),
		BusinessID:            meta.BusinessID,
		EntryType:             entryType(entry, meta),
		Direction:             entry.DirectionGuess,
		Subject:               subject,
		EntryDate:             entryDate(entry, meta),
		RawTextOriginal:       meta.RawText,
		FormattedTextOriginal: &formatted,
		FormattedTextCurrent:  &formatted,
		FormattingStatus:      models.FormattingStatusFormatted,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func entryType(entry models.FormattedEntry, meta Metadata) models.EntryType {
	if entry.EntryTypeGuess != "" {
		return entry.EntryTypeGuess
	}
	return meta.EntryType
}

// entryDate prefers the per-entry ISO date the formatting service found;
// the submission date is the fallback.
func entryDate(entry models.FormattedEntry, meta Metadata) time.Time {
	if entry.EntryDateGuess == nil {
		return meta.EntryDate
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if ts, err := time.Parse(layout, *entry.EntryDateGuess); err == nil {
			return ts
		}
	}
	return meta.EntryDate
}

func attributedContact(matches []models.ContactMatchResult, i int, primary string) *string {
	if i < len(matches) && matches[i].Confidence == models.MatchConfidenceHigh && matches[i].ContactID != nil {
		id := *matches[i].ContactID
		return &id
	}
	if primary == "" {
		return nil
	}
	return &primary
}

func latestEntryDate(records []models.Correspondence) time.Time {
	var latest time.Time
	for _, record := range records {
		if record.EntryDate.After(latest) {
			latest = record.EntryDate
		}
	}
	return latest
}

// truncateSubject caps a subject at subjectLimit characters. The cut is on
// runes, not bytes, so a multi-byte character at the boundary stays intact.
func truncateSubject(subject string) string {
	subject = strings.TrimSpace(subject)
	runes := []rune(subject)
	if len(runes) <= subjectLimit {
		return subject
	}
	return strings.TrimSpace(string(runes[:subjectLimit]))
}

// fallbackSubject derives a subject from the first line of the text when
// the formatting service offered none.
func fallbackSubject(text string) string {
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return truncateSubject(line)
		}
	}
	return "Correspondence"
}
