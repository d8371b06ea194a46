package models

import "time"

// FormattingStatus records how a correspondence record's display text came
// to be: produced by the formatting service, saved as pasted, or attempted
// and failed.
type FormattingStatus string

const (
	FormattingStatusFormatted   FormattingStatus = "formatted"
	FormattingStatusUnformatted FormattingStatus = "unformatted"
	FormattingStatusFailed      FormattingStatus = "failed"
)

// Correspondence is one filed piece of business correspondence.
//
// RawTextOriginal is write-once: formatting only ever adds sibling fields,
// it never replaces what the user pasted. FormattedTextCurrent is editable
// by humans only, never rewritten by the formatting service.
type Correspondence struct {
	ID                    string           `db:"id" json:"id"`
	BusinessID            string           `db:"business_id" json:"business_id"`
	ContactID             *string          `db:"contact_id" json:"contact_id,omitempty"`
	EntryType             EntryType        `db:"entry_type" json:"entry_type"`
	Direction             *Direction       `db:"direction" json:"direction,omitempty"`
	Subject               string           `db:"subject" json:"subject"`
	EntryDate             time.Time        `db:"entry_date" json:"entry_date"`
	RawTextOriginal       string           `db:"raw_text_original" json:"raw_text_original"`
	FormattedTextOriginal *string          `db:"formatted_text_original" json:"formatted_text_original,omitempty"`
	FormattedTextCurrent  *string          `db:"formatted_text_current" json:"formatted_text_current,omitempty"`
	ContentHash           string           `db:"content_hash" json:"content_hash"`
	FormattingStatus      FormattingStatus `db:"formatting_status" json:"formatting_status"`
	CreatedAt             time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time        `db:"updated_at" json:"updated_at"`
}

// DisplayText returns the text a reader should see for this record.
func (c *Correspondence) DisplayText() string {
	if c.FormattedTextCurrent != nil && *c.FormattedTextCurrent != "" {
		return *c.FormattedTextCurrent
	}
	return c.RawTextOriginal
}

// Business is the entity correspondence is filed against.
type Business struct {
	ID              string     `db:"id" json:"id"`
	Name            string     `db:"name" json:"name"`
	LastContactedAt *time.Time `db:"last_contacted_at" json:"last_contacted_at,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}
