package models

import "time"

// Contact is a known person at a business.
type Contact struct {
	ID             string    `db:"id" json:"id"`
	BusinessID     string    `db:"business_id" json:"business_id"`
	Name           string    `db:"name" json:"name"`
	Role           *string   `db:"role" json:"role,omitempty"`
	Email          *string   `db:"email" json:"email,omitempty"`
	SecondaryEmail *string   `db:"secondary_email" json:"secondary_email,omitempty"`
	Phone          *string   `db:"phone" json:"phone,omitempty"`
	SecondaryPhone *string   `db:"secondary_phone" json:"secondary_phone,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Emails returns every known address for the contact, primary first.
func (c *Contact) Emails() []string {
	var out []string
	if c.Email != nil && *c.Email != "" {
		out = append(out, *c.Email)
	}
	if c.SecondaryEmail != nil && *c.SecondaryEmail != "" {
		out = append(out, *c.SecondaryEmail)
	}
	return out
}

// ExtractedContact is a contact record pulled out of a pasted legacy
// document. It is transient: the caller decides whether to create a real
// Contact from it.
type ExtractedContact struct {
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Role    *string `json:"role"`
	RawText string  `json:"raw_text"`
}
