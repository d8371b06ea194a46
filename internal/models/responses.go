package models

import "time"

// HealthResponse represents a basic health check response
// @Description Health check response
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`                 // Health status
	Timestamp time.Time `json:"timestamp" example:"2023-01-01T00:00:00Z"` // Timestamp of the check
	Version   string    `json:"version" example:"1.0.0"`                  // Application version
}

// DBHealthResponse represents a database health check response
// @Description Database health check response
type DBHealthResponse struct {
	Status    string        `json:"status" example:"healthy"`                   // Health status
	Timestamp time.Time     `json:"timestamp" example:"2023-01-01T00:00:00Z"`   // Timestamp of the check
	Connected bool          `json:"connected" example:"true"`                   // Database connection status
	Latency   time.Duration `json:"latency" swaggertype:"string" example:"1ms"` // Database ping latency
	Error     string        `json:"error,omitempty" example:""`                 // Error message if any
}

// DetectThreadRequest represents the request body for thread detection
// @Description Thread detection request payload
type DetectThreadRequest struct {
	RawText string `json:"raw_text"` // Raw pasted correspondence text
}

// FormatRequest represents the request body for the format endpoint
// @Description Correspondence formatting request payload
type FormatRequest struct {
	RawText     string `json:"raw_text"`     // Raw pasted correspondence text
	ShouldSplit bool   `json:"should_split"` // Whether to ask for a thread split
}

// DuplicateCheckRequest represents the request body for the duplicate check endpoint
// @Description Duplicate check request payload
type DuplicateCheckRequest struct {
	BusinessID string `json:"business_id"` // Business the text would be filed against
	RawText    string `json:"raw_text"`    // Candidate raw text
}

// DuplicateCheckResult represents the outcome of a pre-commit duplicate check
// @Description Duplicate check result
type DuplicateCheckResult struct {
	IsDuplicate   bool            `json:"is_duplicate" example:"false"` // Whether a matching record already exists
	ExistingEntry *Correspondence `json:"existing_entry,omitempty"`     // The record that matched, if any
}

// ExtractContactsRequest represents the request body for contact extraction
// @Description Contact extraction request payload
type ExtractContactsRequest struct {
	RawText string `json:"raw_text"` // Pasted legacy document text
}

// ExtractContactsResponse represents the response from contact extraction
// @Description Contact extraction response
type ExtractContactsResponse struct {
	SectionFound bool               `json:"section_found" example:"true"` // Whether a contacts section was recognized
	Contacts     []ExtractedContact `json:"contacts"`                     // Extracted contact records
}

// SaveRequest represents the request body for the save endpoint
// @Description Correspondence save request payload
type SaveRequest struct {
	BusinessID        string     `json:"business_id"`         // Business to file against
	PrimaryContactID  string     `json:"primary_contact_id"`  // Fallback contact for attribution
	RawText           string     `json:"raw_text"`            // Raw pasted text, preserved verbatim
	EntryType         EntryType  `json:"entry_type"`          // Email, Call or Meeting
	Direction         *Direction `json:"direction,omitempty"` // sent or received, if known
	EntryDate         time.Time  `json:"entry_date"`          // Date of the correspondence
	ShouldSplit       bool       `json:"should_split"`        // Whether to request a thread split
	SkipFormatting    bool       `json:"skip_formatting"`     // Save as-is without calling the formatting service
	OverrideDuplicate bool       `json:"override_duplicate"`  // Proceed even when the duplicate check matches
}

// SaveResponse represents the response from the save endpoint
// @Description Correspondence save response
type SaveResponse struct {
	Success     bool             `json:"success"`                // Whether records were committed
	Records     []Correspondence `json:"records,omitempty"`      // The committed records
	Duplicate   *Correspondence  `json:"duplicate,omitempty"`    // Existing record when the duplicate check blocked the save
	FormatError string           `json:"format_error,omitempty"` // Classified formatting failure, when saving unformatted
	Error       string           `json:"error,omitempty"`        // Error message if any
}
