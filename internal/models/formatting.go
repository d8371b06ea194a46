package models

// EntryType classifies a correspondence record by how the exchange happened.
type EntryType string

const (
	EntryTypeEmail   EntryType = "Email"
	EntryTypeCall    EntryType = "Call"
	EntryTypeMeeting EntryType = "Meeting"
)

// Direction says which way a message travelled relative to the user.
type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// ExtractedNames carries the sender/recipient names the formatting service
// pulled out of message headers, when it could find any.
type ExtractedNames struct {
	Sender    *string `json:"sender"`
	Recipient *string `json:"recipient"`
}

// FormattedEntry is one normalized message as returned by the formatting
// service. Warnings is always non-nil, possibly empty.
type FormattedEntry struct {
	SubjectGuess   string          `json:"subject_guess"`
	EntryTypeGuess EntryType       `json:"entry_type_guess"`
	EntryDateGuess *string         `json:"entry_date_guess"`
	DirectionGuess *Direction      `json:"direction_guess,omitempty"`
	FormattedText  string          `json:"formatted_text"`
	Warnings       []string        `json:"warnings"`
	ExtractedNames *ExtractedNames `json:"extracted_names,omitempty"`
}

// ThreadSplitResponse is the multi-entry response shape, used when a single
// pasted block contained several concatenated messages.
type ThreadSplitResponse struct {
	Entries  []FormattedEntry `json:"entries"`
	Warnings []string         `json:"warnings"`
}

// ResponseKind discriminates the two permitted response shapes.
type ResponseKind string

const (
	ResponseSingle      ResponseKind = "single"
	ResponseThreadSplit ResponseKind = "thread_split"
)

// ModelResponse is the tagged union of the two shapes the formatting service
// may return. Exactly one of Single/Thread is set, per Kind.
type ModelResponse struct {
	Kind   ResponseKind         `json:"kind"`
	Single *FormattedEntry      `json:"single,omitempty"`
	Thread *ThreadSplitResponse `json:"thread,omitempty"`
}

// Entries flattens the union into a list of formatted entries, regardless of
// which shape was returned.
func (r *ModelResponse) Entries() []FormattedEntry {
	if r == nil {
		return nil
	}
	switch r.Kind {
	case ResponseSingle:
		if r.Single == nil {
			return nil
		}
		return []FormattedEntry{*r.Single}
	case ResponseThreadSplit:
		if r.Thread == nil {
			return nil
		}
		return r.Thread.Entries
	}
	return nil
}

// FormattingResult is the only thing the formatter ever hands back to its
// caller: either validated data, or a classified error with the guarantee
// that the unformatted-save path stays open.
type FormattingResult struct {
	Success               bool           `json:"success"`
	Data                  *ModelResponse `json:"data,omitempty"`
	Error                 string         `json:"error,omitempty"`
	ShouldSaveUnformatted bool           `json:"should_save_unformatted,omitempty"`
}

// MatchConfidence grades a contact match.
type MatchConfidence string

const (
	MatchConfidenceHigh MatchConfidence = "high"
	MatchConfidenceLow  MatchConfidence = "low"
)

// ContactMatchResult is the outcome of matching one formatted entry's
// extracted name against the known contacts of a business. Fields are nil
// when no match was found.
type ContactMatchResult struct {
	ContactID   *string         `json:"contact_id"`
	ContactName *string         `json:"contact_name"`
	MatchedFrom *string         `json:"matched_from"`
	Confidence  MatchConfidence `json:"confidence"`
}

// ThreadDetectionResult summarizes the advisory thread-split heuristics for
// a block of raw pasted text.
type ThreadDetectionResult struct {
	LooksLikeThread bool     `json:"looks_like_thread"`
	Confidence      string   `json:"confidence"` // low, medium, high
	Indicators      []string `json:"indicators"`
	RecommendSplit  bool     `json:"recommend_split"`
}
