package pipeline

import (
	"fmt"

	"corlog/internal/models"
)

// ValidationError pinpoints the field that broke the response contract.
type ValidationError struct {
	Field    string
	Expected string
	Actual   interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: expected %s, got %v (%T)", e.Field, e.Expected, e.Actual, e.Actual)
}

// ValidateResponse checks a recovered object against the two permitted
// shapes and returns the typed union. The discriminant is structural: the
// presence of an "entries" key means thread split. Invalid fields are never
// coerced or defaulted.
func ValidateResponse(data map[string]interface{}) (*models.ModelResponse, error) {
	if rawEntries, ok := data["entries"]; ok {
		arr, ok := rawEntries.([]interface{})
		if !ok {
			return nil, &ValidationError{Field: "entries", Expected: "array", Actual: rawEntries}
		}

		thread := &models.ThreadSplitResponse{
			Entries:  make([]models.FormattedEntry, 0, len(arr)),
			Warnings: []string{},
		}

		for i, el := range arr {
			obj, ok := el.(map[string]interface{})
			if !ok {
				return nil, &ValidationError{Field: fmt.Sprintf("entries[%d]", i), Expected: "object", Actual: el}
			}
			entry, err := validateEntry(obj, fmt.Sprintf("entries[%d].", i))
			if err != nil {
				return nil, err
			}
			thread.Entries = append(thread.Entries, *entry)
		}

		warnings, err := validateWarnings(data, "")
		if err != nil {
			return nil, err
		}
		thread.Warnings = warnings

		return &models.ModelResponse{Kind: models.ResponseThreadSplit, Thread: thread}, nil
	}

	entry, err := validateEntry(data, "")
	if err != nil {
		return nil, err
	}
	return &models.ModelResponse{Kind: models.ResponseSingle, Single: entry}, nil
}

func validateEntry(obj map[string]interface{}, prefix string) (*models.FormattedEntry, error) {
	entry := &models.FormattedEntry{Warnings: []string{}}

	subject, ok := obj["subject_guess"].(string)
	if !ok {
		return nil, &ValidationError{Field: prefix + "subject_guess", Expected: "string", Actual: obj["subject_guess"]}
	}
	entry.SubjectGuess = subject

	entryType, ok := obj["entry_type_guess"].(string)
	if !ok {
		return nil, &ValidationError{Field: prefix + "entry_type_guess", Expected: "one of Email, Call, Meeting", Actual: obj["entry_type_guess"]}
	}
	switch models.EntryType(entryType) {
	case models.EntryTypeEmail, models.EntryTypeCall, models.EntryTypeMeeting:
		entry.EntryTypeGuess = models.EntryType(entryType)
	default:
		return nil, &ValidationError{Field: prefix + "entry_type_guess", Expected: "one of Email, Call, Meeting", Actual: entryType}
	}

	if raw, present := obj["entry_date_guess"]; present && raw != nil {
		date, ok := raw.(string)
		if !ok {
			return nil, &ValidationError{Field: prefix + "entry_date_guess", Expected: "string or null", Actual: raw}
		}
		entry.EntryDateGuess = &date
	}

	if raw, present := obj["direction_guess"]; present && raw != nil {
		dir, ok := raw.(string)
		if !ok {
			return nil, &ValidationError{Field: prefix + "direction_guess", Expected: "sent, received or null", Actual: raw}
		}
		switch models.Direction(dir) {
		case models.DirectionSent, models.DirectionReceived:
			d := models.Direction(dir)
			entry.DirectionGuess = &d
		default:
			return nil, &ValidationError{Field: prefix + "direction_guess", Expected: "sent, received or null", Actual: dir}
		}
	}

	formatted, ok := obj["formatted_text"].(string)
	if !ok {
		return nil, &ValidationError{Field: prefix + "formatted_text", Expected: "string", Actual: obj["formatted_text"]}
	}
	entry.FormattedText = formatted

	warnings, err := validateWarnings(obj, prefix)
	if err != nil {
		return nil, err
	}
	entry.Warnings = warnings

	if raw, present := obj["extracted_names"]; present && raw != nil {
		names, err := validateExtractedNames(raw, prefix)
		if err != nil {
			return nil, err
		}
		entry.ExtractedNames = names
	}

	return entry, nil
}

func validateWarnings(obj map[string]interface{}, prefix string) ([]string, error) {
	raw, ok := obj["warnings"]
	if !ok {
		return nil, &ValidationError{Field: prefix + "warnings", Expected: "array", Actual: nil}
	}
	arr, ok := raw.([]interface{})
	if !ok {
		return nil, &ValidationError{Field: prefix + "warnings", Expected: "array", Actual: raw}
	}

	// Always non-nil so callers can rely on its presence.
	warnings := make([]string, 0, len(arr))
	for i, el := range arr {
		s, ok := el.(string)
		if !ok {
			return nil, &ValidationError{Field: fmt.Sprintf("%swarnings[%d]", prefix, i), Expected: "string", Actual: el}
		}
		warnings = append(warnings, s)
	}
	return warnings, nil
}

func validateExtractedNames(raw interface{}, prefix string) (*models.ExtractedNames, error) {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, &ValidationError{Field: prefix + "extracted_names", Expected: "object", Actual: raw}
	}

	names := &models.ExtractedNames{}
	for _, field := range []string{"sender", "recipient"} {
		val, present := obj[field]
		if !present || val == nil {
			continue
		}
		s, ok := val.(string)
		if !ok {
			return nil, &ValidationError{Field: prefix + "extracted_names." + field, Expected: "string or null", Actual: val}
		}
		if field == "sender" {
			names.Sender = &s
		} else {
			names.Recipient = &s
		}
	}
	return names, nil
}
