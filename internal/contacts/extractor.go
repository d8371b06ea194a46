package contacts

import (
	"regexp"
	"strings"

	"corlog/internal/models"
)

// ExtractionResult is the outcome of scanning a pasted legacy document for
// contact records.
type ExtractionResult struct {
	SectionFound bool                      `json:"section_found"`
	Contacts     []models.ExtractedContact `json:"contacts"`
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Labeled phone lines ("Phone: 02-555-1234", "Mobile 054 123 4567").
	labeledPhonePattern = regexp.MustCompile(`(?im)^\s*(?:phone|tel|telephone|mobile|cell)\.?[:\s]+([+(]?[0-9][0-9()\-\s.]{5,}[0-9])`)

	// Bare phone-shaped runs, used only to recognize a contacts section.
	phoneLikePattern = regexp.MustCompile(`[+(]?[0-9][0-9()\-\s.]{6,}[0-9]`)

	// Long separator runs split a contacts section into blocks.
	separatorRunPattern = regexp.MustCompile(`(?m)^\s*[.\-=_*]{10,}\s*$`)

	sectionHeaderPattern = regexp.MustCompile(`(?im)^\s*(?:key )?contacts?(?:\s+(?:section|information|details|list))?\s*:?\s*$`)

	// Lines that begin a new contact inside a block.
	contactStartPattern = regexp.MustCompile(`(?m)^[A-Z][\w.'\-]*(?: [A-Z][\w.'\-]*)+\s*(?:[-–]\s*\S.*|\([^)]+\)\s*)$`)
)

// namePattern is one name/role extraction rule. Rules are tried in order
// and only the first match is used per contact block.
type namePattern struct {
	name    string
	pattern *regexp.Regexp
	extract func(match []string) (name, role string)
}

var namePatterns = []namePattern{
	{
		name:    "labelled current contact",
		pattern: regexp.MustCompile(`(?im)^\s*current contact[:\s]+(.+?)\s*$`),
		extract: func(match []string) (string, string) {
			return splitNameRole(match[1])
		},
	},
	{
		name:    "dash delimited",
		pattern: regexp.MustCompile(`(?m)^\s*([A-Z][\w.'\-]*(?: [A-Z][\w.'\-]*)+)\s*[-–]\s*(\S.*?)\s*$`),
		extract: func(match []string) (string, string) {
			return match[1], match[2]
		},
	},
	{
		name:    "parenthetical",
		pattern: regexp.MustCompile(`(?m)^\s*([A-Z][\w.'\-]*(?: [A-Z][\w.'\-]*)+)\s*\(([^)]+)\)`),
		extract: func(match []string) (string, string) {
			return match[1], match[2]
		},
	},
	{
		name:    "first line",
		pattern: regexp.MustCompile(`(?m)\A[ \t]*([A-Za-z][A-Za-z .'\-]{1,60}?)[ \t]*$`),
		extract: func(match []string) (string, string) {
			return match[1], ""
		},
	},
}

// ExtractContacts scans a block of pasted legacy-document text for contact
// records. Deterministic, no network or AI calls. A contact with neither
// name nor email is discarded.
func ExtractContacts(rawText string) ExtractionResult {
	section, found := locateSection(rawText)
	if !found {
		return ExtractionResult{SectionFound: false, Contacts: []models.ExtractedContact{}}
	}

	result := ExtractionResult{SectionFound: true, Contacts: []models.ExtractedContact{}}

	for _, block := range separatorRunPattern.Split(section, -1) {
		for _, contactBlock := range splitContactBlocks(block) {
			if contact, ok := parseContactBlock(contactBlock); ok {
				result.Contacts = append(result.Contacts, contact)
			}
		}
	}

	return result
}

// locateSection finds the region of the document that holds contacts:
// either everything after a recognizable header line, or the region before
// the first long separator run when that region holds an email address or
// phone-shaped run.
func locateSection(rawText string) (string, bool) {
	if loc := sectionHeaderPattern.FindStringIndex(rawText); loc != nil {
		return rawText[loc[1]:], true
	}

	if loc := separatorRunPattern.FindStringIndex(rawText); loc != nil {
		leading := rawText[:loc[0]]
		if emailPattern.MatchString(leading) || phoneLikePattern.MatchString(leading) {
			return leading, true
		}
	}

	return "", false
}

// splitContactBlocks cuts a block on lines that start a new contact
// ("Name - Role" or "Name (Role)"). A block without such lines is a single
// candidate contact.
func splitContactBlocks(block string) []string {
	block = strings.TrimSpace(block)
	if block == "" {
		return nil
	}

	starts := contactStartPattern.FindAllStringIndex(block, -1)
	if len(starts) <= 1 {
		return []string{block}
	}

	var blocks []string
	if starts[0][0] > 0 {
		if head := strings.TrimSpace(block[:starts[0][0]]); head != "" {
			blocks = append(blocks, head)
		}
	}
	for i, start := range starts {
		end := len(block)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		blocks = append(blocks, strings.TrimSpace(block[start[0]:end]))
	}
	return blocks
}

func parseContactBlock(block string) (models.ExtractedContact, bool) {
	contact := models.ExtractedContact{RawText: block}

	if email := emailPattern.FindString(block); email != "" {
		contact.Email = &email
	}

	if match := labeledPhonePattern.FindStringSubmatch(block); match != nil {
		phone := strings.TrimSpace(match[1])
		contact.Phone = &phone
	}

	for _, rule := range namePatterns {
		match := rule.pattern.FindStringSubmatch(block)
		if match == nil {
			continue
		}
		name, role := rule.extract(match)
		contact.Name = strings.TrimSpace(name)
		if role = strings.TrimSpace(role); role != "" {
			contact.Role = &role
		}
		break
	}

	if contact.Name == "" && contact.Email == nil {
		return models.ExtractedContact{}, false
	}
	return contact, true
}

// splitNameRole splits "Jane Wright - Purchasing" or "Jane Wright
// (Purchasing)" remainders of a labelled line into name and role.
var nameRoleDash = regexp.MustCompile(`\s[-–]\s`)

func splitNameRole(text string) (string, string) {
	if loc := nameRoleDash.FindStringIndex(text); loc != nil {
		return strings.TrimSpace(text[:loc[0]]), strings.TrimSpace(text[loc[1]:])
	}
	if open := strings.Index(text, "("); open > 0 {
		if close := strings.Index(text[open:], ")"); close > 0 {
			return strings.TrimSpace(text[:open]), strings.TrimSpace(text[open+1 : open+close])
		}
	}
	return strings.TrimSpace(text), ""
}
