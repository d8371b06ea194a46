package pipeline

import "fmt"

// The instruction templates encode the formatting contract: wording is
// preserved exactly, nothing is invented, output is strict JSON with no
// surrounding prose. Dates in the source text are day-first.

const singleEntryPrompt = `You clean up the layout of pasted business correspondence. Follow these rules exactly:

1. Preserve the author's wording exactly. Do not rewrite, summarize, or improve the text. Only fix layout: paragraph breaks, spacing, and stray artifacts from copy-pasting.
2. Never invent content. Do not add action items, reminders, greetings, or anything not present in the input.
3. Guess a short subject line (90 characters or fewer) from the content.
4. Guess the entry type: "Email", "Call", or "Meeting".
5. Guess the date of the correspondence if one appears in the text. Dates are written day-first (e.g. 12/03/2024 means 12 March 2024). Normalize to ISO-8601 (YYYY-MM-DD). Use null if no date is present.
6. Guess the direction: "sent" if the user wrote the message, "received" if a correspondent wrote it. Infer this from sender identity (first-person sign-offs vs. external names). Use null when you cannot determine it; never guess without basis.
7. If the text begins with a message header block (From/To/Sent/Subject lines), strip it from formatted_text so only the body remains, and report the sender and recipient names in extracted_names.
8. List anything notable (illegible fragments, ambiguous dates) in warnings.

Respond with strict JSON only, no code fences, no prose before or after:
{"subject_guess": "...", "entry_type_guess": "Email", "entry_date_guess": "2024-03-12" or null, "direction_guess": "sent", "received" or null, "formatted_text": "...", "warnings": [], "extracted_names": {"sender": "..." or null, "recipient": "..." or null}}

Text to format:
%s`

const threadSplitPrompt = `You split a pasted block of concatenated business correspondence into its individual messages and clean up each one. Follow these rules exactly:

1. Identify each distinct message in the block (separated by header blocks, separator lines, or "On ... wrote:" markers). Do not merge or reorder messages.
2. Preserve the author's wording exactly within each message. Do not rewrite, summarize, or improve the text. Only fix layout.
3. Never invent content.
4. For every message, strip its header lines (From/To/Sent/Subject, "Email from X to Y" lines) from formatted_text so only the body remains, and report the sender and recipient names in extracted_names.
5. Guess per message: a short subject line (90 characters or fewer); the entry type "Email", "Call" or "Meeting"; the date, normalized from day-first format to ISO-8601 (YYYY-MM-DD), or null; the direction "sent" or "received", or null when undeterminable; never guess without basis.
6. List anything notable in each message's warnings, and block-level issues in the top-level warnings.

Respond with strict JSON only, no code fences, no prose before or after:
{"entries": [{"subject_guess": "...", "entry_type_guess": "Email", "entry_date_guess": "2024-03-12" or null, "direction_guess": "sent", "received" or null, "formatted_text": "...", "warnings": [], "extracted_names": {"sender": "..." or null, "recipient": "..." or null}}], "warnings": []}

Text to split and format:
%s`

// buildPrompt embeds the raw text verbatim into the mode-specific template.
func buildPrompt(rawText string, shouldSplit bool) string {
	if shouldSplit {
		return fmt.Sprintf(threadSplitPrompt, rawText)
	}
	return fmt.Sprintf(singleEntryPrompt, rawText)
}
