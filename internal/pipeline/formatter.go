package pipeline

import (
	"context"

	"corlog/internal/models"

	"github.com/rs/zerolog"
)

// ChatClient is the external formatting collaborator. Implementations are
// expected to impose their own timeout; the pipeline does not.
type ChatClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Formatter orchestrates a single call to the external formatting service
// and pipes the response through recovery and contract validation.
//
// Format never lets an error escape its boundary: the caller's invariant is
// that a service outage must never block saving, so every failure mode
// degrades to a result with ShouldSaveUnformatted set.
type Formatter struct {
	client ChatClient
	logger zerolog.Logger
}

// NewFormatter creates a formatter around an injected chat client. A nil
// client is allowed and behaves as a permanently unavailable service.
func NewFormatter(client ChatClient, logger zerolog.Logger) *Formatter {
	return &Formatter{client: client, logger: logger}
}

// Format builds the mode-specific instruction, invokes the service once,
// and returns either validated entries or a classified failure. There is no
// retry; retrying is the caller's decision.
func (f *Formatter) Format(ctx context.Context, rawText string, shouldSplit bool) (result models.FormattingResult) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error().Interface("panic", r).Msg("Formatting pipeline panicked")
			result = failure("The formatting service failed unexpectedly. Your original text is preserved and can be saved unformatted.")
		}
	}()

	if f.client == nil {
		f.logger.Warn().Msg("Formatting requested but no chat client is configured")
		return failure("The formatting service is not configured. Your original text is preserved and can be saved unformatted.")
	}

	prompt := buildPrompt(rawText, shouldSplit)

	respText, err := f.client.Complete(ctx, prompt)
	if err != nil {
		f.logger.Warn().Err(err).Bool("split", shouldSplit).Msg("Formatting service call failed")
		return failure("The formatting service is unavailable. Your original text is preserved and can be saved unformatted.")
	}

	rec := RecoverJSON(respText)
	if !rec.Success {
		f.logger.Warn().
			Str("failure_kind", string(rec.FailureKind)).
			Strs("attempted_fixes", rec.AttemptedFixes).
			Msg("Formatting response could not be parsed")
		return failure(rec.Error)
	}

	parsed, err := ValidateResponse(rec.Data)
	if err != nil {
		// The violating field is logged for diagnosis but never shown raw
		// to the end user.
		f.logger.Warn().Err(err).Msg("Formatting response failed contract validation")
		return failure("The formatting service returned an unexpected response format. Your original text is preserved and can be saved unformatted.")
	}

	if shouldSplit && parsed.Kind != models.ResponseThreadSplit {
		f.logger.Info().Msg("Split was requested but the service returned a single entry")
	}

	return models.FormattingResult{Success: true, Data: parsed}
}

func failure(msg string) models.FormattingResult {
	return models.FormattingResult{
		Success:               false,
		Error:                 msg,
		ShouldSaveUnformatted: true,
	}
}
