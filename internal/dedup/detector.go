// Package dedup performs pre-commit duplicate detection for correspondence
// submissions. The check is a convenience warning, never a blocking gate:
// its own failures are treated as "no duplicate found" (fail-open), and the
// database uniqueness constraint on (business_id, content_hash) remains the
// actual safety net against concurrent identical submissions.
package dedup

import (
	"context"
	"strings"

	"corlog/internal/database"
	"corlog/internal/models"

	"github.com/rs/zerolog"
)

// Store is the slice of the persistence layer duplicate detection needs.
type Store interface {
	LookupByFingerprint(ctx context.Context, businessID, hash string) (*models.Correspondence, error)
	LookupByNormalizedText(ctx context.Context, businessID, text string) (*models.Correspondence, error)
}

// Detector checks candidate submissions against stored correspondence.
type Detector struct {
	store  Store
	logger zerolog.Logger
}

// NewDetector creates a detector backed by the given store.
func NewDetector(store Store, logger zerolog.Logger) *Detector {
	return &Detector{store: store, logger: logger}
}

// CheckDuplicate reports whether the raw text was already filed for the
// business. It first compares content fingerprints, then falls back to a
// case-insensitive whitespace-normalized comparison against stored
// formatted text, which catches re-pastes of the formatted display.
func (d *Detector) CheckDuplicate(ctx context.Context, rawText, businessID string) models.DuplicateCheckResult {
	trimmed := strings.TrimSpace(rawText)
	if trimmed == "" {
		return models.DuplicateCheckResult{IsDuplicate: false}
	}

	hash := database.Fingerprint(trimmed)

	existing, err := d.store.LookupByFingerprint(ctx, businessID, hash)
	if err != nil {
		d.logger.Warn().Err(err).Str("business_id", businessID).Msg("Fingerprint lookup failed, treating as no duplicate")
		return models.DuplicateCheckResult{IsDuplicate: false}
	}
	if existing != nil {
		return models.DuplicateCheckResult{IsDuplicate: true, ExistingEntry: existing}
	}

	existing, err = d.store.LookupByNormalizedText(ctx, businessID, trimmed)
	if err != nil {
		d.logger.Warn().Err(err).Str("business_id", businessID).Msg("Normalized text lookup failed, treating as no duplicate")
		return models.DuplicateCheckResult{IsDuplicate: false}
	}
	if existing != nil {
		return models.DuplicateCheckResult{IsDuplicate: true, ExistingEntry: existing}
	}

	return models.DuplicateCheckResult{IsDuplicate: false}
}
