package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"corlog/internal/cache"
	"corlog/internal/commit"
	"corlog/internal/config"
	"corlog/internal/contacts"
	"corlog/internal/database"
	"corlog/internal/dedup"
	"corlog/internal/email"
	"corlog/internal/models"
	"corlog/internal/pipeline"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// DetectThreadHandler runs the advisory thread-split heuristics over raw
// pasted text.
// @Summary Detect thread structure in pasted text
// @Description Returns named indicators and a split recommendation. Advisory only: the user decides whether to split.
// @Tags correspondence
// @Accept json
// @Produce json
// @Param request body models.DetectThreadRequest true "Raw text to inspect"
// @Success 200 {object} models.ThreadDetectionResult
// @Failure 400 {object} map[string]string
// @Router /api/correspondence/detect-thread [post]
func DetectThreadHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.DetectThreadRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if strings.TrimSpace(req.RawText) == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "raw_text is required",
			})
		}

		return c.JSON(http.StatusOK, pipeline.DetectThreadSignals(req.RawText))
	}
}

// FormatHandler runs the formatting pipeline over raw text without saving
// anything.
// @Summary Format raw correspondence text
// @Description Sends the text through the formatting service. Failures are reported in the body with should_save_unformatted=true; this endpoint never returns a 5xx for a formatting failure.
// @Tags correspondence
// @Accept json
// @Produce json
// @Param request body models.FormatRequest true "Text to format"
// @Success 200 {object} models.FormattingResult
// @Failure 400 {object} map[string]string
// @Router /api/correspondence/format [post]
func FormatHandler(formatter *pipeline.Formatter) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.FormatRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if strings.TrimSpace(req.RawText) == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "raw_text is required",
			})
		}

		result := formatter.Format(c.Request().Context(), req.RawText, req.ShouldSplit)
		return c.JSON(http.StatusOK, result)
	}
}

// CheckDuplicateHandler runs the pre-commit duplicate check.
// @Summary Check whether text duplicates an existing entry
// @Description Fingerprint lookup plus a normalized-text fallback, scoped to one business. Lookup failures report no duplicate.
// @Tags correspondence
// @Accept json
// @Produce json
// @Param request body models.DuplicateCheckRequest true "Candidate text"
// @Success 200 {object} models.DuplicateCheckResult
// @Failure 400 {object} map[string]string
// @Router /api/correspondence/check-duplicate [post]
func CheckDuplicateHandler(detector *dedup.Detector) echo.HandlerFunc {
	return func(c echo.Context) error {
		if detector == nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"error": "Database connection not available",
			})
		}

		var req models.DuplicateCheckRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if req.BusinessID == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "business_id is required",
			})
		}

		result := detector.CheckDuplicate(c.Request().Context(), req.RawText, req.BusinessID)
		return c.JSON(http.StatusOK, result)
	}
}

// SaveDeps bundles everything the save flow needs.
type SaveDeps struct {
	Store     *database.Store
	Formatter *pipeline.Formatter
	Matcher   *contacts.Matcher
	Detector  *dedup.Detector
	Cache     *cache.Cache
	Alerts    *email.AlertService
	Config    *config.Config
	Logger    zerolog.Logger
}

// SaveHandler commits a correspondence entry: duplicate check, formatting,
// contact attribution, then insert plus a last-contacted bump.
// @Summary Save a correspondence entry
// @Description Runs the full pipeline and commits one record, or one per split entry. A formatting failure still saves the raw text, with formatting_status=failed.
// @Tags correspondence
// @Accept json
// @Produce json
// @Param request body models.SaveRequest true "Entry to save"
// @Success 200 {object} models.SaveResponse
// @Failure 400 {object} models.SaveResponse
// @Failure 409 {object} models.SaveResponse
// @Failure 503 {object} models.SaveResponse
// @Router /api/correspondence/save [post]
func SaveHandler(deps SaveDeps) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deps.Store == nil {
			return c.JSON(http.StatusServiceUnavailable, models.SaveResponse{
				Error: "Database connection not available",
			})
		}

		var req models.SaveRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.SaveResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}
		if msg := validateSaveRequest(&req); msg != "" {
			return c.JSON(http.StatusBadRequest, models.SaveResponse{Error: msg})
		}

		ctx := c.Request().Context()

		if !req.OverrideDuplicate {
			check := deps.Detector.CheckDuplicate(ctx, req.RawText, req.BusinessID)
			if check.IsDuplicate {
				return c.JSON(http.StatusConflict, models.SaveResponse{
					Duplicate: check.ExistingEntry,
					Error:     "An entry with this text already exists for this business",
				})
			}
		}

		meta := commit.Metadata{
			BusinessID:       req.BusinessID,
			PrimaryContactID: req.PrimaryContactID,
			RawText:          req.RawText,
			EntryType:        req.EntryType,
			Direction:        req.Direction,
			EntryDate:        req.EntryDate,
		}

		if req.SkipFormatting {
			record := commit.BuildUnformattedRecord(meta, models.FormattingStatusUnformatted)
			return commitRecords(c, deps, []models.Correspondence{record}, meta.EntryDate, "")
		}

		result := deps.Formatter.Format(ctx, req.RawText, req.ShouldSplit)
		if !result.Success {
			// The raw text is never lost to a formatting failure.
			record := commit.BuildUnformattedRecord(meta, models.FormattingStatusFailed)
			deps.Logger.Warn().
				Str("business_id", req.BusinessID).
				Str("entry_id", record.ID).
				Str("reason", result.Error).
				Msg("Formatting failed, saving raw text unformatted")
			notifyFormattingFailure(deps, req.BusinessID, record.ID, result.Error)
			return commitRecords(c, deps, []models.Correspondence{record}, meta.EntryDate, result.Error)
		}

		var matches []models.ContactMatchResult
		if result.Data.Kind == models.ResponseThreadSplit {
			contactList := loadContacts(ctx, deps, req.BusinessID)
			matches = deps.Matcher.MatchEntriesToContacts(result.Data.Entries(), contactList)
		}

		plan, err := commit.BuildPlan(result.Data, matches, meta)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.SaveResponse{
				Error: fmt.Sprintf("Failed to build commit plan: %v", err),
			})
		}

		return commitRecords(c, deps, plan.Records, plan.LastContactedAt, "")
	}
}

func validateSaveRequest(req *models.SaveRequest) string {
	if req.BusinessID == "" {
		return "business_id is required"
	}
	if strings.TrimSpace(req.RawText) == "" {
		return "raw_text is required"
	}
	switch req.EntryType {
	case models.EntryTypeEmail, models.EntryTypeCall, models.EntryTypeMeeting:
	default:
		return fmt.Sprintf("entry_type must be one of Email, Call or Meeting, got %q", req.EntryType)
	}
	if req.Direction != nil && *req.Direction != models.DirectionSent && *req.Direction != models.DirectionReceived {
		return fmt.Sprintf("direction must be sent or received, got %q", *req.Direction)
	}
	if req.EntryDate.IsZero() {
		return "entry_date is required"
	}
	return ""
}

// commitRecords writes the planned records and the business last-contacted
// bump in one transaction, so a mid-commit failure never strands part of a
// split thread. A uniqueness violation means another save with the same
// text slipped past the fail-open check; it is reported as a duplicate.
func commitRecords(c echo.Context, deps SaveDeps, records []models.Correspondence, lastContacted time.Time, formatError string) error {
	ctx := c.Request().Context()

	if err := deps.Store.CommitPlan(ctx, records, lastContacted); err != nil {
		if database.IsUniqueViolation(err) {
			return c.JSON(http.StatusConflict, models.SaveResponse{
				Error:       "An entry with this text already exists for this business",
				FormatError: formatError,
			})
		}
		return c.JSON(http.StatusInternalServerError, models.SaveResponse{
			Error:       fmt.Sprintf("Failed to save entry: %v", err),
			FormatError: formatError,
		})
	}

	return c.JSON(http.StatusOK, models.SaveResponse{
		Success:     true,
		Records:     records,
		FormatError: formatError,
	})
}

// loadContacts fetches the business's contact list, serving from the TTL
// cache when possible. A load failure degrades to no matches.
func loadContacts(ctx context.Context, deps SaveDeps, businessID string) []models.Contact {
	cacheKey := "contacts:" + businessID

	if cached, found := deps.Cache.Get(cacheKey); found {
		if list, ok := cached.([]models.Contact); ok {
			return list
		}
	}

	list, err := deps.Store.ListContacts(ctx, businessID)
	if err != nil {
		deps.Logger.Warn().Err(err).
			Str("business_id", businessID).
			Msg("Failed to load contacts, attribution will fall back to the primary contact")
		return nil
	}

	deps.Cache.Set(cacheKey, list, time.Duration(deps.Config.ContactCacheTTL)*time.Minute)
	return list
}

func notifyFormattingFailure(deps SaveDeps, businessID, entryID, reason string) {
	if deps.Alerts == nil || !deps.Config.EnableFailureAlert {
		return
	}
	go func() {
		if err := deps.Alerts.SendFormattingFailureAlert(businessID, entryID, reason); err != nil {
			deps.Logger.Warn().Err(err).Msg("Failed to send formatting failure alert")
		}
	}()
}
