package database

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"corlog/internal/models"
	"corlog/internal/utils"

	"github.com/jmoiron/sqlx"
)

// Store is the persistence collaborator for correspondence, businesses and
// contacts. The schema carries a uniqueness constraint on
// (business_id, content_hash); that constraint, not the in-pipeline
// duplicate check, is the actual safety net against concurrent submissions
// of identical text.
//
// Queries are written with ? placeholders and run through Rebind, so the
// same statements work on both MySQL and PostgreSQL connections.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps an open database connection.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Fingerprint computes the stable content hash used for duplicate
// detection. SHA-256 keeps collisions effectively impossible.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// LookupByFingerprint finds a correspondence record for the business with a
// matching content hash. Returns nil without error when nothing matches.
func (s *Store) LookupByFingerprint(ctx context.Context, businessID, hash string) (*models.Correspondence, error) {
	var record models.Correspondence
	err := s.db.GetContext(ctx, &record,
		s.db.Rebind(`SELECT * FROM correspondence WHERE business_id = ? AND content_hash = ? LIMIT 1`),
		businessID, hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up correspondence by fingerprint: %w", err)
	}
	return &record, nil
}

// LookupByNormalizedText finds a correspondence record whose current or
// original formatted text equals the given text after case-folding and
// whitespace collapsing. This catches re-pastes of text the user copied
// out of the formatted display, which never hash-match the raw submission.
//
// The comparison runs in Go rather than SQL: equality is pinned to
// trim + case-fold + whitespace collapse, which SQL LIKE cannot express.
func (s *Store) LookupByNormalizedText(ctx context.Context, businessID, text string) (*models.Correspondence, error) {
	normalized := utils.NormalizeForComparison(text)
	if normalized == "" {
		return nil, nil
	}

	var records []models.Correspondence
	err := s.db.SelectContext(ctx, &records,
		s.db.Rebind(`SELECT * FROM correspondence WHERE business_id = ? ORDER BY created_at`),
		businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load correspondence for text comparison: %w", err)
	}

	for i := range records {
		for _, candidate := range []*string{records[i].FormattedTextCurrent, records[i].FormattedTextOriginal} {
			if candidate == nil {
				continue
			}
			if utils.NormalizeForComparison(*candidate) == normalized {
				return &records[i], nil
			}
		}
	}
	return nil, nil
}

// CommitPlan persists a set of correspondence records and advances the
// business's last_contacted_at in a single transaction. Either every
// record of a save lands or none does; a mid-commit failure never strands
// part of a split thread.
func (s *Store) CommitPlan(ctx context.Context, records []models.Correspondence, lastContacted time.Time) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to commit")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := range records {
		if err := insertCorrespondence(ctx, tx, &records[i]); err != nil {
			return err
		}
	}

	if err := updateBusinessLastContacted(ctx, tx, records[0].BusinessID, lastContacted); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit correspondence: %w", err)
	}
	return nil
}

// insertCorrespondence persists a new record. raw_text_original is written
// here once and never updated by any other statement in this package.
func insertCorrespondence(ctx context.Context, tx *sqlx.Tx, record *models.Correspondence) error {
	_, err := tx.ExecContext(ctx,
		tx.Rebind(`INSERT INTO correspondence
			(id, business_id, contact_id, entry_type, direction, subject, entry_date,
			 raw_text_original, formatted_text_original, formatted_text_current,
			 content_hash, formatting_status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		record.ID, record.BusinessID, record.ContactID, record.EntryType,
		record.Direction, record.Subject, record.EntryDate,
		record.RawTextOriginal, record.FormattedTextOriginal, record.FormattedTextCurrent,
		record.ContentHash, record.FormattingStatus, record.CreatedAt, record.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("correspondence already exists for this business: %w", err)
		}
		return fmt.Errorf("failed to insert correspondence: %w", err)
	}
	return nil
}

// updateBusinessLastContacted advances a business's last_contacted_at. The
// guard in the WHERE clause makes the update monotonic: a commit of older
// correspondence never regresses a later timestamp.
func updateBusinessLastContacted(ctx context.Context, tx *sqlx.Tx, businessID string, ts time.Time) error {
	_, err := tx.ExecContext(ctx,
		tx.Rebind(`UPDATE businesses SET last_contacted_at = ?, updated_at = ?
		 WHERE id = ? AND (last_contacted_at IS NULL OR last_contacted_at < ?)`),
		ts, time.Now().UTC(), businessID, ts)
	if err != nil {
		return fmt.Errorf("failed to update business last_contacted_at: %w", err)
	}
	return nil
}

// ListContacts returns every known contact for a business.
func (s *Store) ListContacts(ctx context.Context, businessID string) ([]models.Contact, error) {
	var contactList []models.Contact
	err := s.db.SelectContext(ctx, &contactList,
		s.db.Rebind(`SELECT * FROM contacts WHERE business_id = ? ORDER BY name`),
		businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contactList, nil
}

// IsUniqueViolation recognizes duplicate-key errors from both supported
// drivers (MySQL error 1062, PostgreSQL SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "23505")
}
