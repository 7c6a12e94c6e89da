package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/learnbot/resume-pipeline/internal/schema"
)

// ReplaceCertifications clears every existing nurse_certifications row for
// a profile and inserts the new set.
func (s *Store) ReplaceCertifications(ctx context.Context, profileID uuid.UUID, resumeID uuid.UUID, entries []schema.Certification) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace certifications: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM nurse_certifications WHERE profile_id = $1`, profileID); err != nil {
		return fmt.Errorf("replace certifications: clear existing rows: %w", err)
	}

	for _, c := range entries {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO nurse_certifications (profile_id, resume_id, type, number, score)
			VALUES ($1, $2, $3, $4, $5)`,
			profileID, resumeID, c.Type, nullableString(c.Number), nullableString(c.Score),
		)
		if err != nil {
			return wrapWriteErr("replace certifications: insert row", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace certifications: commit: %w", err)
	}
	return nil
}
