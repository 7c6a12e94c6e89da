package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/learnbot/resume-pipeline/internal/schema"
)

// ReplaceExperience deletes every existing nurse_experience row for a
// profile and inserts the new set in a single transaction — a clear-then-
// insert, not a per-row diff, since a résumé re-upload supersedes whatever
// was there before.
func (s *Store) ReplaceExperience(ctx context.Context, profileID uuid.UUID, resumeID uuid.UUID, entries []schema.Experience) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace experience: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM nurse_experience WHERE profile_id = $1`, profileID); err != nil {
		return fmt.Errorf("replace experience: clear existing rows: %w", err)
	}

	for _, e := range entries {
		startDate := e.StartDate
		if startDate == "" {
			startDate = "1900-01-01"
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO nurse_experience (
				profile_id, resume_id, employer, position, type, department,
				start_date, end_date, description, location
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			profileID, resumeID, e.Employer, e.Position, string(e.Type), e.Department,
			startDate, nullableString(e.EndDate), e.Description, e.Location,
		)
		if err != nil {
			return wrapWriteErr("replace experience: insert row", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace experience: commit: %w", err)
	}
	return nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
