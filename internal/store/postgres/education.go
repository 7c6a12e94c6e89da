package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/learnbot/resume-pipeline/internal/schema"
)

// ReplaceEducation clears every existing nurse_education row for a profile
// and inserts the new set, mirroring ReplaceExperience's clear-then-insert.
func (s *Store) ReplaceEducation(ctx context.Context, profileID uuid.UUID, resumeID uuid.UUID, entries []schema.Education) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace education: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM nurse_education WHERE profile_id = $1`, profileID); err != nil {
		return fmt.Errorf("replace education: clear existing rows: %w", err)
	}

	for _, e := range entries {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO nurse_education (
				profile_id, resume_id, institution, degree, field_of_study, year,
				institution_location, start_date, end_date, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			profileID, resumeID, e.Institution, e.Degree, e.FieldOfStudy, e.Year,
			e.InstitutionLocation, nullableString(e.StartDate), nullableString(e.EndDate), e.Status,
		)
		if err != nil {
			return wrapWriteErr("replace education: insert row", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace education: commit: %w", err)
	}
	return nil
}
